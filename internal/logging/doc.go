// Package logging provides logging utilities for dockvitals.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("inspecting container", "id", id)
//	logging.Warn("stats sample failed", "id", id, "err", err)
//
// User-facing messages are formatted with status indicators and written to
// stdout (UserInfo, UserSuccess) or stderr (UserWarning, UserError):
//
//	logging.UserInfo("No running containers found")
//	logging.UserError("Cannot reach the container runtime: %v", err)
package logging
