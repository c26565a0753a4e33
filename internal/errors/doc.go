// Package errors provides typed errors with exit codes for dockvitals.
//
// VitalsError is the base error type that wraps an error with an exit code:
//
//	type VitalsError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// Only two exit codes exist:
//
//	ExitSuccess = 0  // Every checked container is healthy (or none to check)
//	ExitFailure = 1  // Pre-flight failure, or at least one warning/problem
//
// Use the provided constructors for consistent error creation, and
// GetExitCode(err) in main to translate an error into the process exit code.
package errors
