package errors

import (
	"errors"
	"fmt"
)

// Exit codes for dockvitals. The contract is deliberately coarse:
// anything that is not a fully healthy run exits 1.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// VitalsError is the base error type for dockvitals
type VitalsError struct {
	Code    int
	Message string
	Cause   error
}

func (e *VitalsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *VitalsError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *VitalsError) ExitCode() int {
	return e.Code
}

// New creates a new VitalsError
func New(code int, message string) *VitalsError {
	return &VitalsError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a VitalsError
func Wrap(code int, message string, cause error) *VitalsError {
	return &VitalsError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// RuntimeUnreachable returns the pre-flight failure: the container runtime
// could not be reached, so no report was produced.
func RuntimeUnreachable(cause error) *VitalsError {
	return Wrap(ExitFailure, "cannot reach the container runtime", cause)
}

// Unhealthy returns the end-of-run failure when at least one container
// was classified as a warning or a problem.
func Unhealthy(warnings, problems int) *VitalsError {
	return New(ExitFailure, fmt.Sprintf("%d warning(s), %d problem(s)", warnings, problems))
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var vitalsErr *VitalsError
	if errors.As(err, &vitalsErr) {
		return vitalsErr.ExitCode()
	}
	return ExitFailure
}
