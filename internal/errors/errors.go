package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorConfig   = 2   // Indicates a configuration or validation error.
	ExitErrorResource = 3   // Indicates a fatal resource-allocation failure.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// ResourceError represents a fatal resource-allocation failure inside the
// engine: the result store could not be sized, or the worker pool could not
// be set up. There is no recovery path for these failures — a partially
// allocated store or a partially launched worker set would leave a run in an
// inconsistent state, so callers must abort.
type ResourceError struct {
	// Resource names the resource that could not be allocated.
	Resource string
	// Cause is the underlying failure, if any.
	Cause error
}

// Error returns a formatted message describing the resource failure.
func (e ResourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resource failure: %s: %v", e.Resource, e.Cause)
	}
	return fmt.Sprintf("resource failure: %s", e.Resource)
}

// Unwrap returns the underlying cause of the ResourceError.
func (e ResourceError) Unwrap() error { return e.Cause }

// NewResourceError creates a ResourceError for the named resource.
func NewResourceError(resource string, cause error) error {
	return ResourceError{Resource: resource, Cause: cause}
}

// IsResourceError reports whether err is (or wraps) a ResourceError.
func IsResourceError(err error) bool {
	var re ResourceError
	return errors.As(err, &re)
}

// ExitCodeForError maps an error to the process exit code the surrounding
// program should use. Validation and configuration problems map to
// ExitErrorConfig, fatal allocation problems to ExitErrorResource, context
// cancellation to ExitErrorCanceled, and everything else to ExitErrorGeneric.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ce ConfigError
	var ve ValidationError
	switch {
	case errors.As(err, &ce), errors.As(err, &ve):
		return ExitErrorConfig
	case IsResourceError(err):
		return ExitErrorResource
	case IsContextError(err):
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
