// Package errors provides unified error handling for pconcat runs.
// It implements structured error types with error codes, task attribution,
// and process exit status mapping.
package errors

import (
	stderrors "errors"
	"fmt"
)

// RunError is the unified run error type.
type RunError struct {
	// Code is a machine-readable error code.
	Code ErrorCode
	// Message is a human-readable error message.
	Message string
	// Details contains additional context for the error.
	Details map[string]any
	// Cause is the underlying error that caused this error.
	Cause error
}

// Error returns the string representation of the error.
func (e *RunError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *RunError) Unwrap() error { return e.Cause }

// ExitStatus returns the process exit status for this error.
func (e *RunError) ExitStatus() int { return ExitStatus(e.Code) }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *RunError) WithCause(cause error) *RunError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *RunError) WithDetail(key string, value any) *RunError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new RunError.
func New(code ErrorCode, message string) *RunError {
	return &RunError{Code: code, Message: message}
}

// ExitCode returns the process exit status to report for err.
// Returns 0 for nil and 1 for errors that are not RunErrors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var re *RunError
	if stderrors.As(err, &re) {
		return re.ExitStatus()
	}
	return 1
}

// --- Common Error Constructors ---

// InvalidConfig creates a new RunError for invalid run configuration.
func InvalidConfig(reason string) *RunError {
	return &RunError{
		Code: ErrCodeInvalidConfig, Message: reason,
	}
}

// BadRecord creates a new RunError for an input record that could not be
// parsed into a task. Reported before any task is launched for the record.
func BadRecord(index int, record string, cause error) *RunError {
	return &RunError{
		Code: ErrCodeBadRecord, Message: fmt.Sprintf("cannot parse input record %d", index+1),
		Details: map[string]any{"task": index + 1, "record": record}, Cause: cause,
	}
}

// LaunchFailed creates a new RunError for a task whose byte source could not
// be started.
func LaunchFailed(index int, record string, cause error) *RunError {
	return &RunError{
		Code: ErrCodeLaunchFailed, Message: fmt.Sprintf("cannot launch task %d", index+1),
		Details: map[string]any{"task": index + 1, "record": record}, Cause: cause,
	}
}

// SourceFailed creates a new RunError for a task whose byte source failed
// after launch, detected mid-stream or at join.
func SourceFailed(index int, record string, cause error) *RunError {
	return &RunError{
		Code: ErrCodeSourceFailed, Message: fmt.Sprintf("task %d failed", index+1),
		Details: map[string]any{"task": index + 1, "record": record}, Cause: cause,
	}
}

// WriterFailed creates a new RunError for a destination I/O failure.
func WriterFailed(cause error) *RunError {
	return &RunError{
		Code: ErrCodeWriterFailed, Message: "cannot write to output destination",
		Cause: cause,
	}
}

// Interrupted creates a new RunError for a signal-canceled run.
func Interrupted(cause error) *RunError {
	return &RunError{
		Code: ErrCodeInterrupted, Message: "run interrupted",
		Cause: cause,
	}
}

// Internal creates a new RunError for an unexpected internal failure.
func Internal(cause error) *RunError {
	return &RunError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		Cause: cause,
	}
}
