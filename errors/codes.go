package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates the run configuration is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Admission errors
const (
	// ErrCodeBadRecord indicates an input record could not be parsed into a task.
	ErrCodeBadRecord ErrorCode = "BAD_RECORD"
)

// Task errors
const (
	// ErrCodeLaunchFailed indicates the external resource for a task could not be created.
	ErrCodeLaunchFailed ErrorCode = "LAUNCH_FAILED"
	// ErrCodeSourceFailed indicates a task's byte source failed mid-stream or at exit.
	ErrCodeSourceFailed ErrorCode = "SOURCE_FAILED"
)

// Output errors
const (
	// ErrCodeWriterFailed indicates destination I/O failed.
	ErrCodeWriterFailed ErrorCode = "WRITER_FAILED"
)

// Run errors
const (
	// ErrCodeInterrupted indicates the run was canceled by a signal.
	ErrCodeInterrupted ErrorCode = "INTERRUPTED"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// exitCodes maps each error code to the process exit status reported to the
// shell. Zero is reserved for success.
var exitCodes = map[ErrorCode]int{
	ErrCodeInvalidConfig: 2,
	ErrCodeBadRecord:     3,
	ErrCodeLaunchFailed:  4,
	ErrCodeSourceFailed:  5,
	ErrCodeWriterFailed:  6,
	ErrCodeInterrupted:   130,
	ErrCodeInternal:      1,
}

// ExitStatus returns the process exit status for an error code.
// Unknown codes map to 1.
func ExitStatus(code ErrorCode) int {
	if status, ok := exitCodes[code]; ok {
		return status
	}
	return 1
}
