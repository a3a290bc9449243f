package materialize

import "fmt"

// ErrorType categorizes materializer errors.
type ErrorType int

const (
	// SourceMissing indicates a declared source file could not be read.
	SourceMissing ErrorType = iota
	// RenderFailed indicates template substitution failed.
	RenderFailed
	// WriteFailed indicates a destination write operation failed.
	WriteFailed
)

// Error represents a materializer error. Path names the offending file: the
// declared source path for read and render failures, the destination path for
// write failures.
type Error struct {
	// Type categorizes the error.
	Type ErrorType
	// Message is the error message.
	Message string
	// Path is the file path related to the error.
	Path string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		if e.Cause != nil {
			return fmt.Sprintf("%s (%s): %v", e.Message, e.Path, e.Cause)
		}
		return fmt.Sprintf("%s (%s)", e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// newError creates a new materializer Error.
func newError(typ ErrorType, message, path string, cause error) *Error {
	return &Error{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}
