package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ResolveFailed indicates stack configuration resolution failed.
	ResolveFailed AppErrorType = iota
	// MaterializeFailed indicates writing the project tree failed.
	MaterializeFailed
	// ValidationFailed indicates option validation failed.
	ValidationFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewResolveError creates a stack resolution error.
func NewResolveError(message string, cause error) *AppError {
	return NewAppError(ResolveFailed, message, cause)
}

// NewMaterializeError creates a materialization error.
func NewMaterializeError(message string, cause error) *AppError {
	return NewAppError(MaterializeFailed, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}
