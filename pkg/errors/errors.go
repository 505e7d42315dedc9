package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Template errors
	ErrTemplateParse   ErrorCode = "TEMPLATE_PARSE"
	ErrTemplateInvalid ErrorCode = "TEMPLATE_INVALID"

	// Materialization errors
	ErrRootConflict ErrorCode = "ROOT_CONFLICT"
	ErrPathConflict ErrorCode = "PATH_CONFLICT"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileAppend ErrorCode = "FILE_APPEND"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// ScfldrError represents a structured error with code and details
type ScfldrError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ScfldrError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ScfldrError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ScfldrError) Is(target error) bool {
	var targetErr *ScfldrError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ScfldrError with the given code and message
func New(code ErrorCode, message string) *ScfldrError {
	return &ScfldrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ScfldrError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ScfldrError {
	return &ScfldrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ScfldrError
func Wrap(err error, code ErrorCode, message string) *ScfldrError {
	if err == nil {
		return nil
	}
	return &ScfldrError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ScfldrError {
	if err == nil {
		return nil
	}
	return &ScfldrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ScfldrError) WithDetail(key string, value interface{}) *ScfldrError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var scfldrErr *ScfldrError
	if errors.As(err, &scfldrErr) {
		return scfldrErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ScfldrError
func GetErrorCode(err error) ErrorCode {
	var scfldrErr *ScfldrError
	if errors.As(err, &scfldrErr) {
		return scfldrErr.Code
	}
	return ErrUnknown
}
