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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Prompt errors
	ErrInputClosed ErrorCode = "INPUT_CLOSED"

	// FileSystem errors
	ErrFileNotFound   ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead       ErrorCode = "FILE_READ"
	ErrFileWrite      ErrorCode = "FILE_WRITE"
	ErrFileDecode     ErrorCode = "FILE_DECODE"
	ErrRenameConflict ErrorCode = "RENAME_CONFLICT"

	// External command errors
	ErrCommandRun      ErrorCode = "COMMAND_RUN"
	ErrCommandNotFound ErrorCode = "COMMAND_NOT_FOUND"
)

// ImprintError represents a structured error with code and details
type ImprintError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ImprintError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ImprintError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ImprintError) Is(target error) bool {
	var targetErr *ImprintError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ImprintError with the given code and message
func New(code ErrorCode, message string) *ImprintError {
	return &ImprintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ImprintError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ImprintError {
	return &ImprintError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an ImprintError
func Wrap(err error, code ErrorCode, message string) *ImprintError {
	if err == nil {
		return nil
	}
	return &ImprintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ImprintError {
	if err == nil {
		return nil
	}
	return &ImprintError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ImprintError) WithDetail(key string, value interface{}) *ImprintError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var impErr *ImprintError
	if errors.As(err, &impErr) {
		return impErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an ImprintError
func GetErrorCode(err error) ErrorCode {
	var impErr *ImprintError
	if errors.As(err, &impErr) {
		return impErr.Code
	}
	return ErrUnknown
}
