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

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"
	ErrRegexInvalid  ErrorCode = "REGEX_INVALID"

	// Collection errors
	ErrMetadata    ErrorCode = "METADATA"
	ErrLinkResolve ErrorCode = "LINK_RESOLVE"

	// Link creation errors
	ErrParentDir     ErrorCode = "PARENT_DIR"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
)

// LinkerError represents a structured error with code and details
type LinkerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LinkerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LinkerError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a LinkerError with the same code
func (e *LinkerError) Is(target error) bool {
	var targetErr *LinkerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LinkerError with the given code and message
func New(code ErrorCode, message string) *LinkerError {
	return &LinkerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LinkerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LinkerError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a LinkerError, nil stays nil
func Wrap(err error, code ErrorCode, message string) *LinkerError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LinkerError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *LinkerError) WithDetail(key string, value interface{}) *LinkerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var linkerErr *LinkerError
	if errors.As(err, &linkerErr) {
		return linkerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LinkerError
func GetErrorCode(err error) ErrorCode {
	var linkerErr *LinkerError
	if errors.As(err, &linkerErr) {
		return linkerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LinkerError
func GetErrorDetails(err error) map[string]interface{} {
	var linkerErr *LinkerError
	if errors.As(err, &linkerErr) {
		return linkerErr.Details
	}
	return nil
}
