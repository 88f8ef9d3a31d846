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

	// Terminal errors. Either the process has no usable terminal at all,
	// or an individual control-sequence write failed.
	ErrNoTerminal    ErrorCode = "NO_TERMINAL"
	ErrTerminalWrite ErrorCode = "TERMINAL_WRITE"

	// Theme errors
	ErrThemeLoad    ErrorCode = "THEME_LOAD"
	ErrThemeParse   ErrorCode = "THEME_PARSE"
	ErrThemeInvalid ErrorCode = "THEME_INVALID"
)

// PainterError represents a structured error with code and details
type PainterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PainterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PainterError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PainterError) Is(target error) bool {
	var targetErr *PainterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PainterError with the given code and message
func New(code ErrorCode, message string) *PainterError {
	return &PainterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PainterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PainterError {
	return &PainterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PainterError
func Wrap(err error, code ErrorCode, message string) *PainterError {
	if err == nil {
		return nil
	}
	return &PainterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PainterError {
	if err == nil {
		return nil
	}
	return &PainterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PainterError) WithDetail(key string, value interface{}) *PainterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var perr *PainterError
	if errors.As(err, &perr) {
		return perr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PainterError
func GetErrorCode(err error) ErrorCode {
	var perr *PainterError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ErrUnknown
}
