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
	ErrPermission    ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Block editor errors
	ErrPathInvalid          ErrorCode = "PATH_INVALID"
	ErrConfirmationDeclined ErrorCode = "CONFIRMATION_DECLINED"
	ErrFileRead             ErrorCode = "FILE_READ"
	ErrFileWrite            ErrorCode = "FILE_WRITE"
	ErrDirCreate            ErrorCode = "DIR_CREATE"

	// Module errors
	ErrModuleNotFound ErrorCode = "MODULE_NOT_FOUND"
	ErrModuleRun      ErrorCode = "MODULE_RUN"
	ErrCommandRun     ErrorCode = "COMMAND_RUN"
	ErrElevation      ErrorCode = "ELEVATION"
)

// OutfitError represents a structured error with code and details
type OutfitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OutfitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OutfitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *OutfitError) Is(target error) bool {
	var targetErr *OutfitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new OutfitError with the given code and message
func New(code ErrorCode, message string) *OutfitError {
	return &OutfitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OutfitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OutfitError {
	return &OutfitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an OutfitError
func Wrap(err error, code ErrorCode, message string) *OutfitError {
	if err == nil {
		return nil
	}
	return &OutfitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OutfitError {
	if err == nil {
		return nil
	}
	return &OutfitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *OutfitError) WithDetail(key string, value interface{}) *OutfitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var outfitErr *OutfitError
	if errors.As(err, &outfitErr) {
		return outfitErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an OutfitError
func GetErrorCode(err error) ErrorCode {
	var outfitErr *OutfitError
	if errors.As(err, &outfitErr) {
		return outfitErr.Code
	}
	return ErrUnknown
}
