// Package errors provides coded errors. Callers and tests match on the code,
// never on the message.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Association errors
	ErrAppNotFound  ErrorCode = "APP_NOT_FOUND"
	ErrTypeNotFound ErrorCode = "TYPE_NOT_FOUND"

	// Persistence errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// AppselError is a coded error with optional details and cause
type AppselError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func build(code ErrorCode, message string, wrapped error) *AppselError {
	return &AppselError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

// Error formats as "[CODE] message" followed by the cause, if any
func (e *AppselError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the cause
func (e *AppselError) Unwrap() error {
	return e.Wrapped
}

// Is matches any AppselError with the same code
func (e *AppselError) Is(target error) bool {
	var targetErr *AppselError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates an error without a cause
func New(code ErrorCode, message string) *AppselError {
	return build(code, message, nil)
}

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppselError {
	return build(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches a code and message to err. A nil err gives nil.
func Wrap(err error, code ErrorCode, message string) *AppselError {
	if err == nil {
		return nil
	}
	return build(code, message, err)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppselError {
	if err == nil {
		return nil
	}
	return build(code, fmt.Sprintf(format, args...), err)
}

// WithDetail records one detail and returns e
func (e *AppselError) WithDetail(key string, value interface{}) *AppselError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails records several details and returns e
func (e *AppselError) WithDetails(details map[string]interface{}) *AppselError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

func asAppselError(err error) (*AppselError, bool) {
	var appselErr *AppselError
	ok := errors.As(err, &appselErr)
	return appselErr, ok
}

// IsErrorCode reports whether err, or an error it wraps, has code
func IsErrorCode(err error, code ErrorCode) bool {
	e, ok := asAppselError(err)
	return ok && e.Code == code
}

// GetErrorCode returns the code of err, ErrUnknown for foreign errors
func GetErrorCode(err error) ErrorCode {
	if e, ok := asAppselError(err); ok {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of err, nil for foreign errors
func GetErrorDetails(err error) map[string]interface{} {
	if e, ok := asAppselError(err); ok {
		return e.Details
	}
	return nil
}

// Report is the serialisable form of an error for machine-readable output
type Report struct {
	Error   string                 `json:"error" yaml:"error"`
	Code    ErrorCode              `json:"code" yaml:"code"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// NewReport describes err; errors without a code report ErrUnknown
func NewReport(err error) Report {
	return Report{
		Error:   err.Error(),
		Code:    GetErrorCode(err),
		Details: GetErrorDetails(err),
	}
}
