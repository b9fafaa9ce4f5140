package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeMissingField ErrorType = iota
	ErrorTypeFormat
	ErrorTypeUnexpectedField
	ErrorTypeInvalidInput
	ErrorTypeIO
)

// Error codes carried by AppError.Code
const (
	CodeMissingField    = "MISSING_FIELD"
	CodeFormat          = "FORMAT_ERROR"
	CodeUnexpectedField = "UNEXPECTED_FIELD"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeIO              = "IO_ERROR"
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeMissingField:
		return "missing_field"
	case ErrorTypeFormat:
		return "format"
	case ErrorTypeUnexpectedField:
		return "unexpected_field"
	case ErrorTypeInvalidInput:
		return "invalid_input"
	case ErrorTypeIO:
		return "io"
	default:
		return "unknown"
	}
}

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AppError of the same type and code,
// which lets the sentinels below be used with errors.Is.
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext adds context information to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// GetContext retrieves context information from the error
func (e *AppError) GetContext(key string) (interface{}, bool) {
	if e.Context == nil {
		return nil, false
	}
	value, exists := e.Context[key]
	return value, exists
}

// Sentinels for errors.Is comparisons against decode failures.
var (
	ErrMissingField    = &AppError{Type: ErrorTypeMissingField, Code: CodeMissingField}
	ErrFormat          = &AppError{Type: ErrorTypeFormat, Code: CodeFormat}
	ErrUnexpectedField = &AppError{Type: ErrorTypeUnexpectedField, Code: CodeUnexpectedField}
)
