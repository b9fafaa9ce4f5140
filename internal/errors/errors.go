package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NewMissingFieldError creates an error for a mandatory record field that is absent
func NewMissingFieldError(field string) *AppError {
	return &AppError{
		Type:    ErrorTypeMissingField,
		Message: fmt.Sprintf("required field %q is missing", field),
		Code:    CodeMissingField,
		Context: map[string]interface{}{
			"field": field,
		},
	}
}

// NewFormatError creates an error for a record field whose value cannot be interpreted
func NewFormatError(field string, value interface{}, reason string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeFormat,
		Message: fmt.Sprintf("field %q is malformed: %s", field, reason),
		Code:    CodeFormat,
		Cause:   cause,
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewUnexpectedFieldError creates an error listing record keys outside the recognized set
func NewUnexpectedFieldError(fields []string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnexpectedField,
		Message: fmt.Sprintf("unexpected field(s): %s", strings.Join(fields, ", ")),
		Code:    CodeUnexpectedField,
		Context: map[string]interface{}{
			"fields": fields,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    CodeInvalidInput,
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewIOError creates an error for a failed read or write
func NewIOError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeIO,
		Message: fmt.Sprintf("i/o operation failed: %s", operation),
		Code:    CodeIO,
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeMissingField, ErrorTypeUnexpectedField, ErrorTypeInvalidInput:
			return appErr.Message
		case ErrorTypeFormat:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s (%v)", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		case ErrorTypeIO:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeMissingField, ErrorTypeFormat, ErrorTypeUnexpectedField, ErrorTypeInvalidInput:
			return false // bad input from the caller
		case ErrorTypeIO:
			return true
		default:
			return true
		}
	}
	return true
}
