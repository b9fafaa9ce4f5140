package cli

import (
	"fmt"

	"todo/internal/errors"
	"todo/internal/logging"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages while keeping the original
// error reachable through errors.Is and errors.As.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.ShouldLogError(err) {
		logging.Debugf("%s failed [%s]: %v\n", operation, errors.GetErrorCode(err), err)
	}

	if _, ok := errors.AsAppError(err); ok {
		return &userError{
			message: fmt.Sprintf("failed to %s: %s", operation, errors.GetUserMessage(err)),
			cause:   err,
		}
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// IsDecodeError checks if an error came from rejecting a record
func (eh *ErrorHandler) IsDecodeError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeMissingField) ||
		errors.IsErrorType(err, errors.ErrorTypeFormat) ||
		errors.IsErrorType(err, errors.ErrorTypeUnexpectedField)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

type userError struct {
	message string
	cause   error
}

func (e *userError) Error() string { return e.message }

func (e *userError) Unwrap() error { return e.cause }
