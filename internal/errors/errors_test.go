package errors

import (
	"errors"
	"testing"
)

func TestNewMissingFieldError(t *testing.T) {
	err := NewMissingFieldError("title")

	if err.Type != ErrorTypeMissingField {
		t.Errorf("NewMissingFieldError type = %v, want %v", err.Type, ErrorTypeMissingField)
	}
	if err.Message != `required field "title" is missing` {
		t.Errorf("NewMissingFieldError message = %v", err.Message)
	}
	if err.Code != CodeMissingField {
		t.Errorf("NewMissingFieldError code = %v, want %v", err.Code, CodeMissingField)
	}

	field, ok := err.GetContext("field")
	if !ok || field != "title" {
		t.Errorf("NewMissingFieldError should set field context")
	}
}

func TestNewFormatError(t *testing.T) {
	cause := errors.New("cannot parse")
	err := NewFormatError("due_date", "not-a-date", "expected YYYY-MM-DD", cause)

	if err.Type != ErrorTypeFormat {
		t.Errorf("NewFormatError type = %v, want %v", err.Type, ErrorTypeFormat)
	}
	if err.Message != `field "due_date" is malformed: expected YYYY-MM-DD` {
		t.Errorf("NewFormatError message = %v", err.Message)
	}
	if err.Code != CodeFormat {
		t.Errorf("NewFormatError code = %v, want %v", err.Code, CodeFormat)
	}
	if err.Cause != cause {
		t.Errorf("NewFormatError cause = %v, want %v", err.Cause, cause)
	}

	value, ok := err.GetContext("value")
	if !ok || value != "not-a-date" {
		t.Errorf("NewFormatError should set value context")
	}
}

func TestNewUnexpectedFieldError(t *testing.T) {
	err := NewUnexpectedFieldError([]string{"color", "owner"})

	if err.Type != ErrorTypeUnexpectedField {
		t.Errorf("NewUnexpectedFieldError type = %v, want %v", err.Type, ErrorTypeUnexpectedField)
	}
	if err.Message != "unexpected field(s): color, owner" {
		t.Errorf("NewUnexpectedFieldError message = %v", err.Message)
	}
	if err.Code != CodeUnexpectedField {
		t.Errorf("NewUnexpectedFieldError code = %v, want %v", err.Code, CodeUnexpectedField)
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("id", "abc", "must be an integer")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for id: must be an integer" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}
	if err.Code != CodeInvalidInput {
		t.Errorf("NewInvalidInputError code = %v, want %v", err.Code, CodeInvalidInput)
	}
}

func TestNewIOError(t *testing.T) {
	cause := errors.New("no such file")
	err := NewIOError("read record", cause)

	if err.Type != ErrorTypeIO {
		t.Errorf("NewIOError type = %v, want %v", err.Type, ErrorTypeIO)
	}
	if err.Message != "i/o operation failed: read record" {
		t.Errorf("NewIOError message = %v", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Error("NewIOError should wrap its cause")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original")
	err := WrapError(cause, ErrorTypeIO, "write output")

	if err.Code != "io" {
		t.Errorf("WrapError code = %v, want io", err.Code)
	}
	if err.Cause != cause {
		t.Errorf("WrapError cause = %v, want %v", err.Cause, cause)
	}
}

func TestIsErrorType(t *testing.T) {
	if !IsErrorType(NewMissingFieldError("id"), ErrorTypeMissingField) {
		t.Error("IsErrorType should match missing field error")
	}
	if IsErrorType(NewMissingFieldError("id"), ErrorTypeFormat) {
		t.Error("IsErrorType should not match a different type")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeFormat) {
		t.Error("IsErrorType should not match plain errors")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"missing field", NewMissingFieldError("id"), `required field "id" is missing`},
		{"format with cause", NewFormatError("due_date", "x", "expected YYYY-MM-DD", errors.New("bad")), `field "due_date" is malformed: expected YYYY-MM-DD (bad)`},
		{"format without cause", NewFormatError("title", 5, "expected text", nil), `field "title" is malformed: expected text`},
		{"io", NewIOError("read record", errors.New("denied")), "i/o operation failed: read record: denied"},
		{"plain error", errors.New("plain"), "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(NewUnexpectedFieldError([]string{"x"})); code != CodeUnexpectedField {
		t.Errorf("GetErrorCode() = %v, want %v", code, CodeUnexpectedField)
	}
	if code := GetErrorCode(errors.New("plain")); code != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN_ERROR", code)
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"missing field", NewMissingFieldError("id"), false},
		{"format", NewFormatError("due_date", "x", "bad", nil), false},
		{"unexpected field", NewUnexpectedFieldError([]string{"x"}), false},
		{"invalid input", NewInvalidInputError("id", "x", "bad"), false},
		{"io", NewIOError("read", errors.New("x")), true},
		{"plain", errors.New("plain"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldLogError(tt.err); got != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", got, tt.expected)
			}
		})
	}
}
