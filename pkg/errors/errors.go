package errors

import (
	"errors"
	"fmt"
)

// Error codes for the scheduling error taxonomy
const (
	CodeIncompleteDraft        = "incomplete_draft"
	CodeInvalidTimeGranularity = "invalid_time_granularity"
	CodePastDateTime           = "past_date_time"
	CodeGatewayFailure         = "gateway_failure"
	CodeMalformedPushMessage   = "malformed_push_message"
	CodeReconnectExhausted     = "reconnect_exhausted"
	CodeNotFound               = "not_found"
	CodeInvalidInput           = "invalid_input"
)

// Common errors
var (
	ErrIncompleteDraft        = errors.New("draft is incomplete")
	ErrInvalidTimeGranularity = errors.New("time must be a multiple of 15 minutes")
	ErrPastDateTime           = errors.New("date and time must not be in the past")
	ErrGatewayFailure         = errors.New("scheduler gateway request failed")
	ErrMalformedPushMessage   = errors.New("malformed push message")
	ErrReconnectExhausted     = errors.New("reconnect attempts exhausted")
	ErrNotFound               = errors.New("not found")
	ErrInvalidInput           = errors.New("invalid input")
)

// Error carries a taxonomy code and a user-facing message
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with a code and message
func New(code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional message, keeping the code of err if any
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    GetCode(err),
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the outermost error code if it exists
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the user-facing message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func IsIncompleteDraft(err error) bool {
	return errors.Is(err, ErrIncompleteDraft)
}

func IsInvalidTimeGranularity(err error) bool {
	return errors.Is(err, ErrInvalidTimeGranularity)
}

func IsPastDateTime(err error) bool {
	return errors.Is(err, ErrPastDateTime)
}

func IsGatewayFailure(err error) bool {
	return errors.Is(err, ErrGatewayFailure) || GetCode(err) == CodeGatewayFailure
}

// IsNotFound returns true if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
