// Package errors defines the application error taxonomy shared between the
// usecases and the delivery layer.
package errors

import (
	"net/http"

	"gatepass/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Broadcast-related errors
	ErrBroadcastInvalid = NewBaseError(
		http.StatusBadRequest,
		"BROADCAST_INVALID",
		"Title, body and target role are required",
		"",
	)

	ErrBroadcastInFlight = NewBaseError(
		http.StatusConflict,
		"BROADCAST_IN_FLIGHT",
		"A broadcast is already being sent",
		"",
	)

	ErrBroadcastFailed = NewBaseError(
		http.StatusInternalServerError,
		"BROADCAST_FAILED",
		"Failed to persist the broadcast",
		"",
	)

	// Preference-related errors
	ErrPreferenceWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"PREFERENCE_WRITE_FAILED",
		"Failed to save the notification preference",
		"",
	)

	ErrPreferenceReadFailed = NewBaseError(
		http.StatusInternalServerError,
		"PREFERENCE_READ_FAILED",
		"Failed to read the notification preference",
		"",
	)

	// Push-identity errors
	ErrPushTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"PUSH_TOKEN_INVALID",
		"The reported push token is blank",
		"",
	)
)
