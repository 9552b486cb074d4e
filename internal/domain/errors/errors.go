package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code, rendered as error_type on the wire
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
	// ErrInvalidPlatform is returned before any broker call when the platform
	// parameter is not ios or android.
	ErrInvalidPlatform = NewBaseError(
		http.StatusBadRequest,
		"invalid_parameters",
		"Platform parameter should be ios or android.",
		"",
	)

	// ErrEndpointCreationFailed is returned when the broker refused or errored
	// on endpoint creation; nothing is persisted in that case.
	ErrEndpointCreationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"endpoint_creation_failed",
		"Missing endpoint_arn.",
		"",
	)

	// ErrRegistrationNotFound is returned when no registration matches the
	// supplied device token.
	ErrRegistrationNotFound = NewBaseError(
		http.StatusNotFound,
		"not_found",
		"No subscription matches that device token.",
		"",
	)

	// ErrDeviceTokenConflict is returned to the loser of a concurrent create
	// race on the same device token.
	ErrDeviceTokenConflict = NewBaseError(
		http.StatusConflict,
		"conflict",
		"Another subscription for this device token was just created.",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"invalid_parameters",
		"Request parameters failed validation.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"internal_error",
		"Internal server error.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "database_error"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
