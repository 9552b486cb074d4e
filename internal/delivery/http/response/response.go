// Package response renders API responses in the wire format the host
// application's clients already consume.
package response

import (
	"net/http"

	domainerrors "snsbridge/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorBody is the error envelope: a list of human-readable messages plus a
// machine-readable error type.
type ErrorBody struct {
	Errors    []string `json:"errors"`
	ErrorType string   `json:"error_type,omitempty"`
}

// JSON renders data as-is with the given status code.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error renders an error envelope with the given status code.
func Error(c echo.Context, statusCode int, errorType string, messages ...string) error {
	if len(messages) == 0 {
		messages = []string{http.StatusText(statusCode)}
	}

	return c.JSON(statusCode, ErrorBody{
		Errors:    messages,
		ErrorType: errorType,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorType string, message string) error {
	return Error(c, http.StatusBadRequest, errorType, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorType string, message string) error {
	return Error(c, http.StatusUnauthorized, errorType, message)
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorType string, message string) error {
	return Error(c, http.StatusForbidden, errorType, message)
}

// HandleAppError maps domain errors to their wire representation. Errors that
// carry no HTTP mapping bubble up to the global error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
	}

	return errors.WithStack(err)
}
