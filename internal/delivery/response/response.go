// Package response renders the worker's JSON error bodies.
package response

import (
	"net/http"

	domainerrors "strik/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Error writes an error response
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error:   message,
		Code:    errorCode,
		Details: details,
	})
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, "UNAUTHORIZED", message, "")
}

// TooManyRequests returns a 429 error
func TooManyRequests(c echo.Context) error {
	return Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests", "")
}

// InternalServerError returns a 500 error without exposing the cause
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), "internal server error", "")
}

// AppError renders err when it carries an AppError and reports whether it did
func AppError(c echo.Context, err error) (bool, error) {
	appErr, ok := domainerrors.AsAppError(err)
	if !ok {
		return false, nil
	}

	return true, c.JSON(appErr.HTTPCode(), domainerrors.NewErrorResponse(appErr))
}
