package errors

import (
	"fmt"
	"net/http"

	"strik/internal/errors"
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

// Is matches on the business error code so clones made by WithDetails still
// satisfy errors.Is against the predefined values
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return other.errorCode == e.errorCode
}

// Predefined error types
var (
	// ErrAuthenticationFailed is returned when the push gateway token exchange fails.
	// Details carry the raw upstream response body.
	ErrAuthenticationFailed = NewBaseError(
		http.StatusBadGateway,
		"AUTHENTICATION_FAILED",
		"push gateway authentication failed",
		"",
	)

	// ErrNotFound is returned when a record an event depends on does not exist
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"referenced resource not found",
		"",
	)

	// ErrValidationFailed is returned for malformed or unexpected event shapes
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"event validation failed",
		"",
	)

	// ErrInvalidCredentials is returned when the service account cannot be loaded or parsed
	ErrInvalidCredentials = NewBaseError(
		http.StatusInternalServerError,
		"INVALID_CREDENTIALS",
		"service account credentials are invalid",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// DeliveryError represents one recipient's failed push, implementing the AppError interface.
// It is recorded per recipient and never fails a fan-out as a whole.
type DeliveryError struct {
	statusCode int
	body       string
	err        error
}

// NewDeliveryError creates a delivery error from a gateway response
func NewDeliveryError(statusCode int, body string) *DeliveryError {
	return &DeliveryError{
		statusCode: statusCode,
		body:       body,
	}
}

// NewDeliveryTransportError creates a delivery error for a request that never got a response
func NewDeliveryTransportError(err error) *DeliveryError {
	return &DeliveryError{
		err:  err,
		body: err.Error(),
	}
}

// Error implements the error interface
func (e *DeliveryError) Error() string {
	if e.statusCode == 0 {
		return "push delivery failed: " + e.body
	}

	return fmt.Sprintf("push delivery failed with status %d: %s", e.statusCode, e.body)
}

// Unwrap returns the transport error, if any
func (e *DeliveryError) Unwrap() error {
	return e.err
}

// StatusCode returns the gateway HTTP status, zero for transport failures
func (e *DeliveryError) StatusCode() int {
	return e.statusCode
}

// HTTPCode returns the HTTP status code
func (e *DeliveryError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *DeliveryError) ErrorCode() string {
	return "DELIVERY_FAILED"
}

// Message returns the user-friendly error message
func (e *DeliveryError) Message() string {
	return "push delivery failed"
}

// Details returns the raw gateway response body
func (e *DeliveryError) Details() string {
	return e.body
}

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
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the driver error for classification
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// AsAppError extracts the AppError carried by err, if any
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}
