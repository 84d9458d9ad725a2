// Package errors defines the application error taxonomy for the
// registration workflow.
package errors

import (
	"net/http"

	"resto/internal/errors"
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
	// ErrUnsupportedLogoFormat rejects logo uploads outside the accepted set.
	ErrUnsupportedLogoFormat = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_LOGO_FORMAT",
		"Only PNG or JPG files are allowed for logo.",
		"",
	)

	// ErrRestaurantIDConflict is surfaced when identifier allocation keeps
	// colliding after the bounded retry loop.
	ErrRestaurantIDConflict = NewBaseError(
		http.StatusInternalServerError,
		"RESTAURANT_ID_CONFLICT",
		"Error registering restaurant",
		"could not allocate a unique restaurant id",
	)

	// ErrRegistrationFailed covers unexpected persistence failures.
	ErrRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REGISTRATION_FAILED",
		"Error registering restaurant",
		"",
	)

	// ErrLogoStoreFailed covers asset store failures.
	ErrLogoStoreFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOGO_STORE_FAILED",
		"Error registering restaurant",
		"failed to store the uploaded logo",
	)

	// Geocode proxy errors
	ErrGeocodeDisabled = NewBaseError(
		http.StatusServiceUnavailable,
		"GEOCODE_DISABLED",
		"Pincode lookup is not configured",
		"",
	)

	ErrPincodeNotFound = NewBaseError(
		http.StatusNotFound,
		"PINCODE_NOT_FOUND",
		"No location found for that pincode",
		"",
	)

	ErrGeocodeFailed = NewBaseError(
		http.StatusBadGateway,
		"GEOCODE_FAILED",
		"Pincode lookup failed",
		"",
	)
)

// NewFieldValidationError builds the 400 error for the first failing field of
// a submission. The field name travels in the details so handlers and tests
// can assert which rule fired without parsing the message.
func NewFieldValidationError(field, message string) AppError {
	return NewBaseError(http.StatusBadRequest, "FIELD_VALIDATION_FAILED", message, field)
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
	return "Error registering restaurant"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
