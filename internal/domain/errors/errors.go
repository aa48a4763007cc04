package errors

import (
	"net/http"

	"ufobeep/internal/errors"
)

// AppError is an error that knows how it should be rendered to API clients.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Optional detail
}

// BaseError is the stock AppError implementation.
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

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with a context message, keeping it matchable with errors.As.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy carrying the given detail text.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	ErrSightingNotFound = NewBaseError(
		http.StatusNotFound,
		"SIGHTING_NOT_FOUND",
		"sighting not found",
		"",
	)

	ErrWitnessNotFound = NewBaseError(
		http.StatusNotFound,
		"WITNESS_NOT_FOUND",
		"no witness confirmation for this device",
		"",
	)

	ErrFanoutNotFound = NewBaseError(
		http.StatusNotFound,
		"FANOUT_NOT_FOUND",
		"no alert fanout recorded for this sighting",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidLocation = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LOCATION",
		"latitude must be within [-90, 90] and longitude within [-180, 180]",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid service credentials",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"too many requests, slow down",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError wraps a storage failure as an AppError.
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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is / errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
