// Package response renders the JSON envelope shared by every API route.
package response

import (
	"net/http"

	deliverycontext "ufobeep/internal/delivery/context"
	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/errors"

	"github.com/labstack/echo/v4"
)

// Envelope carries exactly one of Data or Error
type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
	Meta  MetaInfo   `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Only for client errors other than 401/403
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id,omitempty"`
}

func meta(c echo.Context) MetaInfo {
	return MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{Data: data, Meta: meta(c)})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, Envelope{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// TooManyRequests returns a 429 error
func TooManyRequests(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusTooManyRequests, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// AppError renders a domain error with its own status, code and details
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if appErr.Details() != "" {
		details = appErr.Details()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// HandleAppError renders domain errors and hands anything else to the central error handler
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
