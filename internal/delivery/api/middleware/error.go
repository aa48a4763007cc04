package middleware

import (
	"log/slog"
	"net/http"

	"ufobeep/internal/delivery/api/response"
	deliverycontext "ufobeep/internal/delivery/context"
	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware is the API's HTTPErrorHandler
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError renders any error that escaped a handler. Server errors are logged with the request logger.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("error_code", appErr.ErrorCode()), slog.Any("error", err))
		}
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	logger.Error("Unhandled error", slog.Any("error", err))

	// Internal error text never reaches the client
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
