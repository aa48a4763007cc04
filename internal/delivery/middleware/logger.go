package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"ufobeep/config"
	deliverycontext "ufobeep/internal/delivery/context"
	"ufobeep/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request.
// Successful requests are only logged in debug mode; failures always are.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	now    func() time.Time
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
		now:    time.Now,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := m.now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()

	// The error handler has not run yet, so derive the status it will write.
	status := c.Response().Status
	if err != nil && !c.Response().Committed {
		status = http.StatusInternalServerError

		var he *echo.HTTPError
		var coder interface{ HTTPCode() int }
		if errors.As(err, &he) {
			status = he.Code
		} else if errors.As(err, &coder) {
			status = coder.HTTPCode()
		}
	}

	level := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	case m.debug:
		level = slog.LevelInfo
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	if !logger.Enabled(req.Context(), level) {
		return
	}

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.RequestURI()),
		slog.Int("status", status),
		slog.Duration("latency", m.now().Sub(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.Int64("bytes_out", c.Response().Size),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	logger.LogAttrs(req.Context(), level, "HTTP Request", attrs...)
}
