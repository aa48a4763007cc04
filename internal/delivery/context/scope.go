// Package context carries per-request metadata from delivery into use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// AttrRequestID is the Pub/Sub message attribute and log field carrying the request ID.
	AttrRequestID = "request_id"

	echoKeyRequestID = "request_id"
)

type scopeKey struct{}

// scope is stored once per request; derived contexts copy it.
type scope struct {
	requestID string
	logger    *slog.Logger
}

func scopeFrom(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s
}

// GetRequestID returns the request ID stored by the request ID middleware, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoKeyRequestID).(string)

	return id
}

// SetRequestID stores the request ID on echo.Context for response envelopes.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	return scopeFrom(ctx).requestID
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	s := scopeFrom(ctx)
	s.requestID = requestID

	return context.WithValue(ctx, scopeKey{}, s)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	return scopeFrom(ctx).logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	s := scopeFrom(ctx)
	s.logger = logger

	return context.WithValue(ctx, scopeKey{}, s)
}

// WithLogAttrs narrows the request-scoped logger with args. Without a logger, ctx is returned unchanged.
func WithLogAttrs(ctx context.Context, args ...any) context.Context {
	logger := GetLogger(ctx)
	if logger == nil {
		return ctx
	}

	return WithLogger(ctx, logger.With(args...))
}
