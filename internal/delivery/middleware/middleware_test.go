package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ufobeep/config"
	deliverycontext "ufobeep/internal/delivery/context"
	domainerrors "ufobeep/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKept bool
	}{
		{name: "well formed id is kept", header: "req-abc-123", wantKept: true},
		{name: "missing id is generated", header: ""},
		{name: "id with spaces is replaced", header: "req 1"},
		{name: "oversized id is replaced", header: strings.Repeat("a", maxRequestIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newTestEcho(&buf, false)

			var seenCtxID, seenEchoID string
			e.GET("/", func(c echo.Context) error {
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				seenEchoID = deliverycontext.GetRequestID(c)
				require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, seenCtxID)
			assert.Equal(t, got, seenEchoID)
			if tt.wantKept {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerMiddleware_Levels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		handler   echo.HandlerFunc
		wantLevel string
		wantCode  string
	}{
		{
			name:      "success is debug outside debug mode",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: `"level":"DEBUG"`,
			wantCode:  `"status":200`,
		},
		{
			name:      "success is info in debug mode",
			debug:     true,
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: `"level":"INFO"`,
			wantCode:  `"status":200`,
		},
		{
			name:      "app error status is derived before the error handler runs",
			handler:   func(echo.Context) error { return domainerrors.ErrSightingNotFound },
			wantLevel: `"level":"WARN"`,
			wantCode:  `"status":404`,
		},
		{
			name:      "unknown error is logged as 500",
			handler:   func(echo.Context) error { return assert.AnError },
			wantLevel: `"level":"ERROR"`,
			wantCode:  `"status":500`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newTestEcho(&buf, tt.debug)
			e.GET("/sightings/:sighting_id", tt.handler)

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sightings/s1", nil))

			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, tt.wantCode)
			assert.Contains(t, out, `"route":"/sightings/:sighting_id"`)
			assert.Contains(t, out, `"request_id"`)
		})
	}
}
