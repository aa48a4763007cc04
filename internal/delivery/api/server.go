package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"ufobeep/config"
	"ufobeep/internal/delivery"
	apimiddleware "ufobeep/internal/delivery/api/middleware"
	"ufobeep/internal/delivery/api/router"
	"ufobeep/internal/delivery/api/validator"
	"ufobeep/internal/delivery/middleware"
	"ufobeep/internal/domain/lifecycle"
	"ufobeep/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the alert API: internal dispatch routes, public witness routes and device registration.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e, err := newEcho(params)
	if err != nil {
		return nil, err
	}

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) (*echo.Echo, error) {
	httpCfg := params.Cfg.HTTP

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = httpCfg.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = httpCfg.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = httpCfg.Timeouts.WriteTimeout
	e.Server.IdleTimeout = httpCfg.Timeouts.IdleTimeout

	// The witness limiter keys on RealIP, so proxy headers are only honoured when configured.
	if httpCfg.TrustProxyHeaders {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	if _, err := parseBodyLimit(httpCfg.MaxRequestBodySize); err != nil {
		return nil, err
	}

	// Recover before request ID so panics still get a logged, enveloped 500.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		ExposeHeaders: []string{"X-Request-Id", "Retry-After"},
	}))
	e.Use(echomiddleware.BodyLimit(httpCfg.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e, nil
}

// parseBodyLimit rejects limits echo would otherwise panic on at startup
func parseBodyLimit(limit string) (int64, error) {
	n, err := bytes.Parse(limit)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid http.maxRequestBodySize %q", limit)
	}

	return n, nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
