package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"ufobeep/config"
	"ufobeep/internal/delivery"
	apimiddleware "ufobeep/internal/delivery/api/middleware"
	"ufobeep/internal/delivery/api/router/handler"
	"ufobeep/internal/delivery/middleware"
	workerhandler "ufobeep/internal/delivery/worker/handler"
	"ufobeep/internal/domain/lifecycle"
	"ufobeep/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// PushPath is where the alert fanout subscription delivers
const PushPath = "/push/alerts"

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *workerhandler.PushHandler
}

// NewServer creates the fanout worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError

	e.GET("/health", handler.HealthCheck)
	e.POST(PushPath, params.PushHandler.HandlePush)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
