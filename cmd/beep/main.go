package main

import (
	"context"
	"log/slog"
	"os"

	"ufobeep/config"
	"ufobeep/internal/delivery"
	"ufobeep/internal/delivery/api"
	"ufobeep/internal/delivery/api/middleware"
	"ufobeep/internal/delivery/api/router/handler"
	"ufobeep/internal/delivery/devicefeed"
	"ufobeep/internal/domain/service"
	"ufobeep/internal/infra/auth"
	"ufobeep/internal/infra/geoindex"
	logs "ufobeep/internal/infra/log"
	"ufobeep/internal/infra/notification"
	"ufobeep/internal/infra/persistence"
	"ufobeep/internal/infra/pubsub"
	"ufobeep/internal/infra/ratelimit"
	"ufobeep/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		persistence.Module,
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			impl.RegisterIndexMaintenance,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		ratelimit.Module,
		notification.Module,
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			newDeviceIndex,
		),
	)
}

// newDeviceIndex creates the process-wide geo index; RegisterIndexMaintenance fills it on start
func newDeviceIndex(cfg *config.Config) service.DeviceIndex {
	return geoindex.New(cfg.GeoIndex.CellSizeDeg)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatcher,
			impl.NewFanoutService,
			impl.NewWitnessService,
			impl.NewAggregationService,
			impl.NewDeviceLocationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAlertHandler,
			handler.NewWitnessHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				devicefeed.NewListener,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
