package main

import (
	"context"
	"log/slog"
	"os"

	"ufobeep/config"
	"ufobeep/internal/delivery"
	"ufobeep/internal/delivery/devicefeed"
	"ufobeep/internal/delivery/worker"
	"ufobeep/internal/delivery/worker/handler"
	"ufobeep/internal/domain/service"
	"ufobeep/internal/infra/geoindex"
	logs "ufobeep/internal/infra/log"
	"ufobeep/internal/infra/notification"
	"ufobeep/internal/infra/persistence"
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

// The worker consumes alert events pushed by Pub/Sub and runs the fanout.
// It keeps its own geo index, rebuilt from storage on start and fed by device change notifications.
func main() {
	fx.New(
		injectInfra(),
		persistence.Module,
		injectService(),
		injectUsecase(),
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
		fx.Provide(
			func(cfg *config.Config) service.DeviceIndex {
				return geoindex.New(cfg.GeoIndex.CellSizeDeg)
			},
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDispatcher,
			impl.NewFanoutService,
			impl.NewDeviceLocationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
