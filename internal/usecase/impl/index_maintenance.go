package impl

import (
	"context"
	"log/slog"
	"time"

	"ufobeep/config"
	"ufobeep/internal/domain/lifecycle"
	"ufobeep/internal/errors"
	"ufobeep/internal/usecase"

	"go.uber.org/fx"
)

// IndexMaintenanceParams holds dependencies for the geo index lifecycle hooks.
type IndexMaintenanceParams struct {
	fx.In
	fx.Lifecycle

	Devices usecase.DeviceLocationUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// RegisterIndexMaintenance rebuilds the geo index on start and runs the stale sweeper until stop.
func RegisterIndexMaintenance(params IndexMaintenanceParams) {
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	done := make(chan struct{})
	interval := params.Config.GeoIndex.SweepInterval

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if _, err := params.Devices.RebuildIndex(ctx); err != nil {
				close(done)

				return errors.Wrap(err, "initial geo index rebuild")
			}

			go func() {
				defer close(done)
				runSweeper(sweepCtx, params.Devices, interval, params.Logger)
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancelSweep()

			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "stale sweeper did not stop")
			}
		},
	})
}

func runSweeper(ctx context.Context, devices usecase.DeviceLocationUsecase, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		logger.Info("[GeoIndex] Stale sweeper disabled")

		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			devices.SweepStale(ctx)
		}
	}
}
