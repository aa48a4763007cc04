package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"ufobeep/config"
	"ufobeep/internal/domain/constants"
	"ufobeep/internal/domain/lifecycle"
	"ufobeep/internal/domain/service"
	"ufobeep/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// pruneInterval is how often idle device logs are dropped from the memory limiter
const pruneInterval = time.Minute

// LimiterParams holds dependencies for AlertRateLimiter, injected by Fx
type LimiterParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewAlertRateLimiter creates the limiter selected by rateLimit.backend
func NewAlertRateLimiter(params LimiterParams) (service.AlertRateLimiter, error) {
	cfg := params.Config.RateLimit
	logger := params.Logger

	switch cfg.Backend {
	case constants.RateLimitBackendRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis rate limit backend")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping Redis")
				}

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		logger.Info("Using Redis alert rate limiter",
			slog.String("addr", cfg.Redis.Addr),
			slog.Int("max_alerts", cfg.MaxAlerts),
			slog.Duration("window", cfg.Window),
		)

		return NewRedisLimiter(client, cfg.MaxAlerts, cfg.Window, cfg.Redis.KeyPrefix), nil

	case constants.RateLimitBackendMemory, "":
		limiter := NewMemoryLimiter(cfg.MaxAlerts, cfg.Window)
		registerPruner(params.Lifecycle, limiter, logger)

		logger.Info("Using in-memory alert rate limiter",
			slog.Int("max_alerts", cfg.MaxAlerts),
			slog.Duration("window", cfg.Window),
		)

		return limiter, nil

	default:
		return nil, errors.Errorf("unknown rate limit backend: %s", cfg.Backend)
	}
}

func registerPruner(lc fx.Lifecycle, limiter *MemoryLimiter, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)

				ticker := time.NewTicker(pruneInterval)
				defer ticker.Stop()

				for {
					select {
					case <-ctx.Done():
						return
					case now := <-ticker.C:
						if dropped := limiter.Prune(now); dropped > 0 {
							logger.Debug("[RateLimit] Pruned idle devices", slog.Int("dropped", dropped))
						}
					}
				}
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

// Module provides the rate limit FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAlertRateLimiter),
)
