package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"ufobeep/config"
	"ufobeep/internal/domain/lifecycle"
	"ufobeep/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval      = 5 * time.Second
	poolWaitWarnThreshold    = 50 * time.Millisecond
	fanoutWritesPoolHeadroom = 4
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the gorm connection used by the witness, alert and device repositories.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-statement writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := &poolMonitor{
		logger:   params.Logger,
		db:       sqlDB,
		interval: poolMonitorInterval,
		// Background delivery status writes compete with request traffic for
		// connections; warn before the dispatcher saturates the pool.
		inFlightWarn: fanoutWritesPoolHeadroom,
	}
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

type poolMonitor struct {
	logger       *slog.Logger
	db           *sql.DB
	interval     time.Duration
	inFlightWarn int
}

// run reports connection pool waits between ticks until ctx is cancelled.
func (m *poolMonitor) run(ctx context.Context) {
	if m.logger == nil || m.db == nil {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.db.Stats()
			m.report(ctx, prev, cur)
			prev = cur
		}
	}
}

func (m *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waits),
		slog.Duration("waitDurationDelta", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}

	saturated := cur.MaxOpenConnections > 0 && cur.MaxOpenConnections-cur.InUse < m.inFlightWarn
	if waited >= poolWaitWarnThreshold || saturated {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "[Postgres] Pool wait detected", attrs...)

		return
	}
	m.logger.LogAttrs(ctx, slog.LevelDebug, "[Postgres] Pool wait observed", attrs...)
}
