package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ufobeep/config"
	"ufobeep/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

// newGormSlogLogger routes gorm output through the service logger.
// Debug mode logs every statement; otherwise only failures and slow queries.
func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger.With(slog.String("component", "gorm")),
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}
	l.logger.LogAttrs(ctx, level, "[GORM] "+fmt.Sprintf(msg, args...))
}

// Trace logs one statement. Not-found lookups are normal control flow and
// cancelled statements come from callers going away, so neither is an error.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, ok := l.classify(err, elapsed)
	if !ok {
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) classify(err error, elapsed time.Duration) (slog.Level, string, bool) {
	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return 0, "", false
	case err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		return slog.LevelWarn, "[GORM] Query cancelled", l.level >= logger.Warn
	case err != nil:
		return slog.LevelError, "[GORM] Query failed", l.level >= logger.Error
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		return slog.LevelWarn, "[GORM] Slow query", l.level >= logger.Warn
	default:
		return slog.LevelDebug, "[GORM] Query", l.level >= logger.Info
	}
}
