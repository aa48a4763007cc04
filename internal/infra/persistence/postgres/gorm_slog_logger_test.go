package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"ufobeep/config"
	"ufobeep/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }
	now := time.Now()

	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		wantMsg string
	}{
		{name: "failure", begin: now, err: errors.New("deadlock detected"), wantMsg: "Query failed"},
		{name: "cancelled", begin: now, err: errors.Wrap(context.Canceled, "select"), wantMsg: "Query cancelled"},
		{name: "slow", begin: now.Add(-time.Second), wantMsg: "Slow query"},
		{name: "fast outside debug", begin: now},
		{name: "fast in debug", debug: true, begin: now, wantMsg: "[GORM] Query"},
		{name: "not found", begin: now, err: gorm.ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newCapturingGormLogger(tt.debug)

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.wantMsg == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantMsg)
			assert.Contains(t, buf.String(), "component=gorm")
		})
	}
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	l, buf := newCapturingGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))

	assert.Empty(t, buf.String())
}
