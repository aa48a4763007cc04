package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ufobeep/config"
	"ufobeep/internal/domain/constants"
	"ufobeep/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewPublisher_Selection(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		check   func(t *testing.T, p service.EventPublisher)
	}{
		{
			name: "unconfigured drops events",
			cfg:  nil,
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, &noopPublisher{}, p)
				assert.NoError(t, p.PublishAlertEvent(context.Background(), &service.AlertEvent{SightingID: "s1"}))
			},
		},
		{
			name: "local push",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push/alerts"},
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, &localHTTPPublisher{}, p)
			},
		},
		{
			name:    "local without endpoint",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "local endpoint",
		},
		{
			name:    "google without topic",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "ufobeep"},
			wantErr: "topic ID",
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: "kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := newPublisher(context.Background(), tt.cfg, logger)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestNewEventPublisher_ClosesOnStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	p, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	require.NotNil(t, p)

	lc.RequireStart().RequireStop()
}
