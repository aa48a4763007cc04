package pubsub

import (
	"context"
	"log/slog"

	"ufobeep/config"
	"ufobeep/internal/domain/constants"
	"ufobeep/internal/domain/service"
	"ufobeep/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher drops alert events; the API then relies on direct dispatch calls
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAlertEvent(_ context.Context, event *service.AlertEvent) error {
	p.logger.Debug("[NoopPubSub] Publishing disabled, event dropped",
		slog.String("event_type", event.EventType),
		slog.String("sighting_id", event.SightingID),
		slog.String("escalation_level", event.EscalationLevel),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the alert event transport and closes it on shutdown
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("[PubSub] Closing event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("[PubSub] Not configured, escalation events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("[PubSub] Using local HTTP push", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}
		logger.Info("[PubSub] Using Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the alert event publisher
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
