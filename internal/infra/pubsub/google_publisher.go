package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"ufobeep/internal/domain/service"
	"ufobeep/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher publishes alert events ordered per sighting
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to the topic and fails fast when it does not exist
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicPath)
	}

	publisher := client.Publisher(topicID)
	// Ordering by sighting keeps an escalation behind the run it escalates.
	publisher.EnableMessageOrdering = true

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger.With(slog.String("topic", topicPath)),
	}, nil
}

// PublishAlertEvent blocks until the server acknowledges the message
func (p *googlePubSubPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  attributes,
		OrderingKey: event.SightingID,
	}).Get(ctx)
	if err != nil {
		// A failed publish pauses its ordering key until resumed.
		p.publisher.ResumePublish(event.SightingID)

		return errors.Wrapf(err, "failed to publish %s for sighting %s", event.EventType, event.SightingID)
	}

	p.logger.Info("[GooglePubSub] Event published",
		slog.String("event_type", event.EventType),
		slog.String("sighting_id", event.SightingID),
		slog.String("escalation_level", event.EscalationLevel),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
