package notification

import (
	"context"
	"log/slog"

	"ufobeep/config"
	"ufobeep/internal/domain/entity"
	"ufobeep/internal/domain/service"
	"ufobeep/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messagingClient is the subset of *messaging.Client the gateway uses.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendDryRun(ctx context.Context, message *messaging.Message) (string, error)
}

type fcmGateway struct {
	client messagingClient
	dryRun bool
	logger *slog.Logger
}

// NewFCMGateway creates a NotificationGateway backed by Firebase Cloud Messaging
func NewFCMGateway(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationGateway, error) {
	opts := make([]option.ClientOption, 0, 1)
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFCMGateway(client, cfg.DryRun, logger), nil
}

func newFCMGateway(client messagingClient, dryRun bool, logger *slog.Logger) *fcmGateway {
	return &fcmGateway{
		client: client,
		dryRun: dryRun,
		logger: logger,
	}
}

// Send pushes one alert to one device token
func (g *fcmGateway) Send(ctx context.Context, token string, payload entity.AlertPayload) error {
	message := buildMessage(token, payload)

	var err error
	if g.dryRun {
		_, err = g.client.SendDryRun(ctx, message)
	} else {
		_, err = g.client.Send(ctx, message)
	}
	if err == nil {
		return nil
	}

	// Unregistered and malformed tokens never succeed on retry
	if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) || messaging.IsSenderIDMismatch(err) {
		g.logger.Debug("[FCM] Token rejected",
			slog.String("sighting_id", payload.SightingID.String()),
			slog.Any("error", err),
		)

		return errors.Wrap(service.ErrPermanentDelivery, err.Error())
	}

	return errors.Wrap(err, "failed to send notification")
}

func buildMessage(token string, payload entity.AlertPayload) *messaging.Message {
	androidPriority := "high"
	if payload.EscalationLevel == entity.EscalationNormal {
		androidPriority = "normal"
	}

	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: payload.Data(),
		Android: &messaging.AndroidConfig{
			Priority:    androidPriority,
			CollapseKey: payload.SightingID.String(),
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": apnsPriority(payload.EscalationLevel)},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound:          "default",
					ThreadID:       payload.SightingID.String(),
					MutableContent: true,
				},
			},
		},
	}
}

// apnsPriority maps escalated alerts to immediate delivery.
func apnsPriority(level entity.EscalationLevel) string {
	if level != entity.EscalationNormal {
		return "10"
	}

	return "5"
}
