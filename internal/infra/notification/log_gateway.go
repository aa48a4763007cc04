package notification

import (
	"context"
	"log/slog"

	"ufobeep/internal/domain/entity"
	"ufobeep/internal/domain/service"
)

// logGateway records pushes instead of delivering them. Used when Firebase is not configured.
type logGateway struct {
	logger *slog.Logger
}

// NewLogGateway creates a NotificationGateway that only logs
func NewLogGateway(logger *slog.Logger) service.NotificationGateway {
	return &logGateway{logger: logger}
}

func (g *logGateway) Send(ctx context.Context, token string, payload entity.AlertPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	g.logger.Info("[LogGateway] Alert push",
		slog.String("sighting_id", payload.SightingID.String()),
		slog.String("title", payload.Title),
		slog.Float64("distance_km", payload.DistanceKm),
		slog.String("escalation_level", string(payload.EscalationLevel)),
		slog.Int("token_length", len(token)),
	)

	return nil
}
