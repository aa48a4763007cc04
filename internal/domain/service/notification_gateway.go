package service

import (
	"context"
	"errors"

	"ufobeep/internal/domain/entity"
)

// ErrPermanentDelivery marks a gateway failure that retrying cannot fix,
// such as an unregistered or malformed device token.
var ErrPermanentDelivery = errors.New("permanent delivery failure")

// NotificationGateway delivers one alert to one device token.
// Implementations must honour ctx deadlines and be safe to retry.
type NotificationGateway interface {
	Send(ctx context.Context, token string, payload entity.AlertPayload) error
}
