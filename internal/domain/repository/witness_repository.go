package repository

import (
	"context"
	"errors"

	"ufobeep/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWitnessNotFound is returned when a device has not confirmed a sighting.
var ErrWitnessNotFound = errors.New("witness confirmation not found")

// WitnessRepository stores the latest confirmation per (sighting, device).
// Implementations must serialize writes for the same key only.
type WitnessRepository interface {
	// UpsertWitness inserts or replaces the confirmation keyed by sighting and device.
	// created is true when no confirmation existed before.
	UpsertWitness(ctx context.Context, witness *entity.WitnessConfirmation) (created bool, err error)

	// FindWitness returns one confirmation or ErrWitnessNotFound.
	FindWitness(ctx context.Context, sightingID uuid.UUID, deviceID string) (*entity.WitnessConfirmation, error)

	// ListWitnesses returns confirmations newest first (device id breaks ties).
	// A limit <= 0 returns all of them.
	ListWitnesses(ctx context.Context, sightingID uuid.UUID, limit int) ([]*entity.WitnessConfirmation, error)

	// CountWitnesses returns the number of distinct confirming devices.
	CountWitnesses(ctx context.Context, sightingID uuid.UUID) (int, error)
}
