package usecase

import (
	"context"

	"ufobeep/internal/domain/entity"

	"github.com/google/uuid"
)

// WitnessLocation is where the witness stood. Coordinates are pointers so a
// missing value is not mistaken for (0, 0).
type WitnessLocation struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	AltitudeM *float64 `json:"altitude_m,omitempty"`
}

// ConfirmWitnessInput is a device's "I see it too" report.
type ConfirmWitnessInput struct {
	SightingID   uuid.UUID        `json:"-"`
	DeviceID     string           `json:"device_id" validate:"required,max=255"`
	Location     *WitnessLocation `json:"location" validate:"required"`
	BearingDeg   *float64         `json:"bearing_deg,omitempty" validate:"omitempty,gte=0,lt=360"`
	AccuracyM    *float64         `json:"accuracy_m,omitempty" validate:"omitempty,gte=0"`
	StillVisible *bool            `json:"still_visible" validate:"required"`
}

// WitnessUsecase records and reads witness confirmations.
type WitnessUsecase interface {
	// Confirm upserts the device's confirmation for the sighting. Repeated calls replace the
	// previous confirmation, so a device is counted once.
	Confirm(ctx context.Context, input ConfirmWitnessInput) (*entity.WitnessConfirmation, error)

	// GetStatus returns the device's confirmation for the sighting.
	GetStatus(ctx context.Context, sightingID uuid.UUID, deviceID string) (*entity.WitnessConfirmation, error)

	// ListWitnesses returns confirmations newest first. A limit <= 0 returns all.
	ListWitnesses(ctx context.Context, sightingID uuid.UUID, limit int) ([]*entity.WitnessConfirmation, error)
}
