package usecase

import (
	"context"

	"ufobeep/internal/domain/entity"

	"github.com/google/uuid"
)

// DispatchOptions tunes one fanout run. Zero values fall back to configuration.
type DispatchOptions struct {
	// DefaultRadiusKm overrides the configured default alert radius for devices without their own.
	DefaultRadiusKm *float64 `json:"default_radius_km,omitempty"`

	// EmergencyOverride bypasses quiet hours. Opt-out is still honoured.
	EmergencyOverride bool `json:"emergency_override,omitempty"`

	// EscalationLevel is the minimum tier to dispatch at; the current witness count may raise it.
	EscalationLevel entity.EscalationLevel `json:"escalation_level,omitempty"`
}

// FanoutHistory sums every fanout run recorded for a sighting.
type FanoutHistory struct {
	SightingID   uuid.UUID             `json:"sighting_id"`
	TotalAlerted int                   `json:"total_alerted"`
	Delivered    int                   `json:"delivered"`
	Failed       int                   `json:"failed"`
	Pending      int                   `json:"pending"`
	Runs         []*entity.AlertFanout `json:"runs"`
}

// FanoutUsecase finds the devices near a sighting and alerts them.
type FanoutUsecase interface {
	// DispatchAlert filters nearby devices by policy and hands the survivors to the
	// background dispatcher. It returns once submission starts; per-device delivery
	// failures are recorded, never returned.
	DispatchAlert(ctx context.Context, sightingID uuid.UUID, opts DispatchOptions) (*entity.FanoutResult, error)

	// GetFanout returns the delivery summary of every run for the sighting.
	GetFanout(ctx context.Context, sightingID uuid.UUID) (*FanoutHistory, error)
}
