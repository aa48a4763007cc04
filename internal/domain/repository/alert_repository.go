package repository

import (
	"context"
	"errors"

	"ufobeep/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrFanoutNotFound is returned when a fanout run id is unknown.
	ErrFanoutNotFound = errors.New("alert fanout not found")
	// ErrDispatchRecordNotFound is returned when a status update targets an unknown record.
	ErrDispatchRecordNotFound = errors.New("alert dispatch record not found")
)

// AlertRepository persists fanout summaries and per-device dispatch records.
type AlertRepository interface {
	// CreateFanout persists a fanout summary.
	CreateFanout(ctx context.Context, fanout *entity.AlertFanout) error

	// ListFanouts returns all fanout runs for a sighting, oldest first.
	ListFanouts(ctx context.Context, sightingID uuid.UUID) ([]*entity.AlertFanout, error)

	// HasFanoutAtLevel reports whether a run with the given escalation level exists.
	HasFanoutAtLevel(ctx context.Context, sightingID uuid.UUID, level entity.EscalationLevel) (bool, error)

	// ClaimEscalation atomically marks the sighting as escalated to level. It returns
	// false when the level was already claimed.
	ClaimEscalation(ctx context.Context, sightingID uuid.UUID, level entity.EscalationLevel) (bool, error)

	// ReleaseEscalation drops a claim so the level can be claimed again.
	ReleaseEscalation(ctx context.Context, sightingID uuid.UUID, level entity.EscalationLevel) error

	// IncrementFanoutOutcome atomically adds delivered/failed counts to a run.
	IncrementFanoutOutcome(ctx context.Context, fanoutID uuid.UUID, delivered, failed int) error

	// CreateDispatchRecords inserts pending records, skipping (sighting, device) pairs
	// that already exist, and returns only the records this call stored.
	CreateDispatchRecords(ctx context.Context, records []*entity.AlertDispatchRecord) ([]*entity.AlertDispatchRecord, error)

	// FindAlertedDeviceIDs returns the devices that already have a record for the sighting.
	FindAlertedDeviceIDs(ctx context.Context, sightingID uuid.UUID) (map[string]struct{}, error)

	// UpdateDispatchStatus records the outcome of the latest attempt.
	UpdateDispatchStatus(ctx context.Context, recordID uuid.UUID, status entity.DeliveryStatus, attempts int, lastError string) error
}
