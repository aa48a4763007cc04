// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ufobeep/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSightingNotFound is returned when a sighting id is unknown.
var ErrSightingNotFound = errors.New("sighting not found")

// SightingRepository is the read side of sighting CRUD that the alert core depends on.
type SightingRepository interface {
	// GetSightingLocation returns the sighting's origin and flags, or ErrSightingNotFound.
	GetSightingLocation(ctx context.Context, id uuid.UUID) (*entity.Sighting, error)
}
