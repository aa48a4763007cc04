package postgres

import (
	"context"

	"ufobeep/internal/domain/entity"
	"ufobeep/internal/domain/repository"
	"ufobeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sightingRepository implements the repository.SightingRepository interface.
type sightingRepository struct {
	db *gorm.DB
}

// NewSightingRepository is the constructor for sightingRepository.
func NewSightingRepository(db *gorm.DB) repository.SightingRepository {
	return &sightingRepository{
		db: db,
	}
}

// GetSightingLocation retrieves the origin of a sighting.
func (repo *sightingRepository) GetSightingLocation(ctx context.Context, id uuid.UUID) (*entity.Sighting, error) {
	var sightingM model.SightingModel

	if err := repo.db.WithContext(ctx).
		Select("id", "latitude", "longitude", "emergency_override", "created_at").
		Where("id = ?", id).
		First(&sightingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSightingNotFound
		}

		return nil, errors.Wrap(err, "failed to find sighting by ID")
	}

	return &entity.Sighting{
		ID:                sightingM.ID,
		Latitude:          sightingM.Latitude,
		Longitude:         sightingM.Longitude,
		EmergencyOverride: sightingM.EmergencyOverride,
		CreatedAt:         sightingM.CreatedAt,
	}, nil
}
