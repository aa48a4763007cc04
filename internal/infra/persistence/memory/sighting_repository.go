package memory

import (
	"context"

	"ufobeep/internal/domain/entity"
	"ufobeep/internal/domain/repository"

	"github.com/google/uuid"
)

type sightingRepository struct {
	store *Store
}

// NewSightingRepository is the constructor for the in-memory sighting repository.
func NewSightingRepository(store *Store) repository.SightingRepository {
	return &sightingRepository{store: store}
}

func (repo *sightingRepository) GetSightingLocation(_ context.Context, id uuid.UUID) (*entity.Sighting, error) {
	value, ok := repo.store.sightings.Load(id)
	if !ok {
		return nil, repository.ErrSightingNotFound
	}
	sighting := value.(entity.Sighting)

	return &sighting, nil
}
