package memory

import (
	"context"
	"sort"
	"sync"

	"ufobeep/internal/domain/entity"
	"ufobeep/internal/domain/repository"

	"github.com/google/uuid"
)

type witnessRepository struct {
	store *Store
}

// NewWitnessRepository is the constructor for the in-memory witness repository.
// Writes for the same (sighting, device) serialize on that key's slot only.
func NewWitnessRepository(store *Store) repository.WitnessRepository {
	return &witnessRepository{store: store}
}

func (repo *witnessRepository) UpsertWitness(_ context.Context, witness *entity.WitnessConfirmation) (bool, error) {
	if !repo.store.hasSighting(witness.SightingID) {
		return false, repository.ErrSightingNotFound
	}

	value, _ := repo.store.witnesses.LoadOrStore(witness.SightingID, &sync.Map{})
	slotValue, _ := value.(*sync.Map).LoadOrStore(witness.DeviceID, &witnessSlot{})
	slot := slotValue.(*witnessSlot)

	slot.mu.Lock()
	defer slot.mu.Unlock()

	created := slot.witness == nil
	clone := cloneWitness(witness)
	slot.witness = &clone

	return created, nil
}

func (repo *witnessRepository) FindWitness(_ context.Context, sightingID uuid.UUID, deviceID string) (*entity.WitnessConfirmation, error) {
	value, ok := repo.store.witnesses.Load(sightingID)
	if !ok {
		return nil, repository.ErrWitnessNotFound
	}
	slotValue, ok := value.(*sync.Map).Load(deviceID)
	if !ok {
		return nil, repository.ErrWitnessNotFound
	}

	witness, ok := slotValue.(*witnessSlot).snapshot()
	if !ok {
		return nil, repository.ErrWitnessNotFound
	}

	return &witness, nil
}

func (repo *witnessRepository) ListWitnesses(_ context.Context, sightingID uuid.UUID, limit int) ([]*entity.WitnessConfirmation, error) {
	witnesses := repo.snapshot(sightingID)

	sort.Slice(witnesses, func(i, j int) bool {
		a, b := witnesses[i], witnesses[j]
		if !a.ConfirmedAt.Equal(b.ConfirmedAt) {
			return a.ConfirmedAt.After(b.ConfirmedAt)
		}

		return a.DeviceID < b.DeviceID
	})

	if limit > 0 && len(witnesses) > limit {
		witnesses = witnesses[:limit]
	}

	return witnesses, nil
}

func (repo *witnessRepository) CountWitnesses(_ context.Context, sightingID uuid.UUID) (int, error) {
	return len(repo.snapshot(sightingID)), nil
}

func (repo *witnessRepository) snapshot(sightingID uuid.UUID) []*entity.WitnessConfirmation {
	witnesses := make([]*entity.WitnessConfirmation, 0)

	value, ok := repo.store.witnesses.Load(sightingID)
	if !ok {
		return witnesses
	}

	value.(*sync.Map).Range(func(_, slotValue any) bool {
		if witness, ok := slotValue.(*witnessSlot).snapshot(); ok {
			witnesses = append(witnesses, &witness)
		}

		return true
	})

	return witnesses
}

func (s *witnessSlot) snapshot() (entity.WitnessConfirmation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.witness == nil {
		return entity.WitnessConfirmation{}, false
	}

	return cloneWitness(s.witness), true
}

func cloneWitness(w *entity.WitnessConfirmation) entity.WitnessConfirmation {
	clone := *w
	clone.Location.AltitudeM = clonePtr(w.Location.AltitudeM)
	clone.BearingDeg = clonePtr(w.BearingDeg)
	clone.DistanceKm = clonePtr(w.DistanceKm)
	clone.AccuracyM = clonePtr(w.AccuracyM)

	return clone
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
