package memory

import (
	"context"
	"sort"
	"time"

	"ufobeep/internal/domain/entity"
	"ufobeep/internal/domain/repository"

	"github.com/google/uuid"
)

type alertRepository struct {
	store *Store
}

// NewAlertRepository is the constructor for the in-memory alert repository.
func NewAlertRepository(store *Store) repository.AlertRepository {
	return &alertRepository{store: store}
}

func (repo *alertRepository) CreateFanout(_ context.Context, fanout *entity.AlertFanout) error {
	repo.store.alertsMu.Lock()
	defer repo.store.alertsMu.Unlock()

	now := time.Now()
	if fanout.CreatedAt.IsZero() {
		fanout.CreatedAt = now
	}
	fanout.UpdatedAt = now

	clone := *fanout
	repo.store.fanouts[fanout.ID] = &clone

	return nil
}

func (repo *alertRepository) ListFanouts(_ context.Context, sightingID uuid.UUID) ([]*entity.AlertFanout, error) {
	repo.store.alertsMu.Lock()
	defer repo.store.alertsMu.Unlock()

	fanouts := make([]*entity.AlertFanout, 0)
	for _, fanout := range repo.store.fanouts {
		if fanout.SightingID == sightingID {
			clone := *fanout
			fanouts = append(fanouts, &clone)
		}
	}
	sort.Slice(fanouts, func(i, j int) bool {
		if !fanouts[i].CreatedAt.Equal(fanouts[j].CreatedAt) {
			return fanouts[i].CreatedAt.Before(fanouts[j].CreatedAt)
		}

		return fanouts[i].ID.String() < fanouts[j].ID.String()
	})

	return fanouts, nil
}

func (repo *alertRepository) HasFanoutAtLevel(_ context.Context, sightingID uuid.UUID, level entity.EscalationLevel) (bool, error) {
	repo.store.alertsMu.Lock()
	defer repo.store.alertsMu.Unlock()

	for _, fanout := range repo.store.fanouts {
		if fanout.SightingID == sightingID && fanout.EscalationLevel == level {
			return true, nil
		}
	}

	return false, nil
}

func (repo *alertRepository) ClaimEscalation(_ context.Context, sightingID uuid.UUID, level entity.EscalationLevel) (bool, error) {
	repo.store.alertsMu.Lock()
	defer repo.store.alertsMu.Unlock()

	key := escalationKey{sightingID: sightingID, level: level}
	if _, ok := repo.store.escalations[key]; ok {
		return false, nil
	}
	repo.store.escalations[key] = struct{}{}

	return true, nil
}

func (repo *alertRepository) ReleaseEscalation(_ context.Context, sightingID uuid.UUID, level entity.EscalationLevel) error {
	repo.store.alertsMu.Lock()
	defer repo.store.alertsMu.Unlock()

	delete(repo.store.escalations, escalationKey{sightingID: sightingID, level: level})

	return nil
}

func (repo *alertRepository) IncrementFanoutOutcome(_ context.Context, fanoutID uuid.UUID, delivered, failed int) error {
	repo.store.alertsMu.Lock()
	defer repo.store.alertsMu.Unlock()

	fanout, ok := repo.store.fanouts[fanoutID]
	if !ok {
		return repository.ErrFanoutNotFound
	}
	fanout.Delivered += delivered
	fanout.Failed += failed
	fanout.UpdatedAt = time.Now()

	return nil
}

func (repo *alertRepository) CreateDispatchRecords(_ context.Context, records []*entity.AlertDispatchRecord) ([]*entity.AlertDispatchRecord, error) {
	repo.store.alertsMu.Lock()
	defer repo.store.alertsMu.Unlock()

	stored := make([]*entity.AlertDispatchRecord, 0, len(records))
	for _, record := range records {
		devices, ok := repo.store.alerted[record.SightingID]
		if !ok {
			devices = make(map[string]uuid.UUID)
			repo.store.alerted[record.SightingID] = devices
		}
		if _, exists := devices[record.DeviceID]; exists {
			continue
		}

		clone := *record
		devices[record.DeviceID] = clone.ID
		repo.store.records[clone.ID] = &clone

		out := clone
		stored = append(stored, &out)
	}

	return stored, nil
}

func (repo *alertRepository) FindAlertedDeviceIDs(_ context.Context, sightingID uuid.UUID) (map[string]struct{}, error) {
	repo.store.alertsMu.Lock()
	defer repo.store.alertsMu.Unlock()

	alerted := make(map[string]struct{}, len(repo.store.alerted[sightingID]))
	for deviceID := range repo.store.alerted[sightingID] {
		alerted[deviceID] = struct{}{}
	}

	return alerted, nil
}

func (repo *alertRepository) UpdateDispatchStatus(_ context.Context, recordID uuid.UUID, status entity.DeliveryStatus, attempts int, lastError string) error {
	repo.store.alertsMu.Lock()
	defer repo.store.alertsMu.Unlock()

	record, ok := repo.store.records[recordID]
	if !ok {
		return repository.ErrDispatchRecordNotFound
	}
	record.DeliveryStatus = status
	record.Attempts = attempts
	record.LastError = lastError
	record.UpdatedAt = time.Now()

	return nil
}

// DispatchRecords returns a copy of every record for a sighting, for inspection in tests.
func (s *Store) DispatchRecords(sightingID uuid.UUID) []entity.AlertDispatchRecord {
	s.alertsMu.Lock()
	defer s.alertsMu.Unlock()

	out := make([]entity.AlertDispatchRecord, 0, len(s.alerted[sightingID]))
	for _, recordID := range s.alerted[sightingID] {
		out = append(out, *s.records[recordID])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeviceID < out[j].DeviceID })

	return out
}
