// Package memory is a process-local implementation of the repositories for
// local development and tests. Data is lost on restart.
package memory

import (
	"sync"

	"ufobeep/internal/domain/entity"

	"github.com/google/uuid"
)

// Store holds every table of the in-memory driver.
type Store struct {
	sightings sync.Map // uuid.UUID -> entity.Sighting
	witnesses sync.Map // uuid.UUID -> *sync.Map (device id -> *witnessSlot)

	devicesMu sync.RWMutex
	devices   map[string]*deviceRow

	alertsMu    sync.Mutex
	fanouts     map[uuid.UUID]*entity.AlertFanout
	records     map[uuid.UUID]*entity.AlertDispatchRecord
	alerted     map[uuid.UUID]map[string]uuid.UUID // sighting -> device -> record
	escalations map[escalationKey]struct{}
}

type escalationKey struct {
	sightingID uuid.UUID
	level      entity.EscalationLevel
}

type deviceRow struct {
	device entity.DeviceLocation
	active bool
}

type witnessSlot struct {
	mu      sync.Mutex
	witness *entity.WitnessConfirmation
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		devices: make(map[string]*deviceRow),
		fanouts: make(map[uuid.UUID]*entity.AlertFanout),
		records: make(map[uuid.UUID]*entity.AlertDispatchRecord),
		alerted: make(map[uuid.UUID]map[string]uuid.UUID),

		escalations: make(map[escalationKey]struct{}),
	}
}

// SaveSighting registers a sighting so alerts and witnesses can reference it.
func (s *Store) SaveSighting(sighting entity.Sighting) {
	s.sightings.Store(sighting.ID, sighting)
}

func (s *Store) hasSighting(id uuid.UUID) bool {
	_, ok := s.sightings.Load(id)

	return ok
}
