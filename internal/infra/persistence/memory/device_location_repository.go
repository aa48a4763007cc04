package memory

import (
	"context"
	"sort"
	"time"

	"ufobeep/internal/domain/entity"
	"ufobeep/internal/domain/repository"
)

type deviceLocationRepository struct {
	store *Store
}

// NewDeviceLocationRepository is the constructor for the in-memory device repository.
func NewDeviceLocationRepository(store *Store) repository.DeviceLocationRepository {
	return &deviceLocationRepository{store: store}
}

func (repo *deviceLocationRepository) UpsertDeviceLocation(_ context.Context, device *entity.DeviceLocation) error {
	repo.store.devicesMu.Lock()
	defer repo.store.devicesMu.Unlock()

	repo.store.devices[device.DeviceID] = &deviceRow{device: cloneDevice(device), active: true}

	return nil
}

func (repo *deviceLocationRepository) FindDeviceLocation(_ context.Context, deviceID string) (*entity.DeviceLocation, error) {
	repo.store.devicesMu.RLock()
	defer repo.store.devicesMu.RUnlock()

	row, ok := repo.store.devices[deviceID]
	if !ok || !row.active {
		return nil, repository.ErrDeviceNotFound
	}
	device := cloneDevice(&row.device)

	return &device, nil
}

func (repo *deviceLocationRepository) ListActiveDeviceLocations(_ context.Context, since time.Time) ([]*entity.DeviceLocation, error) {
	repo.store.devicesMu.RLock()
	defer repo.store.devicesMu.RUnlock()

	devices := make([]*entity.DeviceLocation, 0, len(repo.store.devices))
	for _, row := range repo.store.devices {
		if !row.active || row.device.LastUpdated.Before(since) {
			continue
		}
		device := cloneDevice(&row.device)
		devices = append(devices, &device)
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i].DeviceID < devices[j].DeviceID })

	return devices, nil
}

func (repo *deviceLocationRepository) DeactivateDevice(_ context.Context, deviceID string) error {
	repo.store.devicesMu.Lock()
	defer repo.store.devicesMu.Unlock()

	row, ok := repo.store.devices[deviceID]
	if !ok || !row.active {
		return repository.ErrDeviceNotFound
	}
	row.active = false

	return nil
}

func cloneDevice(device *entity.DeviceLocation) entity.DeviceLocation {
	clone := *device
	if device.QuietHours != nil {
		quiet := *device.QuietHours
		clone.QuietHours = &quiet
	}

	return clone
}
