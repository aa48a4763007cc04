package repository

import (
	"context"
	"errors"
	"time"

	"ufobeep/internal/domain/entity"
)

// ErrDeviceNotFound is returned when a device id is unknown or deactivated.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceLocationRepository is the source of truth the GeoIndex is rebuilt from.
type DeviceLocationRepository interface {
	// UpsertDeviceLocation inserts or replaces the device row and marks it active.
	UpsertDeviceLocation(ctx context.Context, device *entity.DeviceLocation) error

	// FindDeviceLocation returns an active device or ErrDeviceNotFound.
	FindDeviceLocation(ctx context.Context, deviceID string) (*entity.DeviceLocation, error)

	// ListActiveDeviceLocations returns active devices updated at or after since.
	ListActiveDeviceLocations(ctx context.Context, since time.Time) ([]*entity.DeviceLocation, error)

	// DeactivateDevice soft-deletes a device. Returns ErrDeviceNotFound when absent.
	DeactivateDevice(ctx context.Context, deviceID string) error
}
