package usecase

import (
	"context"

	"ufobeep/internal/domain/entity"
)

// UpdateDeviceLocationInput is a device registration or location report.
type UpdateDeviceLocationInput struct {
	DeviceID      string             `json:"-" validate:"required,max=255"`
	Latitude      float64            `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64            `json:"longitude" validate:"gte=-180,lte=180"`
	PushToken     string             `json:"push_token" validate:"required"`
	QuietHours    *entity.QuietHours `json:"quiet_hours,omitempty"`
	AlertRadiusKm float64            `json:"alert_radius_km" validate:"gte=0"`
	AlertsEnabled *bool              `json:"alerts_enabled,omitempty"`
}

// DeviceLocationUsecase keeps the device table and the geo index in step.
type DeviceLocationUsecase interface {
	// UpdateLocation persists the device and refreshes its index entry.
	UpdateLocation(ctx context.Context, input UpdateDeviceLocationInput) (*entity.DeviceLocation, error)

	// Deregister deactivates the device and drops it from the index.
	Deregister(ctx context.Context, deviceID string) error

	// SyncDevice reloads one device from storage into the index, removing it when it is gone.
	SyncDevice(ctx context.Context, deviceID string) error

	// RebuildIndex repopulates the index from every active, non-stale device.
	RebuildIndex(ctx context.Context) (int, error)

	// SweepStale drops devices that have not reported within the stale window.
	SweepStale(ctx context.Context) int
}
