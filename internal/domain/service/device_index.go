package service

import (
	"time"

	"ufobeep/internal/domain/entity"
)

// DeviceIndex is the in-memory spatial projection of registered devices.
type DeviceIndex interface {
	Upsert(device entity.DeviceLocation)
	Remove(deviceID string)
	QueryRadius(lat, lon, radiusKm float64) []entity.NearbyDevice
	Rebuild(devices []entity.DeviceLocation)
	// RemoveStale drops devices last updated before cutoff and returns their ids.
	RemoveStale(cutoff time.Time) []string
	MaxAlertRadiusKm() float64
	Len() int
}
