package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeoLocation is a WGS84 position with an optional altitude.
type GeoLocation struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	AltitudeM *float64 `json:"altitude_m,omitempty"`
}

// WitnessConfirmation is the latest "I see it too" state of one device for one sighting.
type WitnessConfirmation struct {
	SightingID   uuid.UUID   `json:"sighting_id"`
	DeviceID     string      `json:"device_id"`
	Location     GeoLocation `json:"location"`
	BearingDeg   *float64    `json:"bearing_deg,omitempty"` // Compass bearing from the witness toward the object.
	DistanceKm   *float64    `json:"distance_km,omitempty"` // Witness to sighting origin, computed on write.
	AccuracyM    *float64    `json:"accuracy_m,omitempty"`  // Reported GPS accuracy.
	StillVisible bool        `json:"still_visible"`
	ConfirmedAt  time.Time   `json:"confirmed_at"`
}

// HasBearing reports whether the confirmation can contribute to triangulation.
func (w *WitnessConfirmation) HasBearing() bool {
	return w.BearingDeg != nil
}
