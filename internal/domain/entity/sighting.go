package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sighting is the read-only view of a beep needed by the alert core.
type Sighting struct {
	ID                uuid.UUID `json:"sighting_id"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	EmergencyOverride bool      `json:"emergency_override"`
	CreatedAt         time.Time `json:"created_at"`
}
