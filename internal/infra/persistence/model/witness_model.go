package model

import (
	"time"

	"github.com/google/uuid"
)

// WitnessConfirmationModel is the GORM-specific struct for the 'witness_confirmations' table.
// The composite primary key enforces one row per (sighting, device).
type WitnessConfirmationModel struct {
	SightingID   uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_witness_sighting_confirmed,priority:1"`
	DeviceID     string    `gorm:"type:varchar(255);primaryKey"`
	Latitude     float64   `gorm:"type:decimal(10,8);not null"`
	Longitude    float64   `gorm:"type:decimal(11,8);not null"`
	AltitudeM    *float64
	BearingDeg   *float64
	DistanceKm   *float64
	AccuracyM    *float64
	StillVisible bool      `gorm:"not null;default:true"`
	ConfirmedAt  time.Time `gorm:"not null;index:idx_witness_sighting_confirmed,priority:2,sort:desc"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (WitnessConfirmationModel) TableName() string {
	return "witness_confirmations"
}
