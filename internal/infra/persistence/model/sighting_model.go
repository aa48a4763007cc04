package model

import (
	"time"

	"github.com/google/uuid"
)

// SightingModel maps the columns of the 'sightings' table the alert core reads.
// The table itself is owned by sighting CRUD.
type SightingModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	Latitude          float64   `gorm:"type:decimal(10,8);not null"`
	Longitude         float64   `gorm:"type:decimal(11,8);not null"`
	EmergencyOverride bool      `gorm:"not null;default:false"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (SightingModel) TableName() string {
	return "sightings"
}
