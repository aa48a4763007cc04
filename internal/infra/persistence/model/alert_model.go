package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertFanoutModel is the GORM-specific struct for the 'alert_fanouts' table.
// One row per fanout run; delivered/failed are incremented as sends finish.
type AlertFanoutModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key"`
	SightingID            uuid.UUID `gorm:"type:uuid;not null;index:idx_fanout_sighting_level"`
	EscalationLevel       string    `gorm:"type:text;not null;default:'normal';index:idx_fanout_sighting_level"`
	RadiusKmUsed          float64   `gorm:"not null"`
	TotalCandidates       int       `gorm:"not null;default:0"`
	TotalAlerted          int       `gorm:"not null;default:0"`
	SkippedRateLimited    int       `gorm:"not null;default:0"`
	SkippedQuietHours     int       `gorm:"not null;default:0"`
	SkippedOptedOut       int       `gorm:"not null;default:0"`
	SkippedAlreadyAlerted int       `gorm:"not null;default:0"`
	Delivered             int       `gorm:"not null;default:0"`
	Failed                int       `gorm:"not null;default:0"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertFanoutModel) TableName() string {
	return "alert_fanouts"
}

// EscalationClaimModel is the GORM-specific struct for the 'escalation_claims' table.
// The composite primary key lets one confirmation claim each escalation level of a sighting.
type EscalationClaimModel struct {
	SightingID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	EscalationLevel string    `gorm:"type:text;primaryKey"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (EscalationClaimModel) TableName() string {
	return "escalation_claims"
}

// AlertDispatchRecordModel is the GORM-specific struct for the 'alert_dispatch_records' table.
// The unique (sighting_id, device_id) index is what makes a device alerted at most once per sighting.
type AlertDispatchRecordModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	FanoutID       uuid.UUID `gorm:"type:uuid;not null;index"`
	SightingID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_dispatch_sighting_device"`
	DeviceID       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_dispatch_sighting_device"`
	DispatchTime   time.Time `gorm:"not null"`
	DeliveryStatus string    `gorm:"type:text;not null;default:'pending'"`
	DistanceKm     float64   `gorm:"not null"`
	BearingDeg     float64   `gorm:"not null"`
	Attempts       int       `gorm:"not null;default:0"`
	LastError      string    `gorm:"type:text"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertDispatchRecordModel) TableName() string {
	return "alert_dispatch_records"
}
