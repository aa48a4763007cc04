package model

import (
	"time"
)

// DeviceLocationModel is the GORM-specific struct for the 'device_locations' table.
// A trigger on this table emits NOTIFY device_location_changed with the device id.
type DeviceLocationModel struct {
	DeviceID      string    `gorm:"type:varchar(255);primaryKey"`
	Latitude      float64   `gorm:"type:decimal(10,8);not null"`
	Longitude     float64   `gorm:"type:decimal(11,8);not null"`
	PushToken     string    `gorm:"type:text;not null"`
	QuietStart    *string   `gorm:"type:varchar(5)"`
	QuietEnd      *string   `gorm:"type:varchar(5)"`
	QuietTimezone *string   `gorm:"type:varchar(64)"`
	AlertRadiusKm float64   `gorm:"not null;default:0"`
	AlertsEnabled bool      `gorm:"not null;default:true"`
	IsActive      bool      `gorm:"not null;default:true;index"`
	LastUpdated   time.Time `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceLocationModel) TableName() string {
	return "device_locations"
}
