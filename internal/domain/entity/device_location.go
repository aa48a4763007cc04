// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"
)

// QuietHours is a daily window in the device's local time during which
// non-emergency alerts are suppressed. A window whose End is before its Start
// wraps past midnight.
type QuietHours struct {
	Start    string `json:"start"`    // Local start time, "HH:MM".
	End      string `json:"end"`      // Local end time, "HH:MM".
	Timezone string `json:"timezone"` // IANA zone name; empty means UTC.
}

// Active reports whether the window covers the given instant.
func (q *QuietHours) Active(now time.Time) (bool, error) {
	if q == nil {
		return false, nil
	}

	loc := time.UTC
	if q.Timezone != "" {
		var err error
		if loc, err = time.LoadLocation(q.Timezone); err != nil {
			return false, fmt.Errorf("quiet hours timezone %q: %w", q.Timezone, err)
		}
	}

	start, err := parseClock(q.Start)
	if err != nil {
		return false, err
	}
	end, err := parseClock(q.End)
	if err != nil {
		return false, err
	}
	if start == end {
		return false, nil
	}

	local := now.In(loc)
	minute := local.Hour()*60 + local.Minute()
	if start < end {
		return minute >= start && minute < end, nil
	}

	return minute >= start || minute < end, nil
}

// Validate checks the clock strings and timezone without evaluating the window.
func (q *QuietHours) Validate() error {
	if q == nil {
		return nil
	}
	if _, err := q.Active(time.Time{}); err != nil {
		return err
	}

	return nil
}

func parseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", value, err)
	}

	return t.Hour()*60 + t.Minute(), nil
}

// DeviceLocation is the alert-relevant projection of a registered device.
type DeviceLocation struct {
	DeviceID      string      `json:"device_id"`       // Client supplied unique identifier.
	Latitude      float64     `json:"latitude"`        // Last reported latitude.
	Longitude     float64     `json:"longitude"`       // Last reported longitude.
	PushToken     string      `json:"-"`               // Push gateway token, never echoed to clients.
	QuietHours    *QuietHours `json:"quiet_hours"`     // Optional daily suppression window.
	AlertRadiusKm float64     `json:"alert_radius_km"` // Preferred alert radius; 0 means the system default.
	AlertsEnabled bool        `json:"alerts_enabled"`  // False when the user explicitly opted out.
	LastUpdated   time.Time   `json:"last_updated"`    // Time of the last location report.
}

// EffectiveRadiusKm returns the device's own radius, or the default when unset.
func (d *DeviceLocation) EffectiveRadiusKm(defaultKm float64) float64 {
	if d.AlertRadiusKm > 0 {
		return d.AlertRadiusKm
	}

	return defaultKm
}

// NearbyDevice is a GeoIndex hit. BearingDeg is measured from the query point
// (the sighting) toward the device.
type NearbyDevice struct {
	Device     DeviceLocation `json:"device"`
	DistanceKm float64        `json:"distance_km"`
	BearingDeg float64        `json:"bearing_deg"`
}
