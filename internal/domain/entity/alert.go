package entity

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus tracks a single push attempt chain.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

// IsTerminal reports whether no further transitions are allowed.
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryStatusDelivered || s == DeliveryStatusFailed
}

// AlertDispatchRecord is the delivery bookkeeping for one (sighting, device) pair.
type AlertDispatchRecord struct {
	ID             uuid.UUID      `json:"id"`
	FanoutID       uuid.UUID      `json:"fanout_id"`       // The fanout run that created this record.
	SightingID     uuid.UUID      `json:"sighting_id"`     // The sighting that triggered the alert.
	DeviceID       string         `json:"device_id"`       // The alerted device.
	DispatchTime   time.Time      `json:"dispatch_time"`   // When the record was created.
	DeliveryStatus DeliveryStatus `json:"delivery_status"` // pending, delivered or failed.
	DistanceKm     float64        `json:"distance_km"`     // Sighting to device distance.
	BearingDeg     float64        `json:"bearing_deg"`     // Bearing from the sighting toward the device.
	Attempts       int            `json:"attempts"`        // Number of gateway calls made so far.
	LastError      string         `json:"last_error,omitempty"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// AlertFanout is the persisted summary of one fanout run.
type AlertFanout struct {
	ID                    uuid.UUID       `json:"id"`
	SightingID            uuid.UUID       `json:"sighting_id"`
	RadiusKmUsed          float64         `json:"radius_km_used"`
	TotalCandidates       int             `json:"total_candidates"`
	TotalAlerted          int             `json:"total_alerted"`
	SkippedRateLimited    int             `json:"skipped_rate_limited"`
	SkippedQuietHours     int             `json:"skipped_quiet_hours"`
	SkippedOptedOut       int             `json:"skipped_opted_out"`
	SkippedAlreadyAlerted int             `json:"skipped_already_alerted"`
	Delivered             int             `json:"delivered"`
	Failed                int             `json:"failed"`
	EscalationLevel       EscalationLevel `json:"escalation_level"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// FanoutResult is returned to the caller of a dispatch.
// TotalAlerted counts devices handed to the gateway, not confirmed deliveries.
type FanoutResult struct {
	FanoutID              uuid.UUID       `json:"fanout_id"`
	SightingID            uuid.UUID       `json:"sighting_id"`
	TotalAlerted          int             `json:"total_alerted"`
	RadiusKmUsed          float64         `json:"radius_km_used"`
	TotalCandidates       int             `json:"total_candidates"`
	SkippedRateLimited    int             `json:"skipped_rate_limited"`
	SkippedQuietHours     int             `json:"skipped_quiet_hours"`
	SkippedOptedOut       int             `json:"skipped_opted_out"`
	SkippedAlreadyAlerted int             `json:"skipped_already_alerted"`
	EscalationLevel       EscalationLevel `json:"escalation_level"`
}

// AlertPayload is the transport-neutral content of one push.
type AlertPayload struct {
	SightingID      uuid.UUID
	Title           string
	Body            string
	DistanceKm      float64
	BearingDeg      float64
	EscalationLevel EscalationLevel
}

// Data flattens the payload into the string map push transports expect.
func (p AlertPayload) Data() map[string]string {
	return map[string]string{
		"type":             "sighting_alert",
		"sighting_id":      p.SightingID.String(),
		"distance_km":      strconv.FormatFloat(p.DistanceKm, 'f', 2, 64),
		"bearing_deg":      strconv.FormatFloat(p.BearingDeg, 'f', 1, 64),
		"escalation_level": string(p.EscalationLevel),
	}
}

// NewAlertPayload builds the user-facing text for a nearby sighting.
func NewAlertPayload(sightingID uuid.UUID, distanceKm, bearingDeg float64, level EscalationLevel) AlertPayload {
	title := "UFO sighting nearby"
	switch level {
	case EscalationEmergency:
		title = "Mass UFO sighting nearby"
	case EscalationUrgent:
		title = "Multiple witnesses report a UFO nearby"
	}

	return AlertPayload{
		SightingID:      sightingID,
		Title:           title,
		Body:            fmt.Sprintf("Reported %.1f km away. Look %s.", distanceKm, compassPoint(bearingDeg+180)),
		DistanceKm:      distanceKm,
		BearingDeg:      bearingDeg,
		EscalationLevel: level,
	}
}

// compassPoint names the 8-wind direction for a bearing.
func compassPoint(bearing float64) string {
	points := [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	idx := int((normalizeDegrees(bearing)+22.5)/45.0) % len(points)

	return points[idx]
}

func normalizeDegrees(deg float64) float64 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}

	return deg
}
