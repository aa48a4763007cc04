package service

import (
	"context"
)

// AlertEvent asks the fanout worker to run a dispatch for a sighting.
type AlertEvent struct {
	RequestID         string  `json:"request_id,omitempty"` // For distributed tracing
	EventType         string  `json:"event_type"`
	SightingID        string  `json:"sighting_id"`
	EscalationLevel   string  `json:"escalation_level,omitempty"`
	WitnessCount      int     `json:"witness_count,omitempty"`
	EmergencyOverride bool    `json:"emergency_override,omitempty"`
	RadiusKm          float64 `json:"radius_km,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert event for async processing
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
