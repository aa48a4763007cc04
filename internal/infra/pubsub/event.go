package pubsub

import (
	"encoding/json"

	"ufobeep/internal/domain/service"
	"ufobeep/internal/errors"
)

// localSubscription names the push subscription the local transport impersonates
const localSubscription = "projects/local/subscriptions/alert-fanout-sub"

// encodeEvent returns the message body and the attributes subscription filters select on.
func encodeEvent(event *service.AlertEvent) ([]byte, map[string]string, error) {
	if event == nil || event.SightingID == "" {
		return nil, nil, errors.New("alert event without sighting id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode alert event")
	}

	attributes := map[string]string{
		"event_type":  event.EventType,
		"sighting_id": event.SightingID,
	}
	if event.EscalationLevel != "" {
		attributes["escalation_level"] = event.EscalationLevel
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}
