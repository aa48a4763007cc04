package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"ufobeep/internal/domain/constants"
	"ufobeep/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalPublisher(endpoint string) *localHTTPPublisher {
	p := NewLocalHTTPPublisher(endpoint, slog.New(slog.NewTextHandler(io.Discard, nil))).(*localHTTPPublisher)
	p.retryBackoff = time.Millisecond

	return p
}

func TestLocalHTTPPublisher_PublishAlertEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := newTestLocalPublisher(server.URL)
	event := &service.AlertEvent{
		RequestID:       "req-1",
		EventType:       constants.EventTypeEscalation,
		SightingID:      "9b1c9f3e-5a43-4a53-9f0b-0f3f6c1d2e11",
		EscalationLevel: "urgent",
		WitnessCount:    3,
	}

	require.NoError(t, publisher.PublishAlertEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, constants.EventTypeEscalation, received.Message.Attributes["event_type"])
	assert.Equal(t, "urgent", received.Message.Attributes["escalation_level"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.AlertEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_RedeliversUnavailable(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestLocalPublisher(server.URL).PublishAlertEvent(context.Background(),
		&service.AlertEvent{EventType: constants.EventTypeSightingCreated, SightingID: "s1"})

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLocalHTTPPublisher_GivesUp(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int32
	}{
		{name: "server errors exhaust attempts", status: http.StatusServiceUnavailable, wantCalls: localMaxAttempts},
		{name: "client errors are final", status: http.StatusBadRequest, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			err := newTestLocalPublisher(server.URL).PublishAlertEvent(context.Background(),
				&service.AlertEvent{EventType: constants.EventTypeSightingCreated, SightingID: "s1"})

			assert.Error(t, err)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestEncodeEvent_RequiresSighting(t *testing.T) {
	_, _, err := encodeEvent(&service.AlertEvent{EventType: constants.EventTypeSightingCreated})

	assert.ErrorContains(t, err, "sighting id")
}
