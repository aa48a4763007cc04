package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"ufobeep/internal/domain/service"
	"ufobeep/internal/errors"

	"github.com/google/uuid"
)

const (
	localMaxAttempts  = 3
	localRetryBackoff = 500 * time.Millisecond
)

// localHTTPPublisher posts Pub/Sub shaped push bodies straight to the fanout worker.
// Like real push delivery, 429 and 5xx answers are redelivered.
type localHTTPPublisher struct {
	endpoint     string
	httpClient   *http.Client
	retryBackoff time.Duration
	logger       *slog.Logger
}

// PubSubPushMessage mimics the body Google Pub/Sub sends to push endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates the development transport
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:     endpoint,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		retryBackoff: localRetryBackoff,
		logger:       logger,
	}
}

func (p *localHTTPPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}

	var pushMsg PubSubPushMessage
	pushMsg.Subscription = localSubscription
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.Attributes = attributes
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	backoff := p.retryBackoff
	for attempt := 1; ; attempt++ {
		status, err := p.post(ctx, body, event.RequestID)
		if err == nil && status < http.StatusMultipleChoices {
			p.logger.Info("[LocalPubSub] Event delivered",
				slog.String("event_type", event.EventType),
				slog.String("sighting_id", event.SightingID),
				slog.Int("attempt", attempt),
			)

			return nil
		}
		if err == nil {
			err = errors.Errorf("worker returned non-success status: %d", status)
			if status != http.StatusTooManyRequests && status < http.StatusInternalServerError {
				return err
			}
		}
		if attempt == localMaxAttempts {
			return errors.Wrapf(err, "push to %s failed after %d attempts", p.endpoint, attempt)
		}

		p.logger.Warn("[LocalPubSub] Redelivering event",
			slog.String("sighting_id", event.SightingID),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

func (p *localHTTPPublisher) post(ctx context.Context, body []byte, requestID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	_ = resp.Body.Close()

	return resp.StatusCode, nil
}

// Close is a no-op; the HTTP client holds no resources worth releasing.
func (p *localHTTPPublisher) Close() error {
	return nil
}
