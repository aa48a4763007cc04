package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ufobeep/config"
	deliverycontext "ufobeep/internal/delivery/context"
	"ufobeep/internal/domain/constants"
	"ufobeep/internal/domain/entity"
	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/domain/service"
	"ufobeep/internal/errors"
	"ufobeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns alert events into fanout runs
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  tokenValidator
	logger         *slog.Logger
	fanoutUC       usecase.FanoutUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	FanoutUC usecase.FanoutUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	pubsubCfg := params.Config.PubSub

	// Verify push auth for Google deliveries outside develop, or whenever an audience is pinned
	verifyPushAuth := pubsubCfg != nil &&
		(pubsubCfg.PushAudience != "" ||
			(pubsubCfg.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop))

	audience := ""
	if pubsubCfg != nil {
		audience = pubsubCfg.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		fanoutUC:       params.FanoutUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.AlertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse alert event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing alert event",
		slog.String("event_type", event.EventType),
		slog.String("sighting_id", event.SightingID),
		slog.String("escalation_level", event.EscalationLevel),
		slog.Int("witness_count", event.WitnessCount),
	)

	result, err := h.processEvent(ctx, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process alert event",
			slog.String("sighting_id", event.SightingID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Alert event processed",
		slog.String("sighting_id", event.SightingID),
		slog.String("fanout_id", result.FanoutID.String()),
		slog.Int("total_alerted", result.TotalAlerted),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.AlertEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent runs the fanout. Client-side failures are final; anything else is retried.
func (h *PushHandler) processEvent(ctx context.Context, event *service.AlertEvent) (*entity.FanoutResult, error) {
	switch event.EventType {
	case constants.EventTypeSightingCreated, constants.EventTypeEscalation:
	default:
		return nil, errors.Errorf("unsupported event type %q", event.EventType)
	}

	sightingID, err := uuid.Parse(event.SightingID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid sighting id")
	}

	opts := usecase.DispatchOptions{
		EmergencyOverride: event.EmergencyOverride,
		EscalationLevel:   entity.EscalationLevel(event.EscalationLevel),
	}
	if event.RadiusKm > 0 {
		radius := event.RadiusKm
		opts.DefaultRadiusKm = &radius
	}

	result, err := h.fanoutUC.DispatchAlert(ctx, sightingID, opts)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			return nil, err
		}

		return nil, newRetryableError(err)
	}

	return result, nil
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// Without a pinned audience, the push endpoint URL is the audience
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
