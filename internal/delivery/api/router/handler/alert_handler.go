package handler

import (
	"log/slog"
	"net/http"

	"ufobeep/internal/delivery/api/response"
	"ufobeep/internal/domain/entity"
	"ufobeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	FanoutUC usecase.FanoutUsecase
	Logger   *slog.Logger
}

// AlertHandler serves the internal fanout routes
type AlertHandler struct {
	fanoutUC usecase.FanoutUsecase
	logger   *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		fanoutUC: params.FanoutUC,
		logger:   params.Logger,
	}
}

// DispatchAlertRequest is the optional body of a dispatch call
type DispatchAlertRequest struct {
	DefaultRadiusKm   *float64 `json:"default_radius_km,omitempty" validate:"omitempty,gt=0"`
	EmergencyOverride bool     `json:"emergency_override,omitempty"`
	EscalationLevel   string   `json:"escalation_level,omitempty" validate:"omitempty,oneof=normal urgent emergency"`
}

// DispatchAlert runs a fanout for the sighting. Deliveries continue after the response.
func (h *AlertHandler) DispatchAlert(c echo.Context) error {
	sightingID, ok := sightingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid sighting ID")
	}

	var req DispatchAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid dispatch input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.fanoutUC.DispatchAlert(c.Request().Context(), sightingID, usecase.DispatchOptions{
		DefaultRadiusKm:   req.DefaultRadiusKm,
		EmergencyOverride: req.EmergencyOverride,
		EscalationLevel:   entity.EscalationLevel(req.EscalationLevel),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, result)
}

// GetFanout returns the delivery summary for the sighting
func (h *AlertHandler) GetFanout(c echo.Context) error {
	sightingID, ok := sightingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid sighting ID")
	}

	history, err := h.fanoutUC.GetFanout(c.Request().Context(), sightingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}
