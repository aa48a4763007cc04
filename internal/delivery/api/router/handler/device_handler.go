package handler

import (
	"log/slog"
	"net/http"

	"ufobeep/internal/delivery/api/response"
	"ufobeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceLocationUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceLocationUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// UpdateLocation registers the device or refreshes its location and alert preferences
func (h *DeviceHandler) UpdateLocation(c echo.Context) error {
	var req usecase.UpdateDeviceLocationInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid device location input")
	}
	req.DeviceID = deviceIDParam(c)

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.UpdateLocation(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// Deregister deactivates the device and stops its alerts
func (h *DeviceHandler) Deregister(c echo.Context) error {
	if err := h.deviceUC.Deregister(c.Request().Context(), deviceIDParam(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device deregistered successfully"})
}
