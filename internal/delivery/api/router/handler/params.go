package handler

import (
	"log/slog"

	deliverycontext "ufobeep/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	paramSightingID = "sighting_id"
	paramDeviceID   = "device_id"
)

// sightingIDParam parses the sighting path param and tags the request logger with it.
func sightingIDParam(c echo.Context) (uuid.UUID, bool) {
	sightingID, err := uuid.Parse(c.Param(paramSightingID))
	if err != nil {
		return uuid.Nil, false
	}

	req := c.Request()
	c.SetRequest(req.WithContext(
		deliverycontext.WithLogAttrs(req.Context(), slog.String("sighting_id", sightingID.String())),
	))

	return sightingID, true
}

// deviceIDParam returns the device path param and tags the request logger with it.
func deviceIDParam(c echo.Context) string {
	deviceID := c.Param(paramDeviceID)

	req := c.Request()
	c.SetRequest(req.WithContext(
		deliverycontext.WithLogAttrs(req.Context(), slog.String("device_id", deviceID)),
	))

	return deviceID
}
