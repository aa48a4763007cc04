package handler

import (
	"log/slog"
	"net/http"

	"ufobeep/internal/delivery/api/response"
	"ufobeep/internal/errors"
	"ufobeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const mimeGeoJSON = "application/geo+json"

// WitnessHandlerParams holds dependencies for WitnessHandler, injected by Fx.
type WitnessHandlerParams struct {
	fx.In

	WitnessUC     usecase.WitnessUsecase
	AggregationUC usecase.AggregationUsecase
	Logger        *slog.Logger
}

// WitnessHandler serves witness confirmations and their aggregation
type WitnessHandler struct {
	witnessUC     usecase.WitnessUsecase
	aggregationUC usecase.AggregationUsecase
	logger        *slog.Logger
}

// NewWitnessHandler is the constructor for WitnessHandler
func NewWitnessHandler(params WitnessHandlerParams) *WitnessHandler {
	return &WitnessHandler{
		witnessUC:     params.WitnessUC,
		aggregationUC: params.AggregationUC,
		logger:        params.Logger,
	}
}

// ConfirmWitness records the calling device as a witness
func (h *WitnessHandler) ConfirmWitness(c echo.Context) error {
	sightingID, ok := sightingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid sighting ID")
	}

	var req usecase.ConfirmWitnessInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid witness input")
	}
	req.SightingID = sightingID

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	confirmation, err := h.witnessUC.Confirm(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, confirmation)
}

// GetWitnessStatus returns one device's confirmation
func (h *WitnessHandler) GetWitnessStatus(c echo.Context) error {
	sightingID, ok := sightingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid sighting ID")
	}

	confirmation, err := h.witnessUC.GetStatus(c.Request().Context(), sightingID, deviceIDParam(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, confirmation)
}

// GetAggregation returns the witness read model
func (h *WitnessHandler) GetAggregation(c echo.Context) error {
	sightingID, ok := sightingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid sighting ID")
	}

	aggregation, err := h.aggregationUC.GetAggregation(c.Request().Context(), sightingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, aggregation)
}

// GetHeatMap returns the witness heat map as a bare GeoJSON FeatureCollection
func (h *WitnessHandler) GetHeatMap(c echo.Context) error {
	sightingID, ok := sightingIDParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid sighting ID")
	}

	fc, err := h.aggregationUC.GetHeatMapGeoJSON(c.Request().Context(), sightingID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode heat map")
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}
