package usecase

import (
	"context"

	"ufobeep/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// AggregationUsecase builds the witness read model clients poll.
type AggregationUsecase interface {
	// GetAggregation recomputes triangulation, heat map and consensus from one witness snapshot.
	GetAggregation(ctx context.Context, sightingID uuid.UUID) (*entity.WitnessAggregation, error)

	// GetHeatMapGeoJSON returns the witness heat map as point features.
	GetHeatMapGeoJSON(ctx context.Context, sightingID uuid.UUID) (*geojson.FeatureCollection, error)
}
