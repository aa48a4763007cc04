package entity

import (
	"time"

	"github.com/google/uuid"
)

// TriangulationMethodLeastSquares names the least-squares fit of all bearing lines.
const TriangulationMethodLeastSquares = "bearing_least_squares"

// TriangulationResult is a derived location estimate; it is never persisted.
type TriangulationResult struct {
	EstimatedLocation   GeoLocation `json:"estimated_location"`
	ConfidencePercent   float64     `json:"confidence_percent"`
	WitnessBearingsUsed int         `json:"witness_bearings_used"`
	IntersectionsUsed   int         `json:"intersections_used"`
	Method              string      `json:"method"`
}

// HeatMapCell is one occupied grid bucket of witness positions.
type HeatMapCell struct {
	CellCenter   GeoLocation `json:"cell_center"`
	WitnessCount int         `json:"witness_count"`
	Intensity    float64     `json:"intensity"`
}

// Consensus summarises what the witnesses agree on.
type Consensus struct {
	TotalWitnesses              int      `json:"total_witnesses"`
	StillVisibleCount           int      `json:"still_visible_count"`
	VisibilityConsensusPercent  float64  `json:"visibility_consensus_percent"`
	AverageDistanceKm           *float64 `json:"average_distance_km,omitempty"`
	ConfirmationTimeSpanMinutes float64  `json:"confirmation_time_span_minutes"`
}

// WitnessAggregation is the read model served to clients polling a sighting.
// Triangulation and Consensus are omitted when there is not enough data.
type WitnessAggregation struct {
	SightingID      uuid.UUID             `json:"sighting_id"`
	WitnessCount    int                   `json:"witness_count"`
	Witnesses       []WitnessConfirmation `json:"witnesses"`
	Triangulation   *TriangulationResult  `json:"triangulation,omitempty"`
	HeatMapData     []HeatMapCell         `json:"heat_map_data"`
	Consensus       *Consensus            `json:"consensus,omitempty"`
	EscalationLevel EscalationLevel       `json:"escalation_level"`
	Timestamp       time.Time             `json:"timestamp"`
}
