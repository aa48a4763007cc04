package impl

import (
	"io"
	"log/slog"
	"time"

	"ufobeep/config"
	"ufobeep/internal/domain/geo"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		GeoIndex: &config.GeoIndexConfig{
			CellSizeDeg:   0.2,
			StaleAfter:    24 * time.Hour,
			SweepInterval: time.Minute,
		},
		Fanout: &config.FanoutConfig{
			DefaultRadiusKm: 5,
			MaxRadiusKm:     50,
			MaxInFlight:     8,
			SendTimeout:     time.Second,
			MaxRetries:      2,
			RetryBackoff:    time.Millisecond,
		},
		RateLimit: &config.RateLimitConfig{
			Backend:   "memory",
			MaxAlerts: 3,
			Window:    15 * time.Minute,
		},
		Witness: &config.WitnessConfig{
			MaxListed:          50,
			HeatMapCellSizeDeg: 0.01,
		},
		Triangulation: &config.TriangulationConfig{
			MaxIntersectionKm: 100,
			SpreadScaleKm:     2,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

// kmNorth returns the latitude reached by moving distanceKm due north.
func kmNorth(lat, distanceKm float64) float64 {
	return lat + distanceKm/geo.KmPerDegreeLat
}
