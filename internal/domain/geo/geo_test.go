package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name             string
		lat1, lon1       float64
		lat2, lon2       float64
		expected, within float64
	}{
		{name: "same point", lat1: 47.6062, lon1: -122.3321, lat2: 47.6062, lon2: -122.3321, expected: 0, within: 1e-9},
		{name: "one degree of longitude on the equator", lat1: 0, lon1: 0, lat2: 0, lon2: 1, expected: KmPerDegreeLat, within: 1e-6},
		{name: "one degree of latitude", lat1: 10, lon1: 20, lat2: 11, lon2: 20, expected: KmPerDegreeLat, within: 1e-6},
		{name: "Seattle to Portland", lat1: 47.6062, lon1: -122.3321, lat2: 45.5152, lon2: -122.6784, expected: 234, within: 2},
		{name: "across the antimeridian", lat1: 0, lon1: 179.5, lat2: 0, lon2: -179.5, expected: KmPerDegreeLat, within: 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2), tt.within)
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	d1 := DistanceKm(47.61, -122.33, 47.60, -122.34)
	d2 := DistanceKm(47.60, -122.34, 47.61, -122.33)
	assert.InDelta(t, d1, d2, 1e-12)
}

func TestBearingDeg_CardinalDirections(t *testing.T) {
	assert.InDelta(t, 0, BearingDeg(0, 0, 1, 0), 1e-9)
	assert.InDelta(t, 90, BearingDeg(0, 0, 0, 1), 1e-9)
	assert.InDelta(t, 180, BearingDeg(0, 0, -1, 0), 1e-9)
	assert.InDelta(t, 270, BearingDeg(0, 0, 0, -1), 1e-9)
}

func TestNormalizeBearing(t *testing.T) {
	assert.InDelta(t, 350, NormalizeBearing(-10), 1e-9)
	assert.InDelta(t, 10, NormalizeBearing(370), 1e-9)
	assert.InDelta(t, 0, NormalizeBearing(360), 1e-9)
	assert.InDelta(t, 180, NormalizeBearing(-180), 1e-9)
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(47.6, -122.3))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.False(t, ValidCoordinate(90.1, 0))
	assert.False(t, ValidCoordinate(0, -180.5))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
	assert.False(t, ValidCoordinate(0, math.Inf(1)))
}
