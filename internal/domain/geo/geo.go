// Package geo holds the spherical-earth math shared by the device index,
// the witness store and the triangulation engine. Every distance in the
// system goes through DistanceKm so that server results match client maths.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	// EarthRadiusKm is the mean radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	// KmPerDegreeLat is the length of one degree of latitude on the sphere.
	KmPerDegreeLat = EarthRadiusKm * math.Pi / 180.0
)

// DistanceKm returns the great-circle distance between two points using haversine.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// BearingDeg returns the initial great-circle bearing from the first point toward
// the second, normalised to [0, 360).
func BearingDeg(fromLat, fromLon, toLat, toLon float64) float64 {
	return NormalizeBearing(orbgeo.Bearing(Point(fromLat, fromLon), Point(toLat, toLon)))
}

// NormalizeBearing folds any angle in degrees into [0, 360).
func NormalizeBearing(deg float64) float64 {
	b := math.Mod(deg, 360)
	if b < 0 {
		b += 360
	}
	if b >= 360 {
		b = 0
	}

	return b
}

// ValidCoordinate reports whether lat/lon are finite and within WGS84 bounds.
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Point converts lat/lon into an orb point (lon first).
func Point(lat, lon float64) orb.Point {
	return orb.Point{lon, lat}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
