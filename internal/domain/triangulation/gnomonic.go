package triangulation

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusM matches the mean radius used by geo.DistanceKm.
const earthRadiusM = 6371000.0

// gnomonic is the gnomonic projection about a fixed centre. It maps every
// great circle to a straight line, so a witness's great-circle bearing is a
// straight line in the plane. Points 90 degrees or more from the centre have
// no image.
type gnomonic struct {
	sinLat0, cosLat0 float64
	lon0             float64
}

func newGnomonic(lat, lon float64) gnomonic {
	rad := lat * math.Pi / 180

	return gnomonic{
		sinLat0: math.Sin(rad),
		cosLat0: math.Cos(rad),
		lon0:    lon * math.Pi / 180,
	}
}

// forward returns plane metres, x east and y north of the centre.
func (g gnomonic) forward(p orb.Point) (orb.Point, bool) {
	lat := p.Lat() * math.Pi / 180
	dLon := p.Lon()*math.Pi/180 - g.lon0
	sinLat, cosLat := math.Sin(lat), math.Cos(lat)

	cosC := g.sinLat0*sinLat + g.cosLat0*cosLat*math.Cos(dLon)
	if cosC <= 1e-9 {
		return orb.Point{}, false
	}

	return orb.Point{
		earthRadiusM * cosLat * math.Sin(dLon) / cosC,
		earthRadiusM * (g.cosLat0*sinLat - g.sinLat0*cosLat*math.Cos(dLon)) / cosC,
	}, true
}

func (g gnomonic) inverse(p orb.Point) orb.Point {
	rho := math.Hypot(p[0], p[1])
	if rho == 0 {
		return orb.Point{g.lon0 * 180 / math.Pi, math.Asin(g.sinLat0) * 180 / math.Pi}
	}

	c := math.Atan(rho / earthRadiusM)
	sinC, cosC := math.Sin(c), math.Cos(c)

	lat := math.Asin(cosC*g.sinLat0 + p[1]*sinC*g.cosLat0/rho)
	lon := g.lon0 + math.Atan2(p[0]*sinC, rho*g.cosLat0*cosC-p[1]*g.sinLat0*sinC)

	return orb.Point{math.Remainder(lon*180/math.Pi, 360), lat * 180 / math.Pi}
}
