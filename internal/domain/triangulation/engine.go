// Package triangulation derives location estimates and summary statistics
// from a snapshot of witness confirmations. Everything here is pure: callers
// pass a point-in-time slice and nothing is read from storage.
package triangulation

import (
	"math"
	"sort"

	"ufobeep/internal/domain/entity"
	"ufobeep/internal/domain/geo"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	// DefaultMaxIntersectionKm discards estimates further than this from every witness.
	DefaultMaxIntersectionKm = 100.0
	// DefaultSpreadScaleKm is the RMS line residual at which confidence drops to 1/e.
	DefaultSpreadScaleKm = 2.0

	// Bearing lines closer than this to parallel do not produce a usable fix.
	minCrossingDeg = 1.0
	// rayToleranceM lets an estimate this far behind a witness still count as ahead of it.
	rayToleranceM = 1000.0
	// directionStepM is how far along its bearing a witness line is sampled.
	directionStepM = 10000.0

	// A bearing whose leave-one-out fix moves this far relative to its
	// distance from the estimate is fully inconsistent with the others.
	residualTolerance = 0.5
	leverageTolerance = 0.4
)

// Config tunes the engine.
type Config struct {
	MaxIntersectionKm float64 `json:"maxIntersectionKm"`
	SpreadScaleKm     float64 `json:"spreadScaleKm"`
}

// Engine triangulates an object from witness bearings.
type Engine struct {
	maxIntersectionKm float64
	spreadScaleKm     float64
}

// NewEngine builds an engine, falling back to defaults for unset values.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		maxIntersectionKm: cfg.MaxIntersectionKm,
		spreadScaleKm:     cfg.SpreadScaleKm,
	}
	if e.maxIntersectionKm <= 0 {
		e.maxIntersectionKm = DefaultMaxIntersectionKm
	}
	if e.spreadScaleKm <= 0 {
		e.spreadScaleKm = DefaultSpreadScaleKm
	}

	return e
}

type sightline struct {
	deviceID string
	lat, lon float64
	bearing  float64
	origin   orb.Point // gnomonic plane metres
	dir      orb.Point // unit vector along the bearing
}

// normal is the unit normal of the line, dir rotated a quarter turn clockwise.
func (l sightline) normal() orb.Point {
	return orb.Point{l.dir[1], -l.dir[0]}
}

// residual is the signed perpendicular distance from p to the line.
func (l sightline) residual(p orb.Point) float64 {
	n := l.normal()
	return n[0]*(p[0]-l.origin[0]) + n[1]*(p[1]-l.origin[1])
}

// normalMatrix is the 2x2 system of the least-squares fit, [a b; b c] x = [p q].
type normalMatrix struct {
	a, b, c float64
	p, q    float64
}

func (m *normalMatrix) add(l sightline) {
	n := l.normal()
	k := n[0]*l.origin[0] + n[1]*l.origin[1]

	m.a += n[0] * n[0]
	m.b += n[0] * n[1]
	m.c += n[1] * n[1]
	m.p += n[0] * k
	m.q += n[1] * k
}

func (m normalMatrix) det() float64 {
	return m.a*m.c - m.b*m.b
}

func (m normalMatrix) solve() orb.Point {
	d := m.det()
	return orb.Point{(m.c*m.p - m.b*m.q) / d, (m.a*m.q - m.b*m.p) / d}
}

// leverage is nᵀ M⁻¹ n for a unit normal n.
func (m normalMatrix) leverage(n orb.Point) float64 {
	return (m.c*n[0]*n[0] - 2*m.b*n[0]*n[1] + m.a*n[1]*n[1]) / m.det()
}

func (m normalMatrix) minEigenvalue() float64 {
	half := (m.a - m.c) / 2
	return (m.a+m.c)/2 - math.Sqrt(half*half+m.b*m.b)
}

// Triangulate returns the point that minimises the summed squared distance to
// every witness's bearing line. It returns nil when fewer than two distinct
// bearings are available, the lines are all within 1 degree of parallel, or
// the estimate lies beyond maxIntersectionKm of every witness.
//
// Lines live in a gnomonic projection centred on the sighting origin, where
// great circles are straight. Bearings are treated as lines, not rays, so the
// estimate may lie behind a witness. Such a witness then adds nothing to the
// confidence.
func (e *Engine) Triangulate(origin entity.GeoLocation, witnesses []entity.WitnessConfirmation) *entity.TriangulationResult {
	if !geo.ValidCoordinate(origin.Latitude, origin.Longitude) {
		return nil
	}

	proj := newGnomonic(origin.Latitude, origin.Longitude)
	lines := qualifyingLines(proj, witnesses)
	if distinctBearings(lines) < 2 {
		return nil
	}

	var m normalMatrix
	for _, l := range lines {
		m.add(l)
	}
	minCrossing := math.Sin(minCrossingDeg * math.Pi / 180)
	if m.det() < minCrossing*minCrossing {
		return nil
	}

	estimate := m.solve()
	location := proj.inverse(estimate)
	estLat, estLon := location.Lat(), location.Lon()
	if !geo.ValidCoordinate(estLat, estLon) {
		return nil
	}

	nearest := math.Inf(1)
	for _, l := range lines {
		nearest = math.Min(nearest, geo.DistanceKm(l.lat, l.lon, estLat, estLon))
	}
	if nearest > e.maxIntersectionKm {
		return nil
	}

	agreement := make([]float64, len(lines))
	support := 0.0
	for i, l := range lines {
		agreement[i] = l.agreement(estimate)
		support += agreement[i]
	}

	diversity := 0.0
	crossings := 0
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			sine := crossingSine(lines[i], lines[j])
			if sine >= minCrossing {
				crossings++
			}
			diversity = math.Max(diversity, sine*agreement[i]*agreement[j])
		}
	}

	var sumSq float64
	for _, l := range lines {
		r := l.residual(estimate) / 1000
		sumSq += r * r
	}
	rmsKm := math.Sqrt(sumSq / float64(len(lines)))

	return &entity.TriangulationResult{
		EstimatedLocation:   entity.GeoLocation{Latitude: estLat, Longitude: estLon},
		ConfidencePercent:   e.confidence(support, len(lines), diversity, rmsKm, consistency(m, lines, estimate)),
		WitnessBearingsUsed: len(lines),
		IntersectionsUsed:   crossings,
		Method:              entity.TriangulationMethodLeastSquares,
	}
}

// confidence grows with the number of agreeing bearings and their angular
// diversity and shrinks with disagreement and with the residual of the lines
// around the estimate. support is the summed agreement of the bearings used.
func (e *Engine) confidence(support float64, bearings int, diversity, rmsKm, consistent float64) float64 {
	countFactor := 1 - math.Exp(-support/3)
	agreementFactor := support / float64(bearings)
	spreadFactor := math.Exp(-rmsKm / e.spreadScaleKm)

	c := 100 * countFactor * agreementFactor * diversity * spreadFactor * consistent
	c = math.Min(math.Max(c, 0), 100)

	return math.Round(c*10) / 10
}

// consistency is the product over lines of 1 - q², where q measures how far
// the fix moves when that line is left out, relative to the line's own
// distance from the estimate. A line through the estimate scores q = 0 and
// leaves every other line's q unchanged or smaller. A line that points well
// away from where the others meet scores q = 1, zeroing the result.
func consistency(m normalMatrix, lines []sightline, estimate orb.Point) float64 {
	minEigen := m.minEigenvalue()

	result := 1.0
	for _, l := range lines {
		r := l.residual(estimate)
		h := m.leverage(l.normal())
		if r == 0 || 1-h <= 1e-12 {
			continue
		}

		// Distance between the fix with and without this line.
		shift := math.Abs(r) / (1 - h)
		dist := math.Hypot(estimate[0]-l.origin[0], estimate[1]-l.origin[1])

		q := 1.0
		if dist > 0 {
			stat := shift / dist
			q = math.Min(1, math.Max(stat/residualTolerance, math.Sqrt(math.Max(h, 0)/minEigen)*stat/leverageTolerance))
		}
		result *= 1 - q*q
	}

	return result
}

// agreement is the cosine between the line's bearing and the direction from
// the witness to target, or 0 when target lies more than 90 degrees off or
// behind the witness. The origin is pulled back by rayToleranceM first.
func (l sightline) agreement(target orb.Point) float64 {
	dx := target[0] - (l.origin[0] - rayToleranceM*l.dir[0])
	dy := target[1] - (l.origin[1] - rayToleranceM*l.dir[1])

	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 1
	}

	return math.Max(0, (dx*l.dir[0]+dy*l.dir[1])/dist)
}

func crossingSine(a, b sightline) float64 {
	return math.Abs(a.dir[0]*b.dir[1] - a.dir[1]*b.dir[0])
}

// qualifyingLines keeps witnesses with a bearing and a projectable location,
// ordered by device id so the result does not depend on input order.
func qualifyingLines(proj gnomonic, witnesses []entity.WitnessConfirmation) []sightline {
	lines := make([]sightline, 0, len(witnesses))
	for i := range witnesses {
		w := &witnesses[i]
		if !w.HasBearing() || math.IsNaN(*w.BearingDeg) || math.IsInf(*w.BearingDeg, 0) {
			continue
		}
		lat, lon := w.Location.Latitude, w.Location.Longitude
		if !geo.ValidCoordinate(lat, lon) {
			continue
		}

		bearing := geo.NormalizeBearing(*w.BearingDeg)
		from := geo.Point(lat, lon)
		origin, ok := proj.forward(from)
		if !ok {
			continue
		}
		ahead, ok := proj.forward(orbgeo.PointAtBearingAndDistance(from, bearing, directionStepM))
		if !ok {
			continue
		}
		dx, dy := ahead[0]-origin[0], ahead[1]-origin[1]
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}

		lines = append(lines, sightline{
			deviceID: w.DeviceID,
			lat:      lat,
			lon:      lon,
			bearing:  bearing,
			origin:   origin,
			dir:      orb.Point{dx / length, dy / length},
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].deviceID < lines[j].deviceID
	})

	return lines
}

func distinctBearings(lines []sightline) int {
	seen := make(map[float64]struct{}, len(lines))
	for _, l := range lines {
		seen[l.bearing] = struct{}{}
	}

	return len(seen)
}
