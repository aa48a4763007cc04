package triangulation

import (
	"math"
	"sort"

	"ufobeep/internal/domain/entity"
	"ufobeep/internal/domain/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// DefaultHeatMapCellSizeDeg is roughly a city block.
const DefaultHeatMapCellSizeDeg = 0.01

type heatKey struct {
	lat int
	lon int
}

// HeatMap buckets witness locations into a lat/lon grid and returns the
// occupied cells only, busiest first. Intensity is the cell count divided by
// the busiest cell's count.
func HeatMap(witnesses []entity.WitnessConfirmation, cellSizeDeg float64) []entity.HeatMapCell {
	if cellSizeDeg <= 0 {
		cellSizeDeg = DefaultHeatMapCellSizeDeg
	}

	counts := make(map[heatKey]int)
	maxCount := 0
	for _, w := range witnesses {
		if !geo.ValidCoordinate(w.Location.Latitude, w.Location.Longitude) {
			continue
		}
		key := heatKey{
			lat: int(math.Floor(w.Location.Latitude / cellSizeDeg)),
			lon: int(math.Floor(w.Location.Longitude / cellSizeDeg)),
		}
		counts[key]++
		maxCount = max(maxCount, counts[key])
	}

	cells := make([]entity.HeatMapCell, 0, len(counts))
	for key, count := range counts {
		cells = append(cells, entity.HeatMapCell{
			CellCenter: entity.GeoLocation{
				Latitude:  (float64(key.lat) + 0.5) * cellSizeDeg,
				Longitude: (float64(key.lon) + 0.5) * cellSizeDeg,
			},
			WitnessCount: count,
			Intensity:    float64(count) / float64(maxCount),
		})
	}

	sort.Slice(cells, func(i, j int) bool {
		a, b := cells[i], cells[j]
		if a.WitnessCount != b.WitnessCount {
			return a.WitnessCount > b.WitnessCount
		}
		if a.CellCenter.Latitude != b.CellCenter.Latitude {
			return a.CellCenter.Latitude < b.CellCenter.Latitude
		}

		return a.CellCenter.Longitude < b.CellCenter.Longitude
	})

	return cells
}

// HeatMapFeatures renders heat map cells as GeoJSON points for map clients.
func HeatMapFeatures(cells []entity.HeatMapCell) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, cell := range cells {
		f := geojson.NewFeature(orb.Point{cell.CellCenter.Longitude, cell.CellCenter.Latitude})
		f.Properties["witness_count"] = cell.WitnessCount
		f.Properties["intensity"] = cell.Intensity
		fc.Append(f)
	}

	return fc
}
