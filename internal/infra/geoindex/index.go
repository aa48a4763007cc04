// Package geoindex keeps registered device positions in a grid of fixed-size
// lat/lon cells so that radius queries only touch the cells overlapping the
// query's bounding box.
//
// Cell size trades memory for candidate count: with cellSizeDeg = 0.2 a cell is
// about 22 km tall, so a 25 km query spans at most 4x4 cells at mid latitudes
// and the worst-case candidate set is the devices in those 16 cells. A point
// near a cell edge is still found because every cell the bounding box touches
// is scanned, not just the containing one.
//
// Readers never block. Each cell publishes an immutable slice that writers
// replace with compare-and-swap, and a registry of current entries lets a
// query drop an entry that was superseded while it was scanning. Writers only
// serialize per device key through striped mutexes.
package geoindex

import (
	"hash/fnv"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"ufobeep/internal/domain/entity"
	"ufobeep/internal/domain/geo"
	"ufobeep/internal/domain/service"
)

const (
	// DefaultCellSizeDeg suits alert radii of tens of kilometres.
	DefaultCellSizeDeg = 0.2

	lockStripes = 256

	// boxMarginDeg pads the bounding box against rounding at cell edges.
	boxMarginDeg = 1e-9
)

type cellKey struct {
	lat int
	lon int
}

type entry struct {
	device entity.DeviceLocation
	key    cellKey
}

type cell struct {
	entries atomic.Pointer[[]*entry]
}

// Index is a concurrency-safe grid index of device locations.
type Index struct {
	cellSizeDeg float64
	lonCells    int

	cells   sync.Map // cellKey -> *cell
	devices sync.Map // device id -> *entry (the current one)
	locks   [lockStripes]sync.Mutex

	size      atomic.Int64
	maxRadius atomic.Uint64 // math.Float64bits of the largest alert radius seen
}

var _ service.DeviceIndex = (*Index)(nil)

// New creates an empty index. A non-positive cell size falls back to DefaultCellSizeDeg.
func New(cellSizeDeg float64) *Index {
	if cellSizeDeg <= 0 || cellSizeDeg > 90 {
		cellSizeDeg = DefaultCellSizeDeg
	}

	return &Index{
		cellSizeDeg: cellSizeDeg,
		lonCells:    int(math.Ceil(360 / cellSizeDeg)),
	}
}

// CellSizeDeg returns the configured bucket size.
func (ix *Index) CellSizeDeg() float64 {
	return ix.cellSizeDeg
}

// Len returns the number of indexed devices.
func (ix *Index) Len() int {
	return int(ix.size.Load())
}

// MaxAlertRadiusKm returns an upper bound of every indexed device's own radius.
// It only ever grows, which keeps it a safe query radius.
func (ix *Index) MaxAlertRadiusKm() float64 {
	return math.Float64frombits(ix.maxRadius.Load())
}

// Upsert inserts or replaces a device. Devices with invalid coordinates are ignored.
func (ix *Index) Upsert(device entity.DeviceLocation) {
	if device.DeviceID == "" || !geo.ValidCoordinate(device.Latitude, device.Longitude) {
		return
	}

	mu := ix.lockFor(device.DeviceID)
	mu.Lock()
	defer mu.Unlock()

	next := &entry{device: device, key: ix.keyFor(device.Latitude, device.Longitude)}

	// Publish into the new cell before the registry so a concurrent query sees
	// either the old entry or the new one as current.
	ix.cellFor(next.key).add(next)
	prev, hadPrev := ix.devices.Swap(device.DeviceID, next)
	if hadPrev {
		old := prev.(*entry)
		ix.cellFor(old.key).remove(old)
	} else {
		ix.size.Add(1)
	}

	ix.raiseMaxRadius(device.AlertRadiusKm)
}

// Remove deletes a device; unknown ids are a no-op.
func (ix *Index) Remove(deviceID string) {
	mu := ix.lockFor(deviceID)
	mu.Lock()
	defer mu.Unlock()

	prev, ok := ix.devices.LoadAndDelete(deviceID)
	if !ok {
		return
	}

	old := prev.(*entry)
	ix.cellFor(old.key).remove(old)
	ix.size.Add(-1)
}

// Rebuild makes the index contain exactly the given devices.
func (ix *Index) Rebuild(devices []entity.DeviceLocation) {
	keep := make(map[string]struct{}, len(devices))
	for _, device := range devices {
		keep[device.DeviceID] = struct{}{}
		ix.Upsert(device)
	}

	ix.devices.Range(func(key, _ any) bool {
		if _, ok := keep[key.(string)]; !ok {
			ix.Remove(key.(string))
		}

		return true
	})
}

// RemoveStale drops devices whose last update is before cutoff and returns their ids.
func (ix *Index) RemoveStale(cutoff time.Time) []string {
	var removed []string

	ix.devices.Range(func(key, value any) bool {
		e := value.(*entry)
		if !e.device.LastUpdated.Before(cutoff) {
			return true
		}

		id := key.(string)
		mu := ix.lockFor(id)
		mu.Lock()
		// Re-check under the key lock: the device may have reported in meanwhile.
		if cur, ok := ix.devices.Load(id); ok && cur.(*entry) == e {
			ix.devices.Delete(id)
			ix.cellFor(e.key).remove(e)
			ix.size.Add(-1)
			removed = append(removed, id)
		}
		mu.Unlock()

		return true
	})

	return removed
}

// QueryRadius returns every device whose haversine distance to (lat, lon) is at
// most radiusKm, nearest first. Bearings are measured from the query point
// toward each device.
func (ix *Index) QueryRadius(lat, lon, radiusKm float64) []entity.NearbyDevice {
	if radiusKm < 0 || math.IsNaN(radiusKm) || !geo.ValidCoordinate(lat, lon) {
		return nil
	}

	results := make([]entity.NearbyDevice, 0)
	ix.forEachCandidateCell(lat, lon, radiusKm, func(c *cell) {
		snapshot := c.entries.Load()
		if snapshot == nil {
			return
		}

		for _, e := range *snapshot {
			if !ix.isCurrent(e) {
				continue
			}

			distance := geo.DistanceKm(lat, lon, e.device.Latitude, e.device.Longitude)
			if distance > radiusKm {
				continue
			}

			results = append(results, entity.NearbyDevice{
				Device:     e.device,
				DistanceKm: distance,
				BearingDeg: geo.BearingDeg(lat, lon, e.device.Latitude, e.device.Longitude),
			})
		}
	})

	sort.Slice(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}

		return results[i].Device.DeviceID < results[j].Device.DeviceID
	})

	return results
}

// forEachCandidateCell visits every existing cell overlapping the bounding box
// of the spherical cap around (lat, lon).
func (ix *Index) forEachCandidateCell(lat, lon, radiusKm float64, visit func(*cell)) {
	angular := radiusKm / geo.EarthRadiusKm
	dLat := angular * 180 / math.Pi

	minLat := lat - dLat - boxMarginDeg
	maxLat := lat + dLat + boxMarginDeg

	fullLon := false
	var dLon float64
	if minLat <= -90 || maxLat >= 90 || angular >= math.Pi/2 {
		// The cap reaches a pole so every longitude is in range.
		fullLon = true
	} else {
		ratio := math.Sin(angular) / math.Cos(lat*math.Pi/180)
		if ratio >= 1 {
			fullLon = true
		} else {
			dLon = math.Asin(ratio)*180/math.Pi + boxMarginDeg
			fullLon = dLon >= 180
		}
	}

	latLo := ix.latIndex(math.Max(minLat, -90))
	latHi := ix.latIndex(math.Min(maxLat, 90))

	var spans [][2]float64
	switch lo, hi := lon-dLon, lon+dLon; {
	case fullLon || 2*dLon >= 360-2*ix.cellSizeDeg:
		spans = [][2]float64{{-180, 180}}
	case lo <= -180:
		spans = [][2]float64{{lo + 360, 180}, {-180, hi}}
	case hi >= 180:
		spans = [][2]float64{{lo, 180}, {-180, hi - 360}}
	default:
		spans = [][2]float64{{lo, hi}}
	}

	for latIdx := latLo; latIdx <= latHi; latIdx++ {
		for _, span := range spans {
			for lonIdx := ix.lonIndex(span[0]); lonIdx <= ix.lonIndex(span[1]); lonIdx++ {
				value, ok := ix.cells.Load(cellKey{lat: latIdx, lon: lonIdx})
				if !ok {
					continue
				}
				visit(value.(*cell))
			}
		}
	}
}

func (ix *Index) isCurrent(e *entry) bool {
	cur, ok := ix.devices.Load(e.device.DeviceID)

	return ok && cur.(*entry) == e
}

func (ix *Index) keyFor(lat, lon float64) cellKey {
	if lon >= 180 {
		lon -= 360
	}

	return cellKey{lat: ix.latIndex(lat), lon: ix.lonIndex(lon)}
}

func (ix *Index) latIndex(lat float64) int {
	return int(math.Floor((lat + 90) / ix.cellSizeDeg))
}

// lonIndex maps a longitude in [-180, 180] to a column. The last column may be
// narrower than the others when the cell size does not divide 360.
func (ix *Index) lonIndex(lon float64) int {
	idx := int(math.Floor((lon + 180) / ix.cellSizeDeg))

	return min(max(idx, 0), ix.lonCells-1)
}

func (ix *Index) cellFor(key cellKey) *cell {
	if value, ok := ix.cells.Load(key); ok {
		return value.(*cell)
	}
	value, _ := ix.cells.LoadOrStore(key, &cell{})

	return value.(*cell)
}

func (ix *Index) lockFor(deviceID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(deviceID))

	return &ix.locks[h.Sum32()%lockStripes]
}

func (ix *Index) raiseMaxRadius(radiusKm float64) {
	if radiusKm <= 0 || math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) {
		return
	}

	for {
		current := ix.maxRadius.Load()
		if math.Float64frombits(current) >= radiusKm {
			return
		}
		if ix.maxRadius.CompareAndSwap(current, math.Float64bits(radiusKm)) {
			return
		}
	}
}

func (c *cell) add(e *entry) {
	for {
		old := c.entries.Load()
		var next []*entry
		if old != nil {
			next = make([]*entry, 0, len(*old)+1)
			next = append(next, *old...)
		}
		next = append(next, e)
		if c.entries.CompareAndSwap(old, &next) {
			return
		}
	}
}

func (c *cell) remove(e *entry) {
	for {
		old := c.entries.Load()
		if old == nil {
			return
		}

		next := make([]*entry, 0, len(*old))
		for _, candidate := range *old {
			if candidate != e {
				next = append(next, candidate)
			}
		}
		if len(next) == len(*old) {
			return
		}
		if c.entries.CompareAndSwap(old, &next) {
			return
		}
	}
}
