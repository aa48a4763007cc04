package geoindex

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"testing"
	"time"

	"ufobeep/internal/domain/entity"
	"ufobeep/internal/domain/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func device(id string, lat, lon float64) entity.DeviceLocation {
	return entity.DeviceLocation{
		DeviceID:      id,
		Latitude:      lat,
		Longitude:     lon,
		AlertsEnabled: true,
		LastUpdated:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func ids(nearby []entity.NearbyDevice) []string {
	out := make([]string, 0, len(nearby))
	for _, n := range nearby {
		out = append(out, n.Device.DeviceID)
	}

	return out
}

func TestIndex_QueryRadius(t *testing.T) {
	index := New(0.2)
	index.Upsert(device("seattle", 47.6062, -122.3321))  // centre
	index.Upsert(device("bellevue", 47.6101, -122.2015)) // ~10 km east
	index.Upsert(device("tacoma", 47.2529, -122.4443))   // ~40 km south
	index.Upsert(device("portland", 45.5152, -122.6784)) // ~234 km south

	got := index.QueryRadius(47.6062, -122.3321, 25)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"seattle", "bellevue"}, ids(got))
	assert.InDelta(t, 0, got[0].DistanceKm, 1e-9)
	assert.InDelta(t, 9.8, got[1].DistanceKm, 0.5)
	// Bellevue is due east of the query point.
	assert.InDelta(t, 88, got[1].BearingDeg, 3)

	got = index.QueryRadius(47.6062, -122.3321, 50)
	assert.Equal(t, []string{"seattle", "bellevue", "tacoma"}, ids(got))
}

func TestIndex_QueryRadius_FindsDevicesAcrossCellEdges(t *testing.T) {
	index := New(0.2)
	// 0.0 and 0.2 are both cell boundaries; the device sits just on the other side.
	index.Upsert(device("edge", 0.2000001, 0.0))

	got := index.QueryRadius(0.1999999, 0.0, 0.1)
	assert.Equal(t, []string{"edge"}, ids(got))
}

func TestIndex_QueryRadius_Antimeridian(t *testing.T) {
	index := New(0.2)
	index.Upsert(device("east", 10.0, 179.95))
	index.Upsert(device("west", 10.0, -179.95))

	got := index.QueryRadius(10.0, 179.99, 20)
	assert.ElementsMatch(t, []string{"east", "west"}, ids(got))

	got = index.QueryRadius(10.0, -180.0, 20)
	assert.ElementsMatch(t, []string{"east", "west"}, ids(got))
}

func TestIndex_QueryRadius_NearPole(t *testing.T) {
	index := New(0.2)
	index.Upsert(device("a", 89.95, 0))
	index.Upsert(device("b", 89.95, 180))
	index.Upsert(device("c", 89.0, 90))

	got := index.QueryRadius(89.99, -90, 15)
	assert.ElementsMatch(t, []string{"a", "b"}, ids(got))
}

func TestIndex_QueryRadius_InvalidInput(t *testing.T) {
	index := New(0.2)
	index.Upsert(device("a", 1, 1))

	assert.Empty(t, index.QueryRadius(91, 0, 10))
	assert.Empty(t, index.QueryRadius(0, 181, 10))
	assert.Empty(t, index.QueryRadius(1, 1, -1))
	assert.Len(t, index.QueryRadius(1, 1, 0), 1)
}

func TestIndex_UpsertMovesDevice(t *testing.T) {
	index := New(0.2)
	index.Upsert(device("d1", 10, 10))
	index.Upsert(device("d1", 20, 20))

	assert.Equal(t, 1, index.Len())
	assert.Empty(t, index.QueryRadius(10, 10, 5))
	assert.Equal(t, []string{"d1"}, ids(index.QueryRadius(20, 20, 5)))
}

func TestIndex_UpsertIgnoresInvalidCoordinates(t *testing.T) {
	index := New(0.2)
	index.Upsert(device("bad", 95, 0))
	index.Upsert(device("", 0, 0))

	assert.Equal(t, 0, index.Len())
}

func TestIndex_Remove(t *testing.T) {
	index := New(0.2)
	index.Upsert(device("d1", 10, 10))
	index.Remove("d1")
	index.Remove("unknown")

	assert.Equal(t, 0, index.Len())
	assert.Empty(t, index.QueryRadius(10, 10, 5))
}

func TestIndex_Rebuild(t *testing.T) {
	index := New(0.2)
	index.Upsert(device("old", 10, 10))

	index.Rebuild([]entity.DeviceLocation{device("a", 1, 1), device("b", 2, 2)})

	assert.Equal(t, 2, index.Len())
	assert.Empty(t, index.QueryRadius(10, 10, 5))
	assert.Equal(t, []string{"a"}, ids(index.QueryRadius(1, 1, 5)))
}

func TestIndex_RemoveStale(t *testing.T) {
	index := New(0.2)
	cutoff := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	stale := device("stale", 1, 1)
	stale.LastUpdated = cutoff.Add(-time.Hour)
	fresh := device("fresh", 1, 1)
	fresh.LastUpdated = cutoff.Add(time.Hour)
	index.Upsert(stale)
	index.Upsert(fresh)

	removed := index.RemoveStale(cutoff)

	assert.Equal(t, []string{"stale"}, removed)
	assert.Equal(t, []string{"fresh"}, ids(index.QueryRadius(1, 1, 1)))
}

func TestIndex_MaxAlertRadiusKm(t *testing.T) {
	index := New(0.2)
	assert.Zero(t, index.MaxAlertRadiusKm())

	d := device("a", 1, 1)
	d.AlertRadiusKm = 40
	index.Upsert(d)
	d.AlertRadiusKm = 5
	index.Upsert(d)

	assert.Equal(t, 40.0, index.MaxAlertRadiusKm())
}

func TestNew_DefaultCellSize(t *testing.T) {
	assert.Equal(t, DefaultCellSizeDeg, New(0).CellSizeDeg())
	assert.Equal(t, DefaultCellSizeDeg, New(-1).CellSizeDeg())
	assert.Equal(t, 0.5, New(0.5).CellSizeDeg())
}

// The index must return exactly the brute-force set for any query.
func TestIndex_QueryRadius_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for _, cellSize := range []float64{0.05, 0.2, 1.0} {
		t.Run(fmt.Sprintf("cell_%.2f", cellSize), func(t *testing.T) {
			index := New(cellSize)
			devices := make([]entity.DeviceLocation, 0, 3000)

			for i := range 3000 {
				var lat, lon float64
				switch i % 3 {
				case 0: // clustered around a city
					lat = 47.6 + rng.NormFloat64()*0.3
					lon = -122.3 + rng.NormFloat64()*0.3
				case 1: // around the antimeridian and poles
					lat = 88 + rng.Float64()*2
					if i%2 == 0 {
						lat = -lat
					}
					lon = 179 + rng.Float64()*2
					if lon > 180 {
						lon -= 360
					}
				default:
					lat = rng.Float64()*180 - 90
					lon = rng.Float64()*360 - 180
				}
				d := device(fmt.Sprintf("d%04d", i), lat, lon)
				devices = append(devices, d)
				index.Upsert(d)
			}

			queries := [][3]float64{
				{47.6, -122.3, 25},
				{47.6, -122.3, 120},
				{89.5, 179.9, 200},
				{-89.9, -179.9, 50},
				{0, 180, 500},
				{0, 0, 0.5},
			}
			for range 60 {
				queries = append(queries, [3]float64{
					rng.Float64()*180 - 90,
					rng.Float64()*360 - 180,
					rng.Float64() * 800,
				})
			}

			for _, q := range queries {
				want := bruteForce(devices, q[0], q[1], q[2])
				got := ids(index.QueryRadius(q[0], q[1], q[2]))
				sort.Strings(got)
				assert.Equal(t, want, got, "query %v", q)
			}
		})
	}
}

func bruteForce(devices []entity.DeviceLocation, lat, lon, radiusKm float64) []string {
	out := make([]string, 0)
	for _, d := range devices {
		if geo.DistanceKm(lat, lon, d.Latitude, d.Longitude) <= radiusKm {
			out = append(out, d.DeviceID)
		}
	}
	sort.Strings(out)

	return out
}

func TestIndex_ConcurrentWritersAndReaders(t *testing.T) {
	index := New(0.2)
	const writers = 8
	const perWriter = 200

	var wg sync.WaitGroup
	stop := make(chan struct{})

	// Readers never observe a device twice in one result.
	readerErrs := make(chan string, 16)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				seen := make(map[string]struct{})
				for _, n := range index.QueryRadius(47.6, -122.3, 100) {
					if _, dup := seen[n.Device.DeviceID]; dup {
						select {
						case readerErrs <- n.Device.DeviceID:
						default:
						}
					}
					seen[n.Device.DeviceID] = struct{}{}
				}
			}
		}()
	}

	var writersWG sync.WaitGroup
	for w := range writers {
		writersWG.Add(1)
		go func() {
			defer writersWG.Done()
			for i := range perWriter {
				id := fmt.Sprintf("w%d-%d", w, i%20)
				// Move each device back and forth across several cells.
				offset := float64(i%5) * 0.3
				index.Upsert(device(id, 47.0+offset, -122.3+offset))
			}
		}()
	}
	writersWG.Wait()
	close(stop)
	wg.Wait()
	close(readerErrs)

	for id := range readerErrs {
		t.Errorf("device %s returned twice", id)
	}

	assert.Equal(t, writers*20, index.Len())
	// Every device ends at its final position only.
	got := index.QueryRadius(47.0+4*0.3, -122.3+4*0.3, 0.01)
	assert.Len(t, got, writers*20)
}

func BenchmarkIndex_QueryRadius(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	index := New(DefaultCellSizeDeg)
	for i := range 100_000 {
		index.Upsert(device(fmt.Sprintf("d%d", i), 47.6+rng.NormFloat64()*1.5, -122.3+rng.NormFloat64()*1.5))
	}

	for b.Loop() {
		_ = index.QueryRadius(47.6, -122.3, 25)
	}
}

func BenchmarkIndex_Upsert(b *testing.B) {
	index := New(DefaultCellSizeDeg)
	i := 0
	for b.Loop() {
		index.Upsert(device(fmt.Sprintf("d%d", i%10_000), 47.6+float64(i%100)*0.01, -122.3))
		i++
	}
}
