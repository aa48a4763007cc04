package triangulation

import (
	"testing"
	"time"

	"ufobeep/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsensus_Empty(t *testing.T) {
	assert.Nil(t, Consensus(nil))
	assert.Nil(t, Consensus([]entity.WitnessConfirmation{}))
}

func TestConsensus_EndToEndScenario(t *testing.T) {
	w1 := witness("w1", 47.61, -122.33, ptr(90.0))
	w1.DistanceKm = ptr(0.4)
	w2 := witness("w2", 47.60, -122.34, ptr(10.0))
	w2.DistanceKm = ptr(0.8)
	w2.ConfirmedAt = baseTime.Add(3 * time.Minute)
	w3 := witness("w3", 47.605, -122.325, nil)
	w3.StillVisible = false
	w3.ConfirmedAt = baseTime.Add(90 * time.Second)

	c := Consensus([]entity.WitnessConfirmation{w1, w2, w3})

	require.NotNil(t, c)
	assert.Equal(t, 3, c.TotalWitnesses)
	assert.Equal(t, 2, c.StillVisibleCount)
	assert.InDelta(t, 66.7, c.VisibilityConsensusPercent, 0.01)
	require.NotNil(t, c.AverageDistanceKm)
	assert.InDelta(t, 0.6, *c.AverageDistanceKm, 1e-9)
	assert.InDelta(t, 3.0, c.ConfirmationTimeSpanMinutes, 1e-9)
}

func TestConsensus_NoDistances(t *testing.T) {
	c := Consensus([]entity.WitnessConfirmation{witness("a", 1, 1, nil)})

	require.NotNil(t, c)
	assert.Nil(t, c.AverageDistanceKm)
	assert.Equal(t, 100.0, c.VisibilityConsensusPercent)
	assert.Zero(t, c.ConfirmationTimeSpanMinutes)
}
