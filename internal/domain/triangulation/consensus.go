package triangulation

import (
	"math"

	"ufobeep/internal/domain/entity"
)

// Consensus summarises visibility, distance and timing across witnesses.
// It returns nil for an empty set.
func Consensus(witnesses []entity.WitnessConfirmation) *entity.Consensus {
	if len(witnesses) == 0 {
		return nil
	}

	c := &entity.Consensus{TotalWitnesses: len(witnesses)}

	var distanceSum float64
	var distanceCount int
	first, last := witnesses[0].ConfirmedAt, witnesses[0].ConfirmedAt
	for _, w := range witnesses {
		if w.StillVisible {
			c.StillVisibleCount++
		}
		if w.DistanceKm != nil {
			distanceSum += *w.DistanceKm
			distanceCount++
		}
		if w.ConfirmedAt.Before(first) {
			first = w.ConfirmedAt
		}
		if w.ConfirmedAt.After(last) {
			last = w.ConfirmedAt
		}
	}

	c.VisibilityConsensusPercent = round1(100 * float64(c.StillVisibleCount) / float64(c.TotalWitnesses))
	if distanceCount > 0 {
		avg := round1(distanceSum / float64(distanceCount))
		c.AverageDistanceKm = &avg
	}
	c.ConfirmationTimeSpanMinutes = round1(last.Sub(first).Minutes())

	return c
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
