package ta

import (
	"math"
	"sort"
)

const (
	levelNeighbors = 2
	levelMinGap    = 0.02
	maxLevels      = 3
)

// Levels detects support and resistance levels from strict local extrema of
// the close series. A point is an extremum only if it is strictly below (or
// above) its two neighbors on each side. Levels of the same kind closer than
// 2% to an already accepted one are dropped. Support is sorted descending,
// resistance ascending, each truncated to at most 3 entries.
func Levels(closes []float64) (support, resistance []float64) {
	support = []float64{}
	resistance = []float64{}

	for i := levelNeighbors; i < len(closes)-levelNeighbors; i++ {
		v := closes[i]
		isMin, isMax := true, true
		for d := 1; d <= levelNeighbors; d++ {
			if closes[i-d] <= v || closes[i+d] <= v {
				isMin = false
			}
			if closes[i-d] >= v || closes[i+d] >= v {
				isMax = false
			}
		}
		if isMin && !nearExisting(support, v) {
			support = append(support, v)
		}
		if isMax && !nearExisting(resistance, v) {
			resistance = append(resistance, v)
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(support)))
	sort.Float64s(resistance)

	if len(support) > maxLevels {
		support = support[:maxLevels]
	}
	if len(resistance) > maxLevels {
		resistance = resistance[:maxLevels]
	}
	return support, resistance
}

func nearExisting(levels []float64, v float64) bool {
	for _, l := range levels {
		if math.Abs(v-l)/l <= levelMinGap {
			return true
		}
	}
	return false
}
