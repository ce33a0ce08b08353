package ta

import (
	"time"

	"WigLens/internal/domain/models"
)

// Windows accepted by FilterByTimeframe.
const (
	Window1D = "1D"
	Window1W = "1W"
	Window1M = "1M"
	Window3M = "3M"
	Window1Y = "1Y"
)

// FilterByTimeframe returns the contiguous suffix of candles no older than
// the window, measured back from the current time. Unknown windows return
// the series unchanged.
func FilterByTimeframe(candles models.History, window string) models.History {
	return FilterByTimeframeAt(candles, window, time.Now())
}

// FilterByTimeframeAt is FilterByTimeframe with an explicit reference time.
func FilterByTimeframeAt(candles models.History, window string, now time.Time) models.History {
	var cutoff time.Time
	switch window {
	case Window1D:
		cutoff = now.AddDate(0, 0, -1)
	case Window1W:
		cutoff = now.AddDate(0, 0, -7)
	case Window1M:
		cutoff = now.AddDate(0, -1, 0)
	case Window3M:
		cutoff = now.AddDate(0, -3, 0)
	case Window1Y:
		cutoff = now.AddDate(-1, 0, 0)
	default:
		return candles
	}

	// Candles are ordered oldest first, so the result is a suffix.
	for i, c := range candles {
		if !c.Date.Before(cutoff) {
			return candles[i:]
		}
	}
	return models.History{}
}
