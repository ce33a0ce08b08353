// Package marketdata provides candle history sources. A source either
// simulates a history from the current quote or fetches one from an external
// daily CSV feed; callers must not depend on which variant is behind the
// interface.
package marketdata

import (
	"context"

	"WigLens/internal/domain/models"
)

// Quote is the anchor for a history request: the instrument symbol, its
// current price and the percentage change the history should explain.
type Quote struct {
	Symbol        string
	Price         float64
	ChangePercent float64
}

// HistoricalSource produces a daily candle history for a quote, oldest candle
// first, trading days only, covering roughly the last days calendar days.
type HistoricalSource interface {
	History(ctx context.Context, q Quote, days int) (models.History, error)
	Name() string
}
