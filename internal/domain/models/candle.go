package models

import "time"

// Candle represents a single OHLCV record in a daily price history.
type Candle struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// History is an ordered list of daily candles, oldest first.
type History []Candle

// Closes extracts the close series from a history.
func (h History) Closes() []float64 {
	out := make([]float64, len(h))
	for i, c := range h {
		out[i] = c.Close
	}
	return out
}

// LastClose returns the close of the newest candle, or 0 for an empty history.
func (h History) LastClose() float64 {
	if len(h) == 0 {
		return 0
	}
	return h[len(h)-1].Close
}
