package models

import "time"

// IndicatorSet bundles every indicator computed over one close series.
// Each series is index-aligned with the candles it was computed from.
type IndicatorSet struct {
	SMA20           Series    `json:"sma20"`
	SMA50           Series    `json:"sma50"`
	EMA12           Series    `json:"ema12"`
	EMA26           Series    `json:"ema26"`
	MACD            Series    `json:"macd"`
	Signal          Series    `json:"signal"`
	Histogram       Series    `json:"histogram"`
	RSI             Series    `json:"rsi"`
	BollingerUpper  Series    `json:"bollingerUpper"`
	BollingerMiddle Series    `json:"bollingerMiddle"`
	BollingerLower  Series    `json:"bollingerLower"`
	Support         []float64 `json:"supportLevels"`
	Resistance      []float64 `json:"resistanceLevels"`
}

// Confidence grades for a price target.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// PriceTarget is a heuristic price projection with a confidence grade.
type PriceTarget struct {
	Target     float64 `json:"target"`
	Confidence string  `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Analysis is the full analysis payload for one symbol.
type Analysis struct {
	Symbol      string        `json:"symbol"`
	Source      string        `json:"source"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Candles     History       `json:"candles"`
	Indicators  *IndicatorSet `json:"indicators"`
	Target      *PriceTarget  `json:"priceTarget,omitempty"`
}
