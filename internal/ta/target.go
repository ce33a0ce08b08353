package ta

import (
	"math"

	"WigLens/internal/domain/models"
)

const (
	rsiOverbought = 70.0
	rsiOversold   = 30.0

	bullishCap      = 1.15
	bullishFallback = 1.10
	bearishCap      = 0.85
	bearishFallback = 0.90
)

// EstimateTarget derives a directional price target from the latest close,
// the latest SMA20/SMA50/RSI values and the detected levels. It is a
// deterministic function of its inputs.
//
// The rules are evaluated in order, first match wins:
//  1. price above both moving averages with RSI below 70 targets the nearest
//     resistance, capped at +15% (or +10% when no resistance exists), with
//     high confidence;
//  2. price below both with RSI above 30 targets the nearest support, capped
//     at -15% (or -10% when no support exists), with high confidence;
//  3. anything else is treated as consolidation around SMA20 with low
//     confidence.
func EstimateTarget(candles models.History, indicators *models.IndicatorSet) (*models.PriceTarget, error) {
	if indicators == nil {
		return nil, invalidInputf("indicators are required")
	}
	if len(candles) < smaSlowPeriod {
		return nil, invalidInputf("need at least %d candles, got %d", smaSlowPeriod, len(candles))
	}

	price := candles.LastClose()
	sma20 := last(indicators.SMA20)
	sma50 := last(indicators.SMA50)
	rsi := last(indicators.RSI)
	if math.IsNaN(sma20) || math.IsNaN(sma50) || math.IsNaN(rsi) {
		return nil, invalidInputf("indicator warm-up not complete for %d candles", len(candles))
	}

	switch {
	case price > sma20 && price > sma50 && rsi < rsiOverbought:
		target := price * bullishFallback
		if len(indicators.Resistance) > 0 {
			target = math.Min(indicators.Resistance[0], price*bullishCap)
		}
		return &models.PriceTarget{
			Target:     target,
			Confidence: models.ConfidenceHigh,
			Reasoning:  "strong uptrend with room to grow",
		}, nil

	case price < sma20 && price < sma50 && rsi > rsiOversold:
		target := price * bearishFallback
		if len(indicators.Support) > 0 {
			target = math.Max(indicators.Support[0], price*bearishCap)
		}
		return &models.PriceTarget{
			Target:     target,
			Confidence: models.ConfidenceHigh,
			Reasoning:  "downtrend likely to continue",
		}, nil

	default:
		return &models.PriceTarget{
			Target:     sma20,
			Confidence: models.ConfidenceLow,
			Reasoning:  "consolidation phase - unclear direction",
		}, nil
	}
}

func last(s models.Series) float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	return s[len(s)-1]
}
