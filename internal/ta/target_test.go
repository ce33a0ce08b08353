package ta

import (
	"errors"
	"reflect"
	"testing"

	"WigLens/internal/domain/models"
)

// zigzag builds a trending close series: a step of main every other day and
// a partial retrace of counter in between. The mix keeps RSI away from the
// saturation zones while the trend direction stays clear.
func zigzag(start, main, counter float64, n int) []float64 {
	closes := make([]float64, n)
	closes[0] = start
	for i := 1; i < n; i++ {
		if i%2 == 1 {
			closes[i] = closes[i-1] + main
		} else {
			closes[i] = closes[i-1] + counter
		}
	}
	return closes
}

func TestEstimateTargetBullish(t *testing.T) {
	closes := zigzag(100, 1.0, -0.6, 60)
	candles := candlesFromCloses(closes)
	set := ComputeIndicators(candles)

	target, err := EstimateTarget(candles, set)
	if err != nil {
		t.Fatalf("EstimateTarget: %v", err)
	}
	if target.Confidence != models.ConfidenceHigh {
		t.Fatalf("confidence = %q, want high", target.Confidence)
	}
	if target.Reasoning != "strong uptrend with room to grow" {
		t.Fatalf("reasoning = %q", target.Reasoning)
	}

	price := candles.LastClose()
	if target.Target <= price {
		t.Fatalf("bullish target %v not above price %v", target.Target, price)
	}
	if target.Target > price*1.15+1e-9 {
		t.Fatalf("bullish target %v exceeds +15%% cap", target.Target)
	}
}

func TestEstimateTargetBearish(t *testing.T) {
	closes := zigzag(200, -1.0, 0.6, 60)
	candles := candlesFromCloses(closes)
	set := ComputeIndicators(candles)

	target, err := EstimateTarget(candles, set)
	if err != nil {
		t.Fatalf("EstimateTarget: %v", err)
	}
	if target.Confidence != models.ConfidenceHigh {
		t.Fatalf("confidence = %q, want high", target.Confidence)
	}
	if target.Reasoning != "downtrend likely to continue" {
		t.Fatalf("reasoning = %q", target.Reasoning)
	}

	price := candles.LastClose()
	if target.Target >= price {
		t.Fatalf("bearish target %v not below price %v", target.Target, price)
	}
	if target.Target < price*0.85-1e-9 {
		t.Fatalf("bearish target %v breaks -15%% cap", target.Target)
	}
}

func TestEstimateTargetConsolidation(t *testing.T) {
	candles := candlesFromCloses(constantSeries(50, 60))
	set := ComputeIndicators(candles)

	target, err := EstimateTarget(candles, set)
	if err != nil {
		t.Fatalf("EstimateTarget: %v", err)
	}
	if target.Confidence != models.ConfidenceLow {
		t.Fatalf("confidence = %q, want low", target.Confidence)
	}
	assertClose(t, target.Target, 50, 1e-9)
}

func TestEstimateTargetIdempotent(t *testing.T) {
	closes := zigzag(100, 1.0, -0.6, 80)
	candles := candlesFromCloses(closes)
	set := ComputeIndicators(candles)

	first, err := EstimateTarget(candles, set)
	if err != nil {
		t.Fatalf("EstimateTarget: %v", err)
	}
	second, err := EstimateTarget(candles, set)
	if err != nil {
		t.Fatalf("EstimateTarget: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("outputs differ: %+v vs %+v", first, second)
	}
}

func TestEstimateTargetShortSeries(t *testing.T) {
	candles := candlesFromCloses(constantSeries(50, 30))
	set := ComputeIndicators(candles)

	if _, err := EstimateTarget(candles, set); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput for short series", err)
	}
}

func TestEstimateTargetBullishScenario(t *testing.T) {
	// End to end: generated rising series feeds the full pipeline.
	g := NewGenerator(WithSeed(42), WithClock(fixedClock()))
	candles, err := g.Generate(100, 10, 365)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	set := ComputeIndicators(candles)

	price := candles.LastClose()
	sma20 := set.SMA20[len(set.SMA20)-1]
	sma50 := set.SMA50[len(set.SMA50)-1]
	rsi := set.RSI[len(set.RSI)-1]

	target, err := EstimateTarget(candles, set)
	if err != nil {
		t.Fatalf("EstimateTarget: %v", err)
	}
	if price > sma20 && price > sma50 && rsi < 70 {
		if target.Confidence != models.ConfidenceHigh || target.Target <= price {
			t.Fatalf("bullish setup gave %+v", target)
		}
	}
}
