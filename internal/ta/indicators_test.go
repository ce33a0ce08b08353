package ta

import (
	"math"
	"testing"
	"time"

	"WigLens/internal/domain/models"
)

func constantSeries(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func candlesFromCloses(closes []float64) models.History {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	h := make(models.History, len(closes))
	d := start
	for i, c := range closes {
		for !isWeekday(d) {
			d = d.AddDate(0, 0, 1)
		}
		h[i] = models.Candle{Date: d, Open: c, High: c, Low: c, Close: c, Volume: 1000}
		d = d.AddDate(0, 0, 1)
	}
	return h
}

func isWeekday(d time.Time) bool {
	return d.Weekday() != time.Saturday && d.Weekday() != time.Sunday
}

func TestSMAConstantSeries(t *testing.T) {
	closes := constantSeries(7.5, 30)
	sma := SMA(closes, 20)

	if len(sma) != len(closes) {
		t.Fatalf("length mismatch: %d vs %d", len(sma), len(closes))
	}
	for i := 0; i < 19; i++ {
		if !math.IsNaN(sma[i]) {
			t.Fatalf("sma[%d] = %v, want NaN during warm-up", i, sma[i])
		}
	}
	for i := 19; i < len(sma); i++ {
		assertClose(t, sma[i], 7.5, 1e-9)
	}
}

func TestSMAShortSeriesAllNaN(t *testing.T) {
	sma := SMA(constantSeries(10, 5), 20)
	for i, v := range sma {
		if !math.IsNaN(v) {
			t.Fatalf("sma[%d] = %v, want NaN for short input", i, v)
		}
	}
}

func TestEMASeededWithSMA(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	ema := EMA(closes, 12)

	for i := 0; i < 11; i++ {
		if !math.IsNaN(ema[i]) {
			t.Fatalf("ema[%d] = %v, want NaN during warm-up", i, ema[i])
		}
	}
	// Seed equals the SMA of the first 12 closes: mean(1..12) = 6.5.
	assertClose(t, ema[11], 6.5, 1e-9)

	// Next value follows the standard recurrence with k = 2/13.
	k := 2.0 / 13.0
	assertClose(t, ema[12], (closes[12]-6.5)*k+6.5, 1e-9)
}

func TestRSIBounds(t *testing.T) {
	g := NewGenerator(WithSeed(11), WithClock(fixedClock()))
	h, err := g.Generate(100, -8, 365)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	rsi := RSI(h.Closes(), 14)

	for i := 0; i < 14; i++ {
		if !math.IsNaN(rsi[i]) {
			t.Fatalf("rsi[%d] = %v, want NaN during warm-up", i, rsi[i])
		}
	}
	for i := 14; i < len(rsi); i++ {
		if rsi[i] < 0 || rsi[i] > 100 {
			t.Fatalf("rsi[%d] = %v out of [0, 100]", i, rsi[i])
		}
	}
}

func TestRSISaturatesOnMonotonicRise(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi := RSI(closes, 14)

	// No losing day means the relative strength caps at 100.
	for i := 14; i < len(rsi); i++ {
		if rsi[i] < 95 || rsi[i] > 100 {
			t.Fatalf("rsi[%d] = %v, want saturation near 100", i, rsi[i])
		}
	}
}

func TestMACDAlignment(t *testing.T) {
	g := NewGenerator(WithSeed(3), WithClock(fixedClock()))
	h, err := g.Generate(100, 12, 180)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	closes := h.Closes()
	macd, signal, histogram := MACD(closes)

	if len(macd) != len(closes) || len(signal) != len(closes) || len(histogram) != len(closes) {
		t.Fatalf("output lengths differ from input")
	}

	// MACD becomes valid once EMA(26) does, the signal nine valid values later.
	firstMACD := 25
	firstSignal := firstMACD + 8
	for i := 0; i < firstMACD; i++ {
		if !math.IsNaN(macd[i]) {
			t.Fatalf("macd[%d] = %v, want NaN", i, macd[i])
		}
	}
	for i := 0; i < firstSignal; i++ {
		if !math.IsNaN(signal[i]) {
			t.Fatalf("signal[%d] = %v, want NaN", i, signal[i])
		}
	}

	ema12 := EMA(closes, 12)
	ema26 := EMA(closes, 26)
	for i := firstMACD; i < len(closes); i++ {
		assertClose(t, macd[i], ema12[i]-ema26[i], 1e-9)
	}
	for i := firstSignal; i < len(closes); i++ {
		assertClose(t, histogram[i], macd[i]-signal[i], 1e-9)
	}
}

func TestBollingerOrdering(t *testing.T) {
	g := NewGenerator(WithSeed(21), WithClock(fixedClock()))
	h, err := g.Generate(80, 4, 365)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	upper, middle, lower := Bollinger(h.Closes(), 20, 2)

	for i := range upper {
		if math.IsNaN(middle[i]) {
			continue
		}
		if lower[i] > middle[i] || middle[i] > upper[i] {
			t.Fatalf("band ordering broken at %d: %v %v %v", i, lower[i], middle[i], upper[i])
		}
	}
}

func TestBollingerFlatSeries(t *testing.T) {
	closes := constantSeries(50, 40)
	upper, middle, lower := Bollinger(closes, 20, 2)

	for i := 19; i < len(closes); i++ {
		assertClose(t, upper[i], 50, 1e-9)
		assertClose(t, middle[i], 50, 1e-9)
		assertClose(t, lower[i], 50, 1e-9)
	}
}

func TestComputeIndicatorsAlignment(t *testing.T) {
	g := NewGenerator(WithSeed(33), WithClock(fixedClock()))
	h, err := g.Generate(120, 6, 365)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	set := ComputeIndicators(h)

	n := len(h)
	series := map[string]models.Series{
		"sma20":           set.SMA20,
		"sma50":           set.SMA50,
		"ema12":           set.EMA12,
		"ema26":           set.EMA26,
		"macd":            set.MACD,
		"signal":          set.Signal,
		"histogram":       set.Histogram,
		"rsi":             set.RSI,
		"bollingerUpper":  set.BollingerUpper,
		"bollingerMiddle": set.BollingerMiddle,
		"bollingerLower":  set.BollingerLower,
	}
	for name, s := range series {
		if len(s) != n {
			t.Fatalf("%s has length %d, want %d", name, len(s), n)
		}
	}
	if len(set.Support) > 3 || len(set.Resistance) > 3 {
		t.Fatalf("too many levels: %d support, %d resistance", len(set.Support), len(set.Resistance))
	}
}
