package ta

import (
	"math"

	"WigLens/internal/domain/models"
)

// Standard periods for the indicator battery.
const (
	smaFastPeriod   = 20
	smaSlowPeriod   = 50
	emaFastPeriod   = 12
	emaSlowPeriod   = 26
	signalPeriod    = 9
	rsiPeriod       = 14
	bollingerPeriod = 20
	bollingerWidth  = 2.0
)

func nanSeries(n int) models.Series {
	out := make(models.Series, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// SMA computes the simple moving average. Positions before the first full
// window hold NaN; a series shorter than the period is all NaN.
func SMA(closes []float64, period int) models.Series {
	out := nanSeries(len(closes))
	if period < 1 || len(closes) < period {
		return out
	}

	var sum float64
	for i, v := range closes {
		sum += v
		if i >= period {
			sum -= closes[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out
}

// EMA computes the exponential moving average, seeded with the SMA of the
// first period closes and smoothed with multiplier 2/(period+1).
func EMA(closes []float64, period int) models.Series {
	out := nanSeries(len(closes))
	if period < 1 || len(closes) < period {
		return out
	}

	var seed float64
	for _, v := range closes[:period] {
		seed += v
	}
	seed /= float64(period)
	out[period-1] = seed

	k := 2.0 / float64(period+1)
	prev := seed
	for i := period; i < len(closes); i++ {
		prev = (closes[i]-prev)*k + prev
		out[i] = prev
	}
	return out
}

// MACD computes the MACD line EMA(12)-EMA(26), its EMA(9) signal line and
// the histogram. The signal EMA runs over the valid MACD values only and is
// realigned to the input length with NaN padding.
func MACD(closes []float64) (macd, signal, histogram models.Series) {
	n := len(closes)
	emaFast := EMA(closes, emaFastPeriod)
	emaSlow := EMA(closes, emaSlowPeriod)

	macd = nanSeries(n)
	firstValid := -1
	for i := 0; i < n; i++ {
		if math.IsNaN(emaFast[i]) || math.IsNaN(emaSlow[i]) {
			continue
		}
		macd[i] = emaFast[i] - emaSlow[i]
		if firstValid < 0 {
			firstValid = i
		}
	}

	signal = nanSeries(n)
	histogram = nanSeries(n)
	if firstValid < 0 {
		return macd, signal, histogram
	}

	compactSignal := EMA(macd[firstValid:], signalPeriod)
	for i, v := range compactSignal {
		signal[firstValid+i] = v
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(macd[i]) || math.IsNaN(signal[i]) {
			continue
		}
		histogram[i] = macd[i] - signal[i]
	}
	return macd, signal, histogram
}

// RSI computes the Relative Strength Index with Wilder smoothing. The first
// period positions hold NaN. When the average loss is zero the relative
// strength is capped at 100, saturating the oscillator near 100.
func RSI(closes []float64, period int) models.Series {
	out := nanSeries(len(closes))
	if period < 1 || len(closes) <= period {
		return out
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss -= delta
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiValue(avgGain, avgLoss)

	p := float64(period)
	for i := period + 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	rs := 100.0
	if avgLoss != 0 {
		rs = avgGain / avgLoss
	}
	return 100 - 100/(1+rs)
}

// Bollinger computes the Bollinger Bands: middle = SMA(period), upper and
// lower = middle +/- width population standard deviations of the same window.
func Bollinger(closes []float64, period int, width float64) (upper, middle, lower models.Series) {
	n := len(closes)
	middle = SMA(closes, period)
	upper = nanSeries(n)
	lower = nanSeries(n)
	if period < 1 || n < period {
		return upper, middle, lower
	}

	for i := period - 1; i < n; i++ {
		mean := middle[i]
		var variance float64
		for j := i - period + 1; j <= i; j++ {
			d := closes[j] - mean
			variance += d * d
		}
		sd := math.Sqrt(variance / float64(period))
		upper[i] = mean + width*sd
		lower[i] = mean - width*sd
	}
	return upper, middle, lower
}

// ComputeIndicators runs the full indicator battery over a candle history.
// Every output series has the same length as the input and is index-aligned
// with it; NaN marks positions where a window is not yet full.
func ComputeIndicators(candles models.History) *models.IndicatorSet {
	closes := candles.Closes()

	macd, signal, histogram := MACD(closes)
	upper, middle, lower := Bollinger(closes, bollingerPeriod, bollingerWidth)
	support, resistance := Levels(closes)

	return &models.IndicatorSet{
		SMA20:           SMA(closes, smaFastPeriod),
		SMA50:           SMA(closes, smaSlowPeriod),
		EMA12:           EMA(closes, emaFastPeriod),
		EMA26:           EMA(closes, emaSlowPeriod),
		MACD:            macd,
		Signal:          signal,
		Histogram:       histogram,
		RSI:             RSI(closes, rsiPeriod),
		BollingerUpper:  upper,
		BollingerMiddle: middle,
		BollingerLower:  lower,
		Support:         support,
		Resistance:      resistance,
	}
}
