// Package ta implements the time-series technical analysis engine: synthetic
// candle generation, the indicator battery (SMA, EMA, MACD, RSI, Bollinger
// Bands, support/resistance levels), price target estimation and timeframe
// filtering. The indicator, level, target and filter functions are stateless
// pure computations over their inputs; the Generator carries PRNG state but
// synchronizes it internally. Everything here is safe for concurrent use.
package ta

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks inputs the engine cannot compute on, such as a
// non-positive price or a -100% change. Callers must check with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

func invalidInputf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
