package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Series is a float64 slice whose JSON form maps non-finite values to null.
// Indicator outputs are padded with NaN for positions where the window is not
// yet full, and JSON has no representation for NaN or Inf.
type Series []float64

// MarshalJSON encodes NaN and Inf values as null.
func (s Series) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(s)*8 + 2)
	buf.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes null entries back to NaN.
func (s *Series) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Series, len(raw))
	for i, v := range raw {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *v
	}
	*s = out
	return nil
}
