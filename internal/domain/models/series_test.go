package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestSeriesMarshalNaNAsNull(t *testing.T) {
	s := Series{math.NaN(), 1.5, math.Inf(1), 42}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "[null,1.5,null,42]" {
		t.Fatalf("got %s", data)
	}
}

func TestSeriesUnmarshalNullAsNaN(t *testing.T) {
	var s Series
	if err := json.Unmarshal([]byte("[null,1.5,null,42]"), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(s) != 4 {
		t.Fatalf("length = %d, want 4", len(s))
	}
	if !math.IsNaN(s[0]) || !math.IsNaN(s[2]) {
		t.Fatalf("null positions not NaN: %v", s)
	}
	if s[1] != 1.5 || s[3] != 42 {
		t.Fatalf("values lost: %v", s)
	}
}

func TestIndicatorSetMarshal(t *testing.T) {
	set := IndicatorSet{
		SMA20:      Series{math.NaN(), 10},
		Support:    []float64{9.5},
		Resistance: []float64{},
	}

	data, err := json.Marshal(&set)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if string(decoded["sma20"]) != "[null,10]" {
		t.Fatalf("sma20 = %s", decoded["sma20"])
	}
	if string(decoded["supportLevels"]) != "[9.5]" {
		t.Fatalf("supportLevels = %s", decoded["supportLevels"])
	}
	if string(decoded["resistanceLevels"]) != "[]" {
		t.Fatalf("resistanceLevels = %s", decoded["resistanceLevels"])
	}
}
