package ta

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	}
}

func assertClose(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tol %v)", got, want, tol)
	}
}

func TestGenerateAnchorsLastClose(t *testing.T) {
	g := NewGenerator(WithSeed(42), WithClock(fixedClock()))

	cases := []struct {
		price  float64
		change float64
		days   int
	}{
		{100, 10, 30},
		{61.25, -3.4, 365},
		{1500, 0, 90},
		{2.5, 85, 730},
	}
	for _, tc := range cases {
		h, err := g.Generate(tc.price, tc.change, tc.days)
		if err != nil {
			t.Fatalf("Generate(%v, %v, %d): %v", tc.price, tc.change, tc.days, err)
		}
		if len(h) == 0 {
			t.Fatalf("Generate(%v, %v, %d): empty history", tc.price, tc.change, tc.days)
		}
		got := h.LastClose()
		if math.Abs(got-tc.price)/tc.price > 1e-6 {
			t.Fatalf("last close = %v, want %v", got, tc.price)
		}
	}
}

func TestGenerateSkipsWeekends(t *testing.T) {
	g := NewGenerator(WithSeed(1), WithClock(fixedClock()))
	h, err := g.Generate(100, 5, 365)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, c := range h {
		wd := c.Date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("candle on weekend: %s", c.Date.Format("2006-01-02"))
		}
	}
}

func TestGenerateLengthMonotonic(t *testing.T) {
	g := NewGenerator(WithSeed(7), WithClock(fixedClock()))

	var prev int
	for _, days := range []int{30, 60, 180, 365} {
		h, err := g.Generate(100, 5, days)
		if err != nil {
			t.Fatalf("Generate(days=%d): %v", days, err)
		}
		if len(h) < prev {
			t.Fatalf("length decreased: days=%d gave %d candles, previous %d", days, len(h), prev)
		}
		prev = len(h)
	}
}

func TestGenerateCandleShape(t *testing.T) {
	g := NewGenerator(WithSeed(9), WithClock(fixedClock()))
	h, err := g.Generate(250, -12, 365)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, c := range h {
		if c.Low <= 0 || c.Open <= 0 || c.Close <= 0 || c.High <= 0 {
			t.Fatalf("candle %d has non-positive price: %+v", i, c)
		}
		if c.Low > c.Open || c.Low > c.Close || c.Open > c.High || c.Close > c.High {
			t.Fatalf("candle %d violates low <= open,close <= high: %+v", i, c)
		}
		if c.Volume < 0 {
			t.Fatalf("candle %d has negative volume: %v", i, c.Volume)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a, err := NewGenerator(WithSeed(123), WithClock(fixedClock())).Generate(100, 10, 60)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := NewGenerator(WithSeed(123), WithClock(fixedClock())).Generate(100, 10, 60)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("candle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	g := NewGenerator(WithSeed(1), WithClock(fixedClock()))

	if _, err := g.Generate(0, 5, 30); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("price=0: got %v, want ErrInvalidInput", err)
	}
	if _, err := g.Generate(-10, 5, 30); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("price=-10: got %v, want ErrInvalidInput", err)
	}
	if _, err := g.Generate(100, -100, 30); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("change=-100: got %v, want ErrInvalidInput", err)
	}
}

func TestGenerateConcurrentUse(t *testing.T) {
	g := NewGenerator(WithSeed(11), WithClock(fixedClock()))

	const workers = 8
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				h, err := g.Generate(100, 5, 90)
				if err != nil {
					errs <- err
					return
				}
				if len(h) == 0 || math.Abs(h.LastClose()-100)/100 > 1e-6 {
					errs <- fmt.Errorf("bad history: %d candles, last close %v", len(h), h.LastClose())
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent Generate: %v", err)
	}
}

func TestGenerateDefaultDays(t *testing.T) {
	g := NewGenerator(WithSeed(5), WithClock(fixedClock()))
	h, err := g.Generate(100, 5, 0)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// 365 calendar days hold roughly 260 trading days.
	if len(h) < 250 || len(h) > 265 {
		t.Fatalf("default window produced %d candles", len(h))
	}
}
