package ta

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"WigLens/internal/domain/models"
	"WigLens/pkg/util"
)

const (
	// DefaultDays is the lookback window used when the caller passes days <= 0.
	DefaultDays = 365

	trendBias     = 0.002
	baseVol       = 0.02
	volSlope      = 0.01
	priceFloor    = 0.01
	baseVolume    = 100000.0
	volumeSpread  = 500000.0
	volumeImpulse = 10.0
)

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// Generator produces a randomized daily candle history anchored so the most
// recent close matches a known current price. One generator serves concurrent
// requests; rand.Rand is not synchronized, so draws are serialized under mu.
type Generator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	clock func() time.Time
}

// NewGenerator creates a series generator. By default it uses a time-seeded
// PRNG and the wall clock; inject both in tests for reproducible output.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithSeed makes the generator deterministic.
func WithSeed(seed int64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock overrides the time source used to place candle dates.
func WithClock(clock func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.clock = clock
	}
}

// Generate walks one calendar day at a time over the last days calendar days,
// skipping weekends, and emits one candle per trading day. The sequence is
// rescaled at the end so the final close equals currentPrice exactly.
//
// currentPrice must be positive and changePercent must be above -100, since
// the implied starting price is currentPrice / (1 + changePercent/100).
func (g *Generator) Generate(currentPrice, changePercent float64, days int) (models.History, error) {
	if currentPrice <= 0 {
		return nil, invalidInputf("current price must be positive, got %g", currentPrice)
	}
	if changePercent <= -100 {
		return nil, invalidInputf("change percent must be above -100, got %g", changePercent)
	}
	if days <= 0 {
		days = DefaultDays
	}

	price := currentPrice / (1 + changePercent/100)
	volatility := baseVol + volSlope*math.Min(math.Abs(changePercent)/100, 1)
	bias := trendBias
	if changePercent <= 0 {
		bias = -trendBias
	}

	now := g.clock()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := util.LastTradingDay(today)
	start := today.AddDate(0, 0, -days)

	history := make(models.History, 0, days)
	g.mu.Lock()
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !util.IsTradingDay(d) {
			continue
		}

		movement := bias + (g.rng.Float64()-0.5)*volatility
		swing := math.Abs(movement) * 1.5

		c := models.Candle{
			Date:   d,
			Open:   math.Max(price, priceFloor),
			Close:  math.Max(price*(1+movement), priceFloor),
			High:   math.Max(price*(1+swing), priceFloor),
			Low:    math.Max(price*(1-swing), priceFloor),
			Volume: math.Floor((baseVolume + g.rng.Float64()*volumeSpread) * (1 + math.Abs(movement)*volumeImpulse)),
		}
		history = append(history, c)
		price = c.Close
	}
	g.mu.Unlock()

	if len(history) == 0 {
		return history, nil
	}

	// Anchor the series so the newest close lands on currentPrice.
	scale := currentPrice / history[len(history)-1].Close
	for i := range history {
		history[i].Open *= scale
		history[i].High *= scale
		history[i].Low *= scale
		history[i].Close *= scale
	}

	return history, nil
}
