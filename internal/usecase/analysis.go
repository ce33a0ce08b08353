package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"WigLens/internal/domain/models"
	"WigLens/internal/marketdata"
	"WigLens/internal/ta"
	"WigLens/pkg/cache"
	"WigLens/pkg/logger"
	"WigLens/pkg/metrics"
)

// AnalysisUseCase runs the analysis pipeline: fetch or simulate a history,
// compute the indicator battery and derive a price target. Results are kept
// in a per-symbol cache so repeated chart views within the TTL reuse one
// computation. Concurrent misses for the same key may race; all computations
// for the same inputs are equivalent, so last writer wins harmlessly.
type AnalysisUseCase struct {
	source  marketdata.HistoricalSource
	cache   cache.Service
	metrics *metrics.Recorder
	log     *logger.Logger
	ttl     time.Duration
	days    int
	clock   func() time.Time
	allowed map[string]struct{}
}

// Option configures an AnalysisUseCase.
type Option func(*AnalysisUseCase)

// WithClock overrides the time source used for window filtering.
func WithClock(clock func() time.Time) Option {
	return func(uc *AnalysisUseCase) {
		uc.clock = clock
	}
}

// WithDefaultDays sets the lookback applied when a request leaves Days unset.
func WithDefaultDays(days int) Option {
	return func(uc *AnalysisUseCase) {
		if days > 0 {
			uc.days = days
		}
	}
}

// WithAllowedSymbols restricts analysis to the given symbols. An empty list
// allows everything.
func WithAllowedSymbols(symbols []string) Option {
	return func(uc *AnalysisUseCase) {
		if len(symbols) == 0 {
			uc.allowed = nil
			return
		}
		uc.allowed = make(map[string]struct{}, len(symbols))
		for _, s := range symbols {
			uc.allowed[strings.ToUpper(strings.TrimSpace(s))] = struct{}{}
		}
	}
}

func NewAnalysisUseCase(
	source marketdata.HistoricalSource,
	cacheSvc cache.Service,
	rec *metrics.Recorder,
	log *logger.Logger,
	ttl time.Duration,
	opts ...Option,
) *AnalysisUseCase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	uc := &AnalysisUseCase{
		source:  source,
		cache:   cacheSvc,
		metrics: rec,
		log:     log,
		ttl:     ttl,
		days:    ta.DefaultDays,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type AnalyzeParams struct {
	Symbol        string
	Price         float64
	ChangePercent float64
	Days          int
	Window        string
}

// Analyze returns the full analysis bundle for a symbol, get-or-compute
// against the cache. The timeframe window is applied after retrieval so one
// cached full-history analysis serves every window.
func (uc *AnalysisUseCase) Analyze(ctx context.Context, p AnalyzeParams) (*models.Analysis, error) {
	symbol := strings.ToUpper(strings.TrimSpace(p.Symbol))
	if symbol == "" {
		return nil, fmt.Errorf("%w: symbol required", ta.ErrInvalidInput)
	}
	if uc.allowed != nil {
		if _, ok := uc.allowed[symbol]; !ok {
			return nil, fmt.Errorf("%w: symbol %s not tracked", ta.ErrInvalidInput, symbol)
		}
	}
	if p.Days <= 0 {
		p.Days = uc.days
	}

	analysis, err := uc.getOrCompute(ctx, symbol, p)
	if err != nil {
		return nil, err
	}

	if p.Window != "" {
		filtered := *analysis
		filtered.Candles = ta.FilterByTimeframeAt(analysis.Candles, p.Window, uc.clock())
		// Indicator arrays are index-aligned with the candles, so the same
		// suffix is cut from every series. Levels describe the full history
		// and stay as they are.
		offset := len(analysis.Candles) - len(filtered.Candles)
		filtered.Indicators = sliceIndicators(analysis.Indicators, offset)
		return &filtered, nil
	}
	return analysis, nil
}

func sliceIndicators(set *models.IndicatorSet, offset int) *models.IndicatorSet {
	if set == nil || offset <= 0 {
		return set
	}
	cut := func(s models.Series) models.Series {
		if offset >= len(s) {
			return models.Series{}
		}
		return s[offset:]
	}
	return &models.IndicatorSet{
		SMA20:           cut(set.SMA20),
		SMA50:           cut(set.SMA50),
		EMA12:           cut(set.EMA12),
		EMA26:           cut(set.EMA26),
		MACD:            cut(set.MACD),
		Signal:          cut(set.Signal),
		Histogram:       cut(set.Histogram),
		RSI:             cut(set.RSI),
		BollingerUpper:  cut(set.BollingerUpper),
		BollingerMiddle: cut(set.BollingerMiddle),
		BollingerLower:  cut(set.BollingerLower),
		Support:         set.Support,
		Resistance:      set.Resistance,
	}
}

// Series returns only the window-filtered candles, for chart bootstrapping.
func (uc *AnalysisUseCase) Series(ctx context.Context, p AnalyzeParams) (models.History, error) {
	analysis, err := uc.Analyze(ctx, p)
	if err != nil {
		return nil, err
	}
	return analysis.Candles, nil
}

func (uc *AnalysisUseCase) getOrCompute(ctx context.Context, symbol string, p AnalyzeParams) (*models.Analysis, error) {
	key := analysisKey(symbol)

	var cached models.Analysis
	if uc.cache != nil {
		err := uc.cache.Get(ctx, key, &cached)
		if err == nil {
			uc.metrics.RecordCacheHit()
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			uc.log.Warn("cache read failed", logger.String("key", key), logger.Error(err))
		}
		uc.metrics.RecordCacheMiss()
	}

	started := time.Now()
	analysis, err := uc.compute(ctx, symbol, p)
	if err != nil {
		uc.metrics.RecordError("analysis")
		return nil, err
	}
	uc.metrics.RecordLatency("analyze", time.Since(started).Seconds())
	uc.metrics.RecordAnalysis(analysis.Source, symbol)
	uc.metrics.RecordLastPrice(symbol, analysis.Candles.LastClose())

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, analysis, uc.ttl); err != nil {
			uc.log.Warn("cache write failed", logger.String("key", key), logger.Error(err))
		}
	}

	uc.log.Info("analysis computed",
		logger.String("symbol", symbol),
		logger.String("source", analysis.Source),
		logger.Int("candles", len(analysis.Candles)),
		logger.Duration("took", time.Since(started)),
	)
	return analysis, nil
}

func (uc *AnalysisUseCase) compute(ctx context.Context, symbol string, p AnalyzeParams) (*models.Analysis, error) {
	quote := marketdata.Quote{
		Symbol:        symbol,
		Price:         p.Price,
		ChangePercent: p.ChangePercent,
	}

	candles, err := uc.source.History(ctx, quote, p.Days)
	if err != nil {
		return nil, fmt.Errorf("history for %s: %w", symbol, err)
	}

	indicators := ta.ComputeIndicators(candles)

	analysis := &models.Analysis{
		Symbol:      symbol,
		Source:      uc.source.Name(),
		GeneratedAt: uc.clock().UTC(),
		Candles:     candles,
		Indicators:  indicators,
	}

	// Short histories legitimately cannot carry a target; the analysis is
	// still useful for charting.
	target, err := ta.EstimateTarget(candles, indicators)
	if err == nil {
		analysis.Target = target
	} else if !errors.Is(err, ta.ErrInvalidInput) {
		return nil, err
	}

	return analysis, nil
}

func analysisKey(symbol string) string {
	return "analysis:" + symbol
}
