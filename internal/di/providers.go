package di

import (
	"fmt"

	"WigLens/internal/handler/api"
	"WigLens/internal/marketdata"
	"WigLens/internal/usecase"
	"WigLens/pkg/cache"
	"WigLens/pkg/config"
	xhttp "WigLens/pkg/http"
	"WigLens/pkg/logger"
	"WigLens/pkg/metrics"
	"WigLens/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideCache creates the configured cache backend: in-process memory by
// default, memory over Redis when cache.type is "layered".
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	switch cfg.Cache.Type {
	case "layered":
		redisCache, err := cache.NewRedisCache(
			cache.WithRedisAddr(cfg.Cache.Redis.Host, cfg.Cache.Redis.Port),
			cache.WithRedisAuth(cfg.Cache.Redis.Password, cfg.Cache.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return cache.NewLayeredCache(redisCache), nil
	default:
		return cache.NewMemoryCache(), nil
	}
}

// ProvideHistoricalSource creates the configured candle source.
func ProvideHistoricalSource(cfg *config.Config) marketdata.HistoricalSource {
	if cfg.Market.Source == "feed" {
		return marketdata.NewFeedSource(cfg.Market.FeedURL,
			marketdata.WithFeedClient(xhttp.NewClient(xhttp.WithTimeout(cfg.Market.FeedTimeout))),
		)
	}
	return marketdata.NewSimulatedSource()
}

// ProvideAnalysisUseCase creates the analysis use case.
func ProvideAnalysisUseCase(
	source marketdata.HistoricalSource,
	cacheSvc cache.Service,
	rec *metrics.Recorder,
	l *logger.Logger,
	cfg *config.Config,
) *usecase.AnalysisUseCase {
	return usecase.NewAnalysisUseCase(source, cacheSvc, rec, l, cfg.Cache.TTL,
		usecase.WithDefaultDays(cfg.Market.DefaultDays),
		usecase.WithAllowedSymbols(cfg.Market.Symbols),
	)
}

// ProvideAnalysisHandler creates the HTTP handler.
func ProvideAnalysisHandler(l *logger.Logger, uc *usecase.AnalysisUseCase) xhttp.Handler {
	return api.NewAnalysisHandler(l, uc)
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	l *logger.Logger,
	handler xhttp.Handler,
	cacheSvc cache.Service,
) *server.App {
	return server.New(cfg, l, handler, cacheSvc)
}
