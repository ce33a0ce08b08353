package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder exposes application metrics through Prometheus.
type Recorder struct {
	analysesTotal *prometheus.CounterVec
	cacheTotal    *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	lastPrice     *prometheus.GaugeVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wiglens_analyses_total",
				Help: "Total number of analyses computed",
			},
			[]string{"source", "symbol"},
		),
		cacheTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wiglens_cache_requests_total",
				Help: "Cache lookups partitioned by outcome",
			},
			[]string{"outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wiglens_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wiglens_last_price",
				Help: "Last analysed price for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wiglens_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordAnalysis records a computed analysis for a symbol.
func (r *Recorder) RecordAnalysis(source, symbol string) {
	if r == nil {
		return
	}
	r.analysesTotal.WithLabelValues(source, symbol).Inc()
}

// RecordCacheHit records a cache hit.
func (r *Recorder) RecordCacheHit() {
	if r == nil {
		return
	}
	r.cacheTotal.WithLabelValues("hit").Inc()
}

// RecordCacheMiss records a cache miss.
func (r *Recorder) RecordCacheMiss() {
	if r == nil {
		return
	}
	r.cacheTotal.WithLabelValues("miss").Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	if r == nil {
		return
	}
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastPrice records the last analysed price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	if r == nil {
		return
	}
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	if r == nil {
		return
	}
	r.latency.WithLabelValues(op).Observe(seconds)
}
