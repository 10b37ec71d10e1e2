// Package metrics provides Prometheus metrics for featstream.
// Metrics are registered automatically via promauto; recording them from
// the hot parse path is a single atomic counter increment.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LinesParsed counts data lines successfully parsed into examples,
	// labeled by dataset format (dense or sparse).
	LinesParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "featstream_lines_parsed_total",
			Help: "Total data lines parsed into examples",
		},
		[]string{"format"},
	)

	// ParseErrors counts failed parse attempts, labeled by error type.
	ParseErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "featstream_parse_errors_total",
			Help: "Total parse failures",
		},
		[]string{"error_type"},
	)

	// LoadDuration observes the wall time of a full dataset load,
	// including header inference and optional cache materialization.
	LoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "featstream_load_duration_seconds",
			Help:    "Dataset load duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		},
	)

	// ExamplesCached gauges how many examples the last load materialized.
	ExamplesCached = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "featstream_examples_cached",
			Help: "Examples held in the in-memory cache",
		},
	)
)

// Timer measures elapsed time for an operation
type Timer struct {
	start time.Time
}

// NewTimer creates and starts a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Stop returns the elapsed duration
func (t *Timer) Stop() time.Duration {
	return time.Since(t.start)
}

// ObserveLoad records a completed load on the LoadDuration histogram
func (t *Timer) ObserveLoad() {
	LoadDuration.Observe(time.Since(t.start).Seconds())
}
