// Package metrics holds the Prometheus instrumentation for the signal
// engine. All metrics are registered once via NewMetrics and exposed
// through the API server's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the trend-signal engine.
type Metrics struct {
	AnalysesTotal       *prometheus.CounterVec // labels: source
	InvalidSignals      prometheus.Counter
	FetchErrors         *prometheus.CounterVec // labels: source
	AnalysisDur         prometheus.Histogram
	LLMRequestsTotal    *prometheus.CounterVec // labels: provider, outcome
	LLMRequestDur       prometheus.Histogram
	HTTPRequestDur      *prometheus.HistogramVec // labels: method, path, status
	ScheduledScansTotal prometheus.Counter
}

// NewMetrics registers all metrics on the default registry, which is
// what the /metrics endpoint serves.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith registers all metrics on the given registerer. Tests
// use a fresh registry to avoid duplicate registration.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trendsentinel_analyses_total",
			Help: "Total trend analyses performed (by data source)",
		}, []string{"source"}),
		InvalidSignals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trendsentinel_invalid_signals_total",
			Help: "Analyses that produced an invalid signal record",
		}),
		FetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trendsentinel_fetch_errors_total",
			Help: "Market data fetch failures (by data source)",
		}, []string{"source"}),
		AnalysisDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "trendsentinel_analysis_duration_seconds",
			Help:    "Full fetch + enrich + score latency per symbol",
			Buckets: prometheus.DefBuckets,
		}),
		LLMRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trendsentinel_llm_requests_total",
			Help: "LLM report requests (by provider and outcome)",
		}, []string{"provider", "outcome"}),
		LLMRequestDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "trendsentinel_llm_request_duration_seconds",
			Help:    "LLM completion latency",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}),
		HTTPRequestDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trendsentinel_http_request_duration_seconds",
			Help:    "HTTP handler latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		ScheduledScansTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trendsentinel_scheduled_scans_total",
			Help: "Completed scheduled watchlist scans",
		}),
	}

	reg.MustRegister(
		m.AnalysesTotal,
		m.InvalidSignals,
		m.FetchErrors,
		m.AnalysisDur,
		m.LLMRequestsTotal,
		m.LLMRequestDur,
		m.HTTPRequestDur,
		m.ScheduledScansTotal,
	)

	return m
}
