package performance

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	enrichRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "betbrief_enrich_runs_total",
			Help: "Enrichment runs by intent and result",
		},
		[]string{"intent", "result"},
	)

	enrichDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "betbrief_enrich_duration_seconds",
			Help:    "End-to-end enrichment latency",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 15},
		},
		[]string{"intent"},
	)

	sourceCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "betbrief_source_calls_total",
			Help: "Sports data provider calls by operation and result",
		},
		[]string{"operation", "result"},
	)

	sourceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "betbrief_source_call_duration_seconds",
			Help:    "Sports data provider call latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	facetFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "betbrief_facet_failures_total",
			Help: "Match facets dropped because their fetch failed",
		},
		[]string{"facet"},
	)

	// CacheLookups counts read-through cache results (hit, miss, error).
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "betbrief_cache_lookups_total",
			Help: "Provider response cache lookups",
		},
		[]string{"operation", "result"},
	)
)

func observeRun(intent string, found bool, d time.Duration) {
	result := "null"
	if found {
		result = "found"
	}
	enrichRuns.WithLabelValues(intent, result).Inc()
	enrichDuration.WithLabelValues(intent).Observe(d.Seconds())
}

func observeSourceCall(op string, d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	sourceCalls.WithLabelValues(op, result).Inc()
	sourceDuration.WithLabelValues(op).Observe(d.Seconds())
}
