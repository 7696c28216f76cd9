// Package metrics provides Prometheus metrics for newsdeck.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "newsdeck"

var (
	// SourceFetchTotal counts per-source feed fetches by outcome.
	SourceFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_fetch_total",
			Help:      "Feed source fetches by outcome",
		},
		[]string{"source", "status"},
	)

	// AggregationDuration measures one aggregation cycle.
	AggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregation_duration_seconds",
			Help:      "Duration of aggregation cycles in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// AggregatedItems observes the size of published result sets.
	AggregatedItems = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "aggregated_items",
			Help:      "Items per published aggregation result",
			Buckets:   []float64{0, 5, 10, 25, 50, 100, 250, 500},
		},
		[]string{"kind"},
	)

	// CacheLookups counts TTL cache hits and misses.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by cache and result",
		},
		[]string{"cache", "result"},
	)

	// MirrorFetchTotal counts OSINT mirror attempts.
	MirrorFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "osint_mirror_fetch_total",
			Help:      "OSINT mirror fetches by host, tier and outcome",
		},
		[]string{"host", "tier", "status"},
	)

	// OsintFallbackTotal counts refreshes served from the mock dataset.
	OsintFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "osint_mock_fallback_total",
			Help:      "OSINT refreshes that fell back to mock data",
		},
	)

	// ExtractionTotal counts reader extractions by outcome.
	ExtractionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "article_extraction_total",
			Help:      "Reader extractions by outcome",
		},
		[]string{"status"},
	)

	// ProxyRequestsTotal counts fetch proxy calls by outcome.
	ProxyRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proxy_requests_total",
			Help:      "Fetch proxy requests by outcome",
		},
		[]string{"status"},
	)

	// JobRunsTotal counts background job executions.
	JobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Background job runs by outcome",
		},
		[]string{"job", "status"},
	)
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusEmpty   = "empty"
	StatusSkipped = "skipped"

	ResultHit  = "hit"
	ResultMiss = "miss"
)

// CacheResult returns the label for a cache lookup.
func CacheResult(hit bool) string {
	if hit {
		return ResultHit
	}
	return ResultMiss
}
