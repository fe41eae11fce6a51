package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upstream calls by outcome ("success", "http_error", "error")
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "janus_upstream_requests_total",
			Help: "Total number of upstream provider requests",
		},
		[]string{"league", "operation", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "janus_upstream_request_duration_seconds",
			Help:    "Duration of upstream provider requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"league", "operation"},
	)

	// Cache lookups by result ("hit", "miss", "bypass")
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "janus_cache_requests_total",
			Help: "Total number of response cache lookups",
		},
		[]string{"operation", "result"},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "janus_cache_errors_total",
			Help: "Total number of response cache encode/decode/store errors",
		},
		[]string{"backend", "kind"},
	)

	RateLimitAcquisitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "janus_ratelimit_acquisitions_total",
			Help: "Total number of rate limit slots acquired",
		},
		[]string{"delayed"},
	)

	RateLimitWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "janus_ratelimit_wait_seconds",
			Help:    "Time spent suspended waiting for a rate limit slot",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	// Envelopes returned to callers by status and error type
	Envelopes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "janus_envelopes_total",
			Help: "Total number of envelopes returned to callers",
		},
		[]string{"operation", "status", "error_type"},
	)

	UsageRecordsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "janus_usage_records_dropped_total",
			Help: "Usage records that could not be flushed",
		},
	)
)

// RecordUpstream records one upstream call
func RecordUpstream(league, operation, outcome string, d time.Duration) {
	UpstreamRequests.WithLabelValues(league, operation, outcome).Inc()
	UpstreamDuration.WithLabelValues(league, operation).Observe(d.Seconds())
}

// RecordCacheLookup records a cache hit, miss or bypass
func RecordCacheLookup(operation, result string) {
	CacheRequests.WithLabelValues(operation, result).Inc()
}

// RecordCacheError records a cache failure
func RecordCacheError(backend, kind string) {
	CacheErrors.WithLabelValues(backend, kind).Inc()
}

// RecordAcquisition records a granted rate limit slot and the time waited for it
func RecordAcquisition(waited time.Duration) {
	delayed := "false"
	if waited > 0 {
		delayed = "true"
		RateLimitWait.Observe(waited.Seconds())
	}
	RateLimitAcquisitions.WithLabelValues(delayed).Inc()
}

// RecordEnvelope records an envelope returned to a caller
func RecordEnvelope(operation, status, errorType string) {
	Envelopes.WithLabelValues(operation, status, errorType).Inc()
}
