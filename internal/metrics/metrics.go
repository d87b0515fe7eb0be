// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors for every layer of the engine: catalog scan
// throughput, decode quality (rejected lines, numeric fallbacks), query
// outcomes, cache efficiency, statistics sampling, and the API surface.
// All collectors register on the default registry at package load.

// Label values for RecordQuery.
const (
	QueryOutcomeExact       = "exact"
	QueryOutcomeApproximate = "approximate"
	QueryOutcomeError       = "error"
)

// Label values for RecordScan.
const (
	ScanTriggerQuery = "query"
	ScanTriggerStats = "stats"
)

// Label values for RecordDecodeWarnings.
const (
	DecodeWarningNumeric   = "numeric"
	DecodeWarningShortLine = "short_line"
	DecodeWarningOversized = "oversized_line"
)

var (
	// Catalog Scan Metrics
	ScanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_scan_duration_seconds",
			Help:    "Duration of catalog file scans in seconds",
			Buckets: prometheus.DefBuckets, // 0.005s .. 10s
		},
		[]string{"trigger"}, // "query", "stats"
	)

	ScanLines = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_scan_lines_total",
			Help: "Total number of catalog lines examined",
		},
		[]string{"trigger"},
	)

	ScanBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_scan_bytes_total",
			Help: "Total number of catalog bytes read",
		},
		[]string{"trigger"},
	)

	DecodeWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_decode_warnings_total",
			Help: "Total number of decode problems (rejected short lines, numeric fallbacks)",
		},
		[]string{"kind"}, // "numeric", "short_line"
	)

	// Query Metrics
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Duration of catalog queries in seconds (cache misses only)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"}, // "exact", "approximate", "error"
	)

	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "Total number of catalog queries answered by a scan",
		},
		[]string{"outcome"},
	)

	// Query Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "query_cache_hits_total",
			Help: "Total number of query cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "query_cache_misses_total",
			Help: "Total number of query cache misses",
		},
	)

	CacheCorruptions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "query_cache_corruptions_total",
			Help: "Total number of cache entries dropped after a failed type assertion",
		},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "query_cache_entries",
			Help: "Current number of cached query results",
		},
	)

	CacheEvictions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "query_cache_evictions",
			Help: "Running total of cache evictions (TTL expiry, capacity, manual)",
		},
	)

	// Statistics Sampler Metrics
	StatsRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stats_refresh_duration_seconds",
			Help:    "Duration of statistics resampling in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}, // full-file scans can take a while
		},
	)

	StatsRefreshErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_refresh_errors_total",
			Help: "Total number of failed statistics refresh attempts",
		},
		[]string{"reason"}, // "file", "read", "breaker", "throttled"
	)

	StatsLastRefresh = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stats_last_refresh_timestamp",
			Help: "Unix timestamp of the last successful statistics refresh",
		},
	)

	StatsServedStale = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stats_served_stale_total",
			Help: "Total number of statistics responses served past their TTL while a refresh ran",
		},
	)

	// Stats refresher circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// API surface
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Process-level
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordScan records the volume of one catalog scan pass.
func RecordScan(trigger string, lines, bytes int64, duration time.Duration) {
	ScanDuration.WithLabelValues(trigger).Observe(duration.Seconds())
	ScanLines.WithLabelValues(trigger).Add(float64(lines))
	ScanBytes.WithLabelValues(trigger).Add(float64(bytes))
}

// RecordDecodeWarnings adds n decode problems of the given kind.
func RecordDecodeWarnings(kind string, n int64) {
	DecodeWarnings.WithLabelValues(kind).Add(float64(n))
}

// RecordQuery records one scan-backed query and its outcome.
func RecordQuery(outcome string, duration time.Duration) {
	QueriesTotal.WithLabelValues(outcome).Inc()
	QueryDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordCacheHit records a query answered from the cache.
func RecordCacheHit() {
	CacheHits.Inc()
}

// RecordCacheMiss records a query that required a scan.
func RecordCacheMiss() {
	CacheMisses.Inc()
}

// RecordCacheCorruption records a dropped cache entry that failed its type
// assertion.
func RecordCacheCorruption() {
	CacheCorruptions.Inc()
}

// SetCacheEntries updates the cached-result count gauge.
func SetCacheEntries(entries float64) {
	CacheEntries.Set(entries)
}

// UpdateCacheGauges refreshes cache gauges from a stats snapshot.
func UpdateCacheGauges(entries, evictions float64) {
	CacheEntries.Set(entries)
	CacheEvictions.Set(evictions)
}

// RecordStatsRefresh records one statistics refresh attempt.
func RecordStatsRefresh(duration time.Duration, err error) {
	if err != nil {
		StatsRefreshErrors.WithLabelValues(refreshFailureReason(err)).Inc()
		return
	}
	StatsRefreshDuration.Observe(duration.Seconds())
	StatsLastRefresh.Set(float64(time.Now().Unix()))
}

// RecordStatsThrottled records a refresh attempt rejected by the rate
// limiter before any I/O happened.
func RecordStatsThrottled() {
	StatsRefreshErrors.WithLabelValues("throttled").Inc()
}

// RecordStatsServedStale records a stale summary served while a refresh ran.
func RecordStatsServedStale() {
	StatsServedStale.Inc()
}

// RecordAPIRequest observes one finished API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight request gauge up or down.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// refreshFailureReason buckets a refresh error by message. Sentinel
// matching would be cleaner but catalog imports this package.
func refreshFailureReason(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "catalog file not found"):
		return "file"
	case strings.Contains(msg, "circuit breaker"):
		return "breaker"
	default:
		return "read"
	}
}
