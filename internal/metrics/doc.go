// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements comprehensive application instrumentation using the Prometheus
client library, exposing metrics for monitoring performance, errors, and system health.

# Overview

The package provides metrics for:
  - Catalog scan throughput (lines and bytes examined per scan)
  - Decode quality (rejected lines, numeric fallbacks)
  - Query latency by outcome (exact, approximate, error)
  - Query cache efficiency (hits, misses, corruptions, evictions)
  - Statistics sampler health (refresh duration, errors, staleness)
  - HTTP request latency and throughput

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Catalog Metrics:
  - catalog_scan_duration_seconds: Scan duration (histogram)
    Labels: trigger (query, stats)
  - catalog_scan_lines_total: Lines examined (counter)
    Labels: trigger
  - catalog_scan_bytes_total: Bytes read (counter)
    Labels: trigger
  - catalog_decode_warnings_total: Decode problems (counter)
    Labels: kind (numeric, short_line)

Query Metrics:
  - catalog_query_duration_seconds: Scan-backed query latency (histogram)
    Labels: outcome (exact, approximate, error)
  - catalog_queries_total: Scan-backed queries (counter)
    Labels: outcome

Cache Metrics:
  - query_cache_hits_total: Queries answered from cache (counter)
  - query_cache_misses_total: Queries that required a scan (counter)
  - query_cache_corruptions_total: Dropped entries after failed assertions (counter)
  - query_cache_entries: Current cached results (gauge)
  - query_cache_evictions: Running eviction total (gauge)

Statistics Metrics:
  - stats_refresh_duration_seconds: Resampling duration (histogram)
  - stats_refresh_errors_total: Failed refreshes (counter)
    Labels: reason (file, read, breaker, throttled)
  - stats_last_refresh_timestamp: Unix time of last success (gauge)
  - stats_served_stale_total: Stale summaries served during refresh (counter)

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

# Usage Example

Recording query metrics in the engine:

	start := time.Now()
	result, err := scan(ctx, spec)
	if err != nil {
	    metrics.RecordQuery(metrics.QueryOutcomeError, time.Since(start))
	    return nil, err
	}
	outcome := metrics.QueryOutcomeExact
	if result.Approximate {
	    outcome = metrics.QueryOutcomeApproximate
	}
	metrics.RecordQuery(outcome, time.Since(start))

# Prometheus Configuration

Example prometheus.yml configuration:

	scrape_configs:
	  - job_name: 'videographus'
	    static_configs:
	      - targets: ['localhost:8080']
	    metrics_path: '/metrics'
	    scrape_interval: 15s

Example PromQL queries:

	# API request rate
	rate(api_requests_total[5m])

	# API p95 latency
	histogram_quantile(0.95, rate(api_request_duration_seconds_bucket[5m]))

	# Cache hit rate
	rate(query_cache_hits_total[5m]) / (rate(query_cache_hits_total[5m]) + rate(query_cache_misses_total[5m]))

	# Scan throughput in MiB/s
	rate(catalog_scan_bytes_total[5m]) / 1048576

	# Staleness of the statistics summary
	time() - stats_last_refresh_timestamp

# Thread Safety

All metric recording functions are thread-safe and designed for concurrent use
from multiple goroutines. The Prometheus client library handles synchronization
internally.

# Cardinality Management

To prevent high cardinality issues:

  - Endpoint labels are normalized (no query parameters)
  - Trigger, outcome, kind, and reason labels are limited to predefined constants
  - User-supplied values never become labels

# See Also

  - internal/middleware: HTTP middleware with metrics integration
  - internal/catalog: Scan and query metrics recording
  - internal/cache: Cache statistics feeding the gauges
  - https://prometheus.io/docs/practices/naming/: Metric naming conventions
  - https://prometheus.io/docs/practices/instrumentation/: Instrumentation guide
*/
package metrics
