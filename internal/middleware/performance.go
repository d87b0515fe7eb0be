// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/videographus/internal/logging"
)

// slowRequestMS is the latency above which a request is logged as slow.
const slowRequestMS = 1000

// RequestMetrics is one observed API request. CacheHit reflects the
// X-Cache response header set by the handlers when a query was answered
// from the result cache.
type RequestMetrics struct {
	Path       string
	Method     string
	DurationMS int64
	StatusCode int
	Timestamp  time.Time
	CacheHit   bool
}

// EndpointStats contains aggregated statistics for an endpoint
type EndpointStats struct {
	Path         string
	RequestCount int64
	AvgDuration  float64
	P50Duration  int64
	P95Duration  int64
	P99Duration  int64
	MinDuration  int64
	MaxDuration  int64
	CacheHitRate float64
}

// PerformanceMonitor keeps a fixed-size ring of recent request samples
// and aggregates them per endpoint on demand.
type PerformanceMonitor struct {
	mu      sync.RWMutex
	samples []RequestMetrics
	next    int
	filled  bool
}

// NewPerformanceMonitor creates a monitor holding at most window samples.
func NewPerformanceMonitor(window int) *PerformanceMonitor {
	if window < 1 {
		window = 1
	}
	return &PerformanceMonitor{samples: make([]RequestMetrics, window)}
}

// RecordRequest adds a sample, overwriting the oldest once the window is full.
func (pm *PerformanceMonitor) RecordRequest(m *RequestMetrics) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.samples[pm.next] = *m
	pm.next++
	if pm.next == len(pm.samples) {
		pm.next = 0
		pm.filled = true
	}
}

// window returns the live samples oldest-first. Caller must hold mu.
func (pm *PerformanceMonitor) window() []RequestMetrics {
	if !pm.filled {
		out := make([]RequestMetrics, pm.next)
		copy(out, pm.samples[:pm.next])
		return out
	}
	out := make([]RequestMetrics, 0, len(pm.samples))
	out = append(out, pm.samples[pm.next:]...)
	out = append(out, pm.samples[:pm.next]...)
	return out
}

// GetStats aggregates the current window per endpoint, most-requested first.
func (pm *PerformanceMonitor) GetStats() []EndpointStats {
	pm.mu.RLock()
	live := pm.window()
	pm.mu.RUnlock()

	durations := make(map[string][]int64)
	hits := make(map[string]int64)
	for _, m := range live {
		key := m.Method + " " + m.Path
		durations[key] = append(durations[key], m.DurationMS)
		if m.CacheHit {
			hits[key]++
		}
	}

	stats := make([]EndpointStats, 0, len(durations))
	for endpoint, ds := range durations {
		sort.Slice(ds, func(i, j int) bool { return ds[i] < ds[j] })

		var sum int64
		for _, d := range ds {
			sum += d
		}
		n := len(ds)

		stats = append(stats, EndpointStats{
			Path:         endpoint,
			RequestCount: int64(n),
			AvgDuration:  float64(sum) / float64(n),
			P50Duration:  percentile(ds, 0.50),
			P95Duration:  percentile(ds, 0.95),
			P99Duration:  percentile(ds, 0.99),
			MinDuration:  ds[0],
			MaxDuration:  ds[n-1],
			CacheHitRate: float64(hits[endpoint]) / float64(n),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].RequestCount > stats[j].RequestCount
	})
	return stats
}

// GetRecentMetrics returns up to n of the newest samples, oldest-first.
func (pm *PerformanceMonitor) GetRecentMetrics(n int) []RequestMetrics {
	pm.mu.RLock()
	live := pm.window()
	pm.mu.RUnlock()

	if n > len(live) {
		n = len(live)
	}
	return live[len(live)-n:]
}

// Middleware samples every request passing through it.
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		elapsed := time.Since(start).Milliseconds()
		pm.RecordRequest(&RequestMetrics{
			Path:       r.URL.Path,
			Method:     r.Method,
			DurationMS: elapsed,
			StatusCode: sw.status,
			Timestamp:  time.Now(),
			CacheHit:   sw.Header().Get("X-Cache") == "HIT",
		})

		if elapsed > slowRequestMS {
			logging.Warn().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int64("duration_ms", elapsed).
				Msg("Slow request detected")
		}
	})
}

// percentile picks the nearest-rank value from an ascending slice.
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}

// statusWriter captures the status code written by downstream handlers.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
