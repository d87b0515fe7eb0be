// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/videographus/internal/middleware"
	"github.com/tomtom215/videographus/internal/models"
)

// CacheClear handles POST /api/v1/admin/cache/clear
// Drops every cached query result so the next request re-scans the catalog.
//
// @Summary Clear the query cache
// @Description Removes all cached query results. Use after replacing the catalog file so stale pages are not served for up to one TTL.
// @Tags Admin
// @Produce json
// @Success 200 {object} models.APIResponse "Cache cleared"
// @Router /admin/cache/clear [post]
func (h *Handler) CacheClear(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	cleared := 0
	if h.cache != nil {
		cleared = h.cache.Len()
	}
	h.ClearCache()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"message":         "Query cache cleared",
			"entries_cleared": cleared,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// StatsRefresh handles POST /api/v1/admin/stats/refresh
// Forces a statistics recomputation instead of waiting for the TTL to lapse.
//
// @Summary Force a statistics refresh
// @Description Recomputes catalog statistics immediately, bypassing the cached snapshot and its TTL. The endpoint sits behind the strict admin rate limit because every call costs a catalog scan.
// @Tags Admin
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.CatalogStats} "Fresh statistics snapshot"
// @Failure 500 {object} models.APIResponse "Catalog read failed mid-scan"
// @Failure 503 {object} models.APIResponse "Catalog unavailable or sampling suspended"
// @Router /admin/stats/refresh [post]
func (h *Handler) StatsRefresh(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	if !h.requireSampler(w) {
		return
	}

	start := time.Now()
	stats, err := h.sampler.Refresh(r.Context())
	if err != nil {
		respondCatalogError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   stats,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// Performance handles GET /api/v1/admin/performance
// Exposes per-endpoint latency tracking plus cache counters for operators.
//
// @Summary Endpoint performance statistics
// @Description Returns per-endpoint request counts, latency aggregates (avg/min/max/p95/p99), error rates, cache hit rates, and query cache counters.
// @Tags Admin
// @Produce json
// @Success 200 {object} models.APIResponse "Performance statistics"
// @Router /admin/performance [get]
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	endpoints := h.GetPerformanceStats()
	if endpoints == nil {
		endpoints = make([]middleware.EndpointStats, 0)
	}

	cacheStats := h.GetCacheStats()
	hitRate := 0.0
	if h.cache != nil {
		hitRate = h.cache.HitRate()
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"endpoints": endpoints,
			"cache": map[string]interface{}{
				"hits":         cacheStats.Hits,
				"misses":       cacheStats.Misses,
				"evictions":    cacheStats.Evictions,
				"total_keys":   cacheStats.TotalKeys,
				"hit_rate":     hitRate,
				"last_cleanup": cacheStats.LastCleanup,
			},
			"uptime_seconds": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
