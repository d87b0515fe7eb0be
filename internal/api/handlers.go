// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package api

import (
	"time"

	"github.com/tomtom215/videographus/internal/cache"
	"github.com/tomtom215/videographus/internal/catalog"
	"github.com/tomtom215/videographus/internal/config"
	"github.com/tomtom215/videographus/internal/logging"
	"github.com/tomtom215/videographus/internal/middleware"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, utility methods (this file)
//   - handlers_helpers.go: Shared helper functions (respond/parse/validate)
//   - handlers_videos.go: Catalog query endpoint
//   - handlers_stats.go: Statistics endpoint
//   - handlers_health.go: Health/readiness endpoints
//   - handlers_admin.go: Admin endpoints (cache clear, stats refresh, performance)
//
// All dependencies are injected by cmd/server; the package holds no
// singletons, so tests construct handlers over temp catalog files freely.
type Handler struct {
	engine    *catalog.Engine
	sampler   *catalog.Sampler
	cache     *cache.Cache
	config    *config.Config
	perfMon   *middleware.PerformanceMonitor
	startTime time.Time
}

// NewHandler creates a new API handler with all required dependencies.
//
// Dependencies:
//   - engine: catalog query engine (scan + filter + sort + paginate)
//   - sampler: statistics sampler with stale-while-revalidate semantics
//   - c: the query-result cache shared with the engine, exposed here for
//     hit-rate reporting and admin clearing
//   - cfg: application configuration
//
// The performance monitor is created here (sliding window of the last 1000
// requests) rather than injected; it has no configuration surface beyond
// its window size.
func NewHandler(engine *catalog.Engine, sampler *catalog.Sampler, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		engine:    engine,
		sampler:   sampler,
		cache:     c,
		config:    cfg,
		perfMon:   middleware.NewPerformanceMonitor(1000),
		startTime: time.Now(),
	}
}

// getPageSizeConfig returns page size configuration with safe defaults
func (h *Handler) getPageSizeConfig() (defaultPageSize, maxPageSize int) {
	defaultPageSize, maxPageSize = 20, 100
	if h.config != nil {
		defaultPageSize = h.config.API.DefaultPageSize
		maxPageSize = h.config.API.MaxPageSize
	}
	return defaultPageSize, maxPageSize
}

// ClearCache removes all cached query results.
// Called by the admin cache-clear endpoint so a replaced catalog file takes
// effect before entry TTLs lapse.
func (h *Handler) ClearCache() {
	if h.engine != nil {
		h.engine.ClearCache()
		logging.Info().Msg("Query cache cleared")
	}
}

// GetCacheStats returns cache performance statistics
func (h *Handler) GetCacheStats() cache.Stats {
	if h.cache != nil {
		return h.cache.GetStats()
	}
	return cache.Stats{}
}

// GetPerformanceStats returns performance monitoring statistics
func (h *Handler) GetPerformanceStats() []middleware.EndpointStats {
	if h.perfMon != nil {
		return h.perfMon.GetStats()
	}
	return nil
}
