// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

/*
Package api provides the HTTP REST API layer for Videographus.

This package exposes the catalog query engine over HTTP: filtered and paginated
catalog pages, sampled statistics, health probes, and a small admin surface for
cache and statistics control. It is the only interface to the engine; nothing
else in the process accepts requests.

Key Components:

  - Router: HTTP route configuration and middleware stack integration
  - Handler: Request handlers for all API endpoints
  - Response formatting: Standardized JSON responses with metadata
  - Error handling: Consistent error responses with stable error codes
  - Rate limiting: Per-group IP rate limits via go-chi/httprate
  - CORS: Cross-Origin Resource Sharing for frontend compatibility

API Categories:

1. Query Endpoints (/api/v1/):
  - Catalog queries with filtering, sorting, and pagination (videos)
  - Sampled catalog statistics (stats)

2. Health Endpoints (/api/v1/health/):
  - Health summary with catalog readability and cache hit rate (health)
  - Readiness probe returning 503 when the catalog is unreadable (health/ready)

3. Admin Endpoints (/api/v1/admin/):
  - Query cache invalidation (cache/clear)
  - Forced statistics refresh (stats/refresh)
  - Per-endpoint latency and cache counters (performance)

4. Observability:
  - Prometheus metrics (/metrics)
  - Swagger UI and OpenAPI document (/swagger/)

Usage Example:

	import (
	    "github.com/tomtom215/videographus/internal/api"
	    "github.com/tomtom215/videographus/internal/cache"
	    "github.com/tomtom215/videographus/internal/catalog"
	)

	// Create dependencies
	queryCache := cache.New(cfg.Cache.TTL, cfg.Cache.Capacity)
	engine := catalog.NewEngine(cfg.Catalog, queryCache)
	sampler := catalog.NewSampler(cfg.Catalog, cfg.Stats)

	// Create handler and router
	handler := api.NewHandler(engine, sampler, queryCache, cfg)
	router := api.NewRouter(handler, cfg)

	// Setup routes and start server
	http.ListenAndServe(":8080", router.SetupChi())

Request Leniency:

Query parameters on the catalog surface are forgiving by contract. Malformed
numeric and boolean values are ignored rather than rejected, out-of-range
page/limit values are clamped, and unrecognized sort fields fall back to the
default sort. The only 400 on this surface is a filter string exceeding its
length cap. This keeps dashboards and hand-typed curl commands working.

Performance Characteristics:

  - Caching: TTL cache keyed by the normalized query, X-Cache HIT/MISS header
  - Cached responses report queryTimeMs of 0 and cached=true in metadata
  - Compression: Gzip middleware on the query endpoints
  - Bounded memory: responses never materialize the catalog, only one page

Thread Safety:

All handlers are thread-safe and designed for concurrent request handling.
Shared resources (engine, sampler, cache) are protected by their respective
synchronization primitives.

See Also:

  - internal/catalog: Streaming scan engine and statistics sampler
  - internal/cache: TTL query cache
  - internal/models: Request/response data structures
  - internal/middleware: HTTP middleware components
*/
package api
