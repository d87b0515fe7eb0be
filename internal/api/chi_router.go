// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/videographus/internal/middleware"
)

// chiMiddleware lifts http.HandlerFunc-shaped middleware into the
// func(http.Handler) http.Handler form r.Use expects.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi builds the full route tree. Route groups carry their own rate
// limits and middleware; only request tagging, IP resolution, panic
// recovery, and CORS are global.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	// global so OPTIONS preflight reaches it on every path
	r.Use(router.chiMiddleware.CORS())

	// Probes: permissive limit (1000/min) because monitors poll constantly.
	// No compression or performance tracking here; probe responses are tiny
	// and tracking them would drown out the query endpoints.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/", router.handler.Health)
		r.Get("/ready", router.handler.HealthReady)
	})

	// The main catalog surface: filtered pages and sampled statistics.
	// Responses can run to hundreds of KB of JSON, so compression applies here.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		if router.handler.perfMon != nil {
			r.Use(router.handler.perfMon.Middleware)
		}
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/videos", router.handler.Videos)
		r.Get("/stats", router.handler.Stats)
	})

	// Operator surface, strictly limited (10/min): cache clears and forced
	// refreshes each cost a full catalog scan downstream.
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAdmin())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Post("/cache/clear", router.handler.CacheClear)
		r.Post("/stats/refresh", router.handler.StatsRefresh)
		r.Get("/performance", router.handler.Performance)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
