// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

// Package middleware holds the handler wrappers applied to every API
// route. The router composes them outermost-first:
//
//	middleware.RequestID(            // tag request, seed logging context
//	    middleware.PrometheusMetrics(  // counters, histograms, active gauge
//	        middleware.Compression(      // gzip when the client accepts it
//	            handler,
//	        ),
//	    ),
//	)
//
// plus a PerformanceMonitor installed router-wide, which keeps a ring of
// recent request samples and serves the per-endpoint latency aggregates
// behind /api/v1/admin/performance.
//
// RequestID honors an upstream X-Request-ID when present and otherwise
// mints a UUID; handlers read it back with GetRequestID or implicitly
// through logging.Ctx. Compression is worthwhile here because video list
// payloads are repetitive JSON that shrinks by 80-90%. All wrappers are
// safe for concurrent use.
package middleware
