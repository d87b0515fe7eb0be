// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package api

import (
	"github.com/tomtom215/videographus/internal/config"
)

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router with middleware configured from the API
// section of the server configuration. A nil config falls back to the secure
// defaults (no CORS origins, 100 req/min rate limit).
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	var chiMw *ChiMiddleware
	if cfg != nil {
		chiMw = NewChiMiddlewareFromConfig(
			cfg.API.CORSOrigins,
			cfg.API.RateLimitReqs,
			cfg.API.RateLimitWindow,
			cfg.API.RateLimitDisabled,
		)
	} else {
		chiMw = NewChiMiddleware(nil)
	}

	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
	}
}
