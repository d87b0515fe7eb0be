// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

// Package api provides HTTP handlers for the Videographus application.
//
// errors.go - Mapping from catalog errors to stable API error codes
//
// Every handler funnels engine and sampler failures through respondCatalogError
// so the same underlying condition always yields the same code and status,
// regardless of which endpoint surfaced it.
package api

import (
	"errors"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/videographus/internal/catalog"
)

// respondCatalogError translates a catalog-layer error into the stable API
// error vocabulary:
//
//   - missing catalog file     -> 503 FILE_NOT_FOUND (retryable, deploy-time issue)
//   - mid-scan read failure    -> 500 STREAM_READ_ERROR (includes failing byte offset)
//   - circuit breaker rejected -> 503 STATS_UNAVAILABLE (resampling suspended)
//   - anything else            -> 500 INTERNAL_ERROR (details logged, not exposed)
//
// Raw error text never reaches callers; respondError logs the sanitized cause.
func respondCatalogError(w http.ResponseWriter, err error) {
	var readErr *catalog.StreamReadError

	switch {
	case errors.Is(err, catalog.ErrFileNotFound):
		respondError(w, http.StatusServiceUnavailable, "FILE_NOT_FOUND",
			"Catalog file is not available", err)
	case errors.As(err, &readErr):
		respondError(w, http.StatusInternalServerError, "STREAM_READ_ERROR",
			"Catalog read failed mid-scan", err)
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		respondError(w, http.StatusServiceUnavailable, "STATS_UNAVAILABLE",
			"Statistics sampling is temporarily suspended", err)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"An unexpected error occurred", err)
	}
}
