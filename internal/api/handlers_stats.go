// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/videographus/internal/models"
)

// requireSampler checks sampler availability and returns true if available, false if an error was sent
func (h *Handler) requireSampler(w http.ResponseWriter) bool {
	if h.sampler == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_ERROR", "Statistics sampler not available", nil)
		return false
	}
	return true
}

// Stats handles catalog statistics requests
//
// @Summary Catalog statistics
// @Description Returns aggregate catalog statistics: video and view totals, average duration, date range, and top sources, categories and performers. Large catalogs are sampled and flagged approximate; small catalogs are scanned exactly.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.CatalogStats} "Catalog statistics snapshot"
// @Failure 500 {object} models.APIResponse "Catalog read failed mid-scan"
// @Failure 503 {object} models.APIResponse "Catalog unavailable or sampling suspended"
// @Router /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	if !h.requireSampler(w) {
		return
	}

	start := time.Now()
	stats, cached, err := h.sampler.Stats(r.Context())
	if err != nil {
		respondCatalogError(w, err)
		return
	}

	metadata := models.Metadata{
		Timestamp: time.Now(),
		Cached:    cached,
	}
	if !cached {
		metadata.QueryTimeMS = time.Since(start).Milliseconds()
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     stats,
		Metadata: metadata,
	})
}
