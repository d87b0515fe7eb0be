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

// requireEngine checks engine availability and returns true if available, false if an error was sent
func (h *Handler) requireEngine(w http.ResponseWriter) bool {
	if h.engine == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_ERROR", "Catalog engine not available", nil)
		return false
	}
	return true
}

// Videos handles catalog query requests with filtering, sorting, and pagination
//
// @Summary Query the video catalog
// @Description Returns a filtered, sorted, paginated page of catalog records. Malformed numeric and boolean parameters are ignored; out-of-range page/limit values are clamped. Results carry an approximate flag when the scan stopped early on a budget or deadline.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param page query int false "Page number (values below 1 are clamped to 1)" default(1) minimum(1)
// @Param limit query int false "Results per page (clamped to the configured maximum)" default(20) minimum(1) maximum(100)
// @Param search query string false "Free-text match across title, performers, tags, and categories (case-insensitive substring)" maxLength(256)
// @Param category query string false "Category filter (case-insensitive equality)" maxLength(128)
// @Param source query string false "Origin site filter, e.g. videosite.com (case-insensitive equality)" maxLength(128)
// @Param performer query string false "Performer filter (case-insensitive membership)" maxLength(128)
// @Param minDuration query int false "Minimum duration in seconds (inclusive)"
// @Param maxDuration query int false "Maximum duration in seconds (inclusive)"
// @Param minViews query int false "Minimum view count (inclusive)"
// @Param isHD query bool false "HD flag filter (tri-state: absent means no filter)"
// @Param isVR query bool false "VR flag filter (tri-state: absent means no filter)"
// @Param sortBy query string false "Sort field" Enums(views, date, duration, rating, title) default(views)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc) default(desc)
// @Success 200 {object} models.APIResponse{data=models.QueryResult} "Page of matching videos with pagination metadata"
// @Failure 400 {object} models.APIResponse "Filter string exceeds its length cap"
// @Failure 500 {object} models.APIResponse "Catalog read failed mid-scan"
// @Failure 503 {object} models.APIResponse "Catalog file not available"
// @Router /videos [get]
func (h *Handler) Videos(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	spec := parseQuerySpec(r)

	// Length caps are the only hard rejection on this surface; everything
	// else is forgiving (ignored or clamped).
	req := VideosRequest{
		Search:    spec.Search,
		Category:  spec.Category,
		Source:    spec.Source,
		Performer: spec.Performer,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if !h.requireEngine(w) {
		return
	}

	defaultPageSize, maxPageSize := h.getPageSizeConfig()
	spec.Normalize(defaultPageSize, maxPageSize)

	start := time.Now()
	result, cached, err := h.engine.Query(r.Context(), spec)
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
		Data:     result,
		Metadata: metadata,
	})
}

// parseQuerySpec extracts the full query surface from request parameters.
//
// Parsing is lenient by contract: a malformed numeric or boolean parameter is
// treated as absent, so callers never get a 400 for "minViews=banana" — they
// get the unfiltered behavior instead. Page/limit clamping and match-key
// canonicalization happen later in QuerySpec.Normalize.
func parseQuerySpec(r *http.Request) models.QuerySpec {
	q := r.URL.Query()

	return models.QuerySpec{
		Page:        getIntParam(r, "page", 0),
		Limit:       getIntParam(r, "limit", 0),
		Search:      q.Get("search"),
		Category:    q.Get("category"),
		Source:      q.Get("source"),
		Performer:   q.Get("performer"),
		MinDuration: parseOptionalInt64(q.Get("minDuration")),
		MaxDuration: parseOptionalInt64(q.Get("maxDuration")),
		MinViews:    parseOptionalInt64(q.Get("minViews")),
		IsHD:        parseOptionalBool(q.Get("isHD")),
		IsVR:        parseOptionalBool(q.Get("isVR")),
		SortBy:      q.Get("sortBy"),
		SortOrder:   q.Get("sortOrder"),
	}
}
