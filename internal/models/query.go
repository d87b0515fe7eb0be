// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package models

import (
	"strings"
)

// Sort field values accepted by QuerySpec.SortBy.
const (
	SortByViews    = "views"
	SortByDate     = "date"
	SortByDuration = "duration"
	SortByRating   = "rating"
	SortByTitle    = "title"
)

// Sort order values accepted by QuerySpec.SortOrder.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// QuerySpec describes one catalog query: filters, sort, and page window.
// The API layer builds it from request parameters and calls Normalize before
// handing it to the engine, so the engine only ever sees canonical specs.
//
// The JSON tags double as the cache-key canonical form: a normalized spec is
// marshaled with fixed field order, so two requests that differ only in URL
// parameter order (or match-key casing) share one cache entry.
//
// Optional filters use pointers (or the empty string) to distinguish
// "unset" from zero values; IsHD/IsVR are tri-state for that reason.
type QuerySpec struct {
	Page        int    `json:"page"`
	Limit       int    `json:"limit"`
	Search      string `json:"search,omitempty"`
	Category    string `json:"category,omitempty"`
	Source      string `json:"source,omitempty"`
	Performer   string `json:"performer,omitempty"`
	MinDuration *int64 `json:"minDuration,omitempty"`
	MaxDuration *int64 `json:"maxDuration,omitempty"`
	MinViews    *int64 `json:"minViews,omitempty"`
	IsHD        *bool  `json:"isHD,omitempty"`
	IsVR        *bool  `json:"isVR,omitempty"`
	SortBy      string `json:"sortBy"`
	SortOrder   string `json:"sortOrder"`
}

// Normalize clamps the page window and canonicalizes match keys in place.
//
// Rules:
//   - Page < 1 is clamped to 1
//   - Limit < 1 falls back to defaultLimit, Limit > maxLimit is clamped
//   - Search/Category/Source/Performer are trimmed and lowercased (matching
//     is case-insensitive, so the cache key should be too)
//   - unrecognized SortBy falls back to views, unrecognized SortOrder to desc
func (q *QuerySpec) Normalize(defaultLimit, maxLimit int) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}

	q.Search = strings.ToLower(strings.TrimSpace(q.Search))
	q.Category = strings.ToLower(strings.TrimSpace(q.Category))
	q.Source = strings.ToLower(strings.TrimSpace(q.Source))
	q.Performer = strings.ToLower(strings.TrimSpace(q.Performer))

	switch q.SortBy {
	case SortByViews, SortByDate, SortByDuration, SortByRating, SortByTitle:
	default:
		q.SortBy = SortByViews
	}

	switch q.SortOrder {
	case SortOrderAsc, SortOrderDesc:
	default:
		q.SortOrder = SortOrderDesc
	}
}

// HasFilters reports whether any filter dimension is set. Unfiltered queries
// still pay the scan, but the engine logs them differently since they always
// exhaust the scan budget on large files.
func (q *QuerySpec) HasFilters() bool {
	return q.Search != "" || q.Category != "" || q.Source != "" || q.Performer != "" ||
		q.MinDuration != nil || q.MaxDuration != nil || q.MinViews != nil ||
		q.IsHD != nil || q.IsVR != nil
}

// Pagination describes the page window of a QueryResult.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
	HasNext      bool  `json:"hasNext"`
	HasPrevious  bool  `json:"hasPrevious"`
}

// NewPagination computes pagination metadata for a page window over total
// matched records. TotalPages is a ceiling division; a page beyond the last
// yields HasNext=false rather than an error.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalRecords: total,
		HasNext:      page < totalPages,
		HasPrevious:  page > 1 && total > 0,
	}
}

// ScanDiagnostics carries per-query scan observations for logging and
// metrics. It is never serialized to API callers.
type ScanDiagnostics struct {
	LinesScanned    int64 `json:"-"`
	LinesSkipped    int64 `json:"-"`
	NumericWarnings int64 `json:"-"`
	BytesRead       int64 `json:"-"`
}

// QueryResult is the engine's answer to one QuerySpec: the page of matched
// videos plus pagination metadata. Approximate is true whenever the scan
// stopped early (scan budget, match budget, or query deadline), meaning
// TotalRecords is a lower bound rather than an exact count.
type QueryResult struct {
	Videos      []Video         `json:"videos"`
	Pagination  Pagination      `json:"pagination"`
	Approximate bool            `json:"approximate"`
	Diagnostics ScanDiagnostics `json:"-"`
}
