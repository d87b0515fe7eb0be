// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

// Package api provides HTTP request validation structs with go-playground/validator tags.
// These structs are used to validate incoming API request parameters before processing.
//
// Only well-formed-but-out-of-domain input is rejected here. The query surface
// is deliberately forgiving about malformed numerics and booleans (they are
// ignored, never a 400), and unrecognized sort keys fall back to defaults, so
// the validated surface is the free-text match parameters: a search string
// longer than any plausible title, tag, or performer name is a caller bug, and
// rejecting it also caps the per-request predicate work an abusive client can
// demand.
//
// Example usage:
//
//	req := VideosRequest{
//	    Search:   r.URL.Query().Get("search"),
//	    Category: r.URL.Query().Get("category"),
//	}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package api

// VideosRequest represents the validated query parameters for the /videos endpoint.
//
// Fields:
//   - Search: free-text match across title/performers/tags/categories (max 256 chars)
//   - Category: category equality filter (max 128 chars)
//   - Source: origin-site equality filter (max 128 chars)
//   - Performer: performer membership filter (max 128 chars)
//
// Numeric and boolean parameters (page, limit, minDuration, maxDuration,
// minViews, isHD, isVR) are intentionally absent: malformed values are
// ignored and out-of-range page/limit are clamped during normalization.
type VideosRequest struct {
	Search    string `validate:"omitempty,max=256"`
	Category  string `validate:"omitempty,max=128"`
	Source    string `validate:"omitempty,max=128"`
	Performer string `validate:"omitempty,max=128"`
}
