// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

// Package validation wraps go-playground/validator v10 behind a small
// API that turns field errors into the VALIDATION_ERROR envelope the
// HTTP layer returns.
//
// The validator is a process-wide singleton (struct reflection info is
// cached on first use), so validating a request struct costs microseconds
// after warm-up. Only built-in tags are registered; the query surface
// needs nothing custom:
//
//	max=n        string length caps on search and filter values
//	gte/lte      numeric bounds on pagination and duration filters
//	oneof=a b c  sort keys and sort directions
//
// Typical handler flow:
//
//	type videosQueryParams struct {
//	    Search string `validate:"omitempty,max=256"`
//	    SortBy string `validate:"omitempty,oneof=views date duration rating title"`
//	}
//
//	if verr := validation.ValidateStruct(&params); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// ToAPIError keeps the single-violation case terse ("Search must be at
// most 256 characters" with the offending field in details) and lists
// every field under details.fields when several violations occur, so a
// client fixing a bad request sees all problems at once.
//
// The APIError type here deliberately mirrors models.APIError instead of
// importing it; models imports nothing from this package and the HTTP
// layer copies the three fields across.
package validation
