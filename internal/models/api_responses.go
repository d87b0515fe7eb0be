// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package models

import (
	"time"
)

// APIResponse is the envelope every endpoint returns. Status is either
// "success" (payload in Data) or "error" (details in Error); Metadata is
// present on both so clients always get timing and cache information.
//
//	{
//	  "status": "success",
//	  "data": {"videos": [...], "pagination": {...}, "approximate": false},
//	  "metadata": {"timestamp": "2026-08-25T12:00:00Z", "query_time_ms": 45}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries per-response observability fields. QueryTimeMS is the
// engine scan time for fresh queries and 0 for cache hits, which set
// Cached instead.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is the structured error payload. Code is stable and machine
// matchable; Message is for humans. The codes in use:
//
//	VALIDATION_ERROR    invalid input parameters
//	FILE_NOT_FOUND      catalog file missing or unreadable (degraded, retryable)
//	STREAM_READ_ERROR   catalog read failed mid-scan
//	STATS_UNAVAILABLE   statistics not computable right now
//	METHOD_NOT_ALLOWED  wrong HTTP method for the endpoint
//	INTERNAL_ERROR      unexpected failure, details withheld from callers
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
