// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package models

import (
	"time"
)

// CatalogStats represents aggregate statistics over the catalog file, built
// by the sampler. Values are estimates extrapolated from a systematic sample
// unless Approximate is false, which means the file was small enough for an
// exact full scan.
type CatalogStats struct {
	TotalVideos     int64     `json:"totalVideos"`
	TotalSize       int64     `json:"totalSize"`
	Sources         []string  `json:"sources"`
	Categories      []string  `json:"categories"`
	Performers      []string  `json:"performers"`
	DateRange       DateRange `json:"dateRange"`
	AverageDuration float64   `json:"averageDuration"`
	TotalViews      int64     `json:"totalViews"`
	Approximate     bool      `json:"approximate"`
	SampledAt       time.Time `json:"sampledAt"`
}

// DateRange bounds the upload dates observed in the sample. Both ends are
// absent when no sampled record carried a parseable date.
type DateRange struct {
	Earliest *time.Time `json:"earliest,omitempty"`
	Latest   *time.Time `json:"latest,omitempty"`
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status          string  `json:"status"`
	Version         string  `json:"version"`
	CatalogReadable bool    `json:"catalog_readable"`
	CacheHitRate    float64 `json:"cache_hit_rate"`
	Uptime          float64 `json:"uptime_seconds"`
}
