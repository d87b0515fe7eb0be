// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

// Package config provides centralized configuration for Videographus.
//
// Configuration is loaded in layers with clear precedence (ENV > file > defaults):
//  1. Defaults: built-in sensible defaults for every setting
//  2. Config File: optional YAML file (config.yaml) for persistent settings
//  3. Environment Variables: override any setting
//
// The catalog file path is deliberately a deployment-time setting and never a
// request parameter; callers query the catalog, they do not choose the file.
//
// Config is immutable after Load() and safe for concurrent read access.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Catalog CatalogConfig `koanf:"catalog"`
	Cache   CacheConfig   `koanf:"cache"`
	Stats   StatsConfig   `koanf:"stats"`
	Server  ServerConfig  `koanf:"server"`
	API     APIConfig     `koanf:"api"`
	Logging LoggingConfig `koanf:"logging"`
}

// CatalogConfig holds the flat-file catalog and scan settings.
//
// Environment Variables:
//   - CATALOG_PATH: path to the pipe-delimited video metadata file
//   - CATALOG_CHUNK_SIZE: bytes per stream read (default: 64 KiB)
//   - CATALOG_MAX_LINE_BYTES: per-line byte cap; longer lines are discarded (default: 1 MiB)
//   - CATALOG_BATCH_SIZE: lines per processing batch (default: 10000)
//   - CATALOG_SCAN_BUDGET: max lines scanned per query (default: 500000)
//   - CATALOG_MATCH_BUDGET: max matches retained per query (default: 50000)
//   - CATALOG_QUERY_TIMEOUT: wall-clock ceiling per query (default: 5s)
type CatalogConfig struct {
	// Path is the pipe-delimited catalog file. Must be set for production;
	// the file itself is only opened at query time (missing file surfaces
	// as a service-unavailable response, not a startup failure).
	Path string `koanf:"path"`

	// ChunkSize is the read size in bytes for the streaming line batcher.
	ChunkSize int `koanf:"chunk_size"`

	// MaxLineBytes caps a single catalog line. Lines over the cap are
	// discarded and counted as skipped, keeping memory bounded even for
	// newline-free input.
	MaxLineBytes int `koanf:"max_line_bytes"`

	// BatchSize is the number of complete lines yielded per batch.
	// Batches bound peak memory; cancellation lands at batch boundaries.
	BatchSize int `koanf:"batch_size"`

	// ScanBudget caps the lines examined per query. Exhausting it yields
	// an approximate result, never an error.
	ScanBudget int64 `koanf:"scan_budget"`

	// MatchBudget caps the matches retained per query before sorting.
	MatchBudget int `koanf:"match_budget"`

	// QueryTimeout is the per-query wall-clock ceiling. A query that hits
	// it returns the best-effort partial result flagged approximate.
	QueryTimeout time.Duration `koanf:"query_timeout"`
}

// CacheConfig holds query-result cache settings.
//
// Environment Variables:
//   - CACHE_TTL: entry lifetime (default: 5m)
//   - CACHE_CAPACITY: max entries before oldest-first eviction (default: 512)
//   - CACHE_SWEEP_INTERVAL: background expiry sweep cadence (default: 5m)
type CacheConfig struct {
	TTL           time.Duration `koanf:"ttl"`
	Capacity      int           `koanf:"capacity"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
}

// StatsConfig holds statistics sampler settings.
//
// Environment Variables:
//   - STATS_SAMPLE_SIZE: target sampled records (default: 2000)
//   - STATS_TTL: summary freshness window (default: 1h)
//   - STATS_EXACT_SCAN_THRESHOLD: files at or below this many bytes are
//     scanned exactly instead of sampled (default: 16 MiB)
//   - STATS_REFRESH_INTERVAL: background resample cadence (default: 1h)
//   - STATS_MIN_REFRESH_INTERVAL: floor between on-demand resamples (default: 1m)
//   - STATS_TOP_N: distinct sources/categories/performers reported (default: 25)
type StatsConfig struct {
	SampleSize         int           `koanf:"sample_size"`
	TTL                time.Duration `koanf:"ttl"`
	ExactScanThreshold int64         `koanf:"exact_scan_threshold"`
	RefreshInterval    time.Duration `koanf:"refresh_interval"`
	MinRefreshInterval time.Duration `koanf:"min_refresh_interval"`
	TopN               int           `koanf:"top_n"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST, HTTP_PORT: listen address (default: 0.0.0.0:9002)
//   - HTTP_TIMEOUT: read/write timeout (default: 30s)
//   - SHUTDOWN_TIMEOUT: graceful shutdown window (default: 10s)
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// APIConfig holds API pagination, rate limiting, and CORS settings.
//
// Environment Variables:
//   - API_DEFAULT_PAGE_SIZE (default: 20), API_MAX_PAGE_SIZE (default: 100)
//   - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
//   - CORS_ORIGINS: comma-separated allowed origins (default: *)
type APIConfig struct {
	DefaultPageSize   int           `koanf:"default_page_size"`
	MaxPageSize       int           `koanf:"max_page_size"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file/line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load loads, layers, and validates the full application configuration.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
