// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for errors. Error messages reference the
// environment variable names so operators can fix the setting directly.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateStats(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	if c.Catalog.ChunkSize <= 0 {
		return fmt.Errorf("CATALOG_CHUNK_SIZE must be positive, got %d", c.Catalog.ChunkSize)
	}
	if c.Catalog.MaxLineBytes <= 0 {
		return fmt.Errorf("CATALOG_MAX_LINE_BYTES must be positive, got %d", c.Catalog.MaxLineBytes)
	}
	if c.Catalog.BatchSize <= 0 {
		return fmt.Errorf("CATALOG_BATCH_SIZE must be positive, got %d", c.Catalog.BatchSize)
	}
	if c.Catalog.ScanBudget <= 0 {
		return fmt.Errorf("CATALOG_SCAN_BUDGET must be positive, got %d", c.Catalog.ScanBudget)
	}
	if c.Catalog.ScanBudget < int64(c.Catalog.BatchSize) {
		return fmt.Errorf("CATALOG_SCAN_BUDGET (%d) must be at least CATALOG_BATCH_SIZE (%d)",
			c.Catalog.ScanBudget, c.Catalog.BatchSize)
	}
	if c.Catalog.MatchBudget <= 0 {
		return fmt.Errorf("CATALOG_MATCH_BUDGET must be positive, got %d", c.Catalog.MatchBudget)
	}
	if c.Catalog.QueryTimeout <= 0 {
		return fmt.Errorf("CATALOG_QUERY_TIMEOUT must be positive, got %v", c.Catalog.QueryTimeout)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %v", c.Cache.TTL)
	}
	if c.Cache.Capacity <= 0 {
		return fmt.Errorf("CACHE_CAPACITY must be positive, got %d", c.Cache.Capacity)
	}
	if c.Cache.SweepInterval <= 0 {
		return fmt.Errorf("CACHE_SWEEP_INTERVAL must be positive, got %v", c.Cache.SweepInterval)
	}
	return nil
}

func (c *Config) validateStats() error {
	if c.Stats.SampleSize <= 0 {
		return fmt.Errorf("STATS_SAMPLE_SIZE must be positive, got %d", c.Stats.SampleSize)
	}
	if c.Stats.TTL <= 0 {
		return fmt.Errorf("STATS_TTL must be positive, got %v", c.Stats.TTL)
	}
	if c.Stats.ExactScanThreshold < 0 {
		return fmt.Errorf("STATS_EXACT_SCAN_THRESHOLD must not be negative, got %d", c.Stats.ExactScanThreshold)
	}
	if c.Stats.RefreshInterval <= 0 {
		return fmt.Errorf("STATS_REFRESH_INTERVAL must be positive, got %v", c.Stats.RefreshInterval)
	}
	if c.Stats.MinRefreshInterval <= 0 {
		return fmt.Errorf("STATS_MIN_REFRESH_INTERVAL must be positive, got %v", c.Stats.MinRefreshInterval)
	}
	if c.Stats.MinRefreshInterval > c.Stats.RefreshInterval {
		return fmt.Errorf("STATS_MIN_REFRESH_INTERVAL (%v) must not exceed STATS_REFRESH_INTERVAL (%v)",
			c.Stats.MinRefreshInterval, c.Stats.RefreshInterval)
	}
	if c.Stats.TopN <= 0 {
		return fmt.Errorf("STATS_TOP_N must be positive, got %d", c.Stats.TopN)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultPageSize <= 0 {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be positive, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize <= 0 {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be positive, got %d", c.API.MaxPageSize)
	}
	if c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE (%d) must not exceed API_MAX_PAGE_SIZE (%d)",
			c.API.DefaultPageSize, c.API.MaxPageSize)
	}
	if !c.API.RateLimitDisabled {
		if c.API.RateLimitReqs <= 0 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.API.RateLimitReqs)
		}
		if c.API.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.API.RateLimitWindow)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal; got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
