// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	// Catalog defaults
	if cfg.Catalog.Path != "/data/videos.csv" {
		t.Errorf("Catalog.Path = %q, want /data/videos.csv", cfg.Catalog.Path)
	}
	if cfg.Catalog.ChunkSize != 64*1024 {
		t.Errorf("Catalog.ChunkSize = %d, want 65536", cfg.Catalog.ChunkSize)
	}
	if cfg.Catalog.MaxLineBytes != 1<<20 {
		t.Errorf("Catalog.MaxLineBytes = %d, want 1048576", cfg.Catalog.MaxLineBytes)
	}
	if cfg.Catalog.BatchSize != 10000 {
		t.Errorf("Catalog.BatchSize = %d, want 10000", cfg.Catalog.BatchSize)
	}
	if cfg.Catalog.ScanBudget != 500000 {
		t.Errorf("Catalog.ScanBudget = %d, want 500000", cfg.Catalog.ScanBudget)
	}
	if cfg.Catalog.MatchBudget != 50000 {
		t.Errorf("Catalog.MatchBudget = %d, want 50000", cfg.Catalog.MatchBudget)
	}
	if cfg.Catalog.QueryTimeout != 5*time.Second {
		t.Errorf("Catalog.QueryTimeout = %v, want 5s", cfg.Catalog.QueryTimeout)
	}

	// Cache defaults
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
	}
	if cfg.Cache.Capacity != 512 {
		t.Errorf("Cache.Capacity = %d, want 512", cfg.Cache.Capacity)
	}
	if cfg.Cache.SweepInterval != 5*time.Minute {
		t.Errorf("Cache.SweepInterval = %v, want 5m", cfg.Cache.SweepInterval)
	}

	// Stats defaults
	if cfg.Stats.SampleSize != 2000 {
		t.Errorf("Stats.SampleSize = %d, want 2000", cfg.Stats.SampleSize)
	}
	if cfg.Stats.TTL != time.Hour {
		t.Errorf("Stats.TTL = %v, want 1h", cfg.Stats.TTL)
	}
	if cfg.Stats.ExactScanThreshold != 16<<20 {
		t.Errorf("Stats.ExactScanThreshold = %d, want 16 MiB", cfg.Stats.ExactScanThreshold)
	}
	if cfg.Stats.RefreshInterval != time.Hour {
		t.Errorf("Stats.RefreshInterval = %v, want 1h", cfg.Stats.RefreshInterval)
	}
	if cfg.Stats.MinRefreshInterval != time.Minute {
		t.Errorf("Stats.MinRefreshInterval = %v, want 1m", cfg.Stats.MinRefreshInterval)
	}
	if cfg.Stats.TopN != 25 {
		t.Errorf("Stats.TopN = %d, want 25", cfg.Stats.TopN)
	}

	// Server defaults
	if cfg.Server.Port != 9002 {
		t.Errorf("Server.Port = %d, want 9002", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}

	// API defaults
	if cfg.API.DefaultPageSize != 20 {
		t.Errorf("API.DefaultPageSize = %d, want 20", cfg.API.DefaultPageSize)
	}
	if cfg.API.MaxPageSize != 100 {
		t.Errorf("API.MaxPageSize = %d, want 100", cfg.API.MaxPageSize)
	}
	if cfg.API.RateLimitReqs != 100 {
		t.Errorf("API.RateLimitReqs = %d, want 100", cfg.API.RateLimitReqs)
	}
	if cfg.API.RateLimitDisabled {
		t.Error("API.RateLimitDisabled should be false by default")
	}
	if len(cfg.API.CORSOrigins) != 1 || cfg.API.CORSOrigins[0] != "*" {
		t.Errorf("API.CORSOrigins = %v, want [*]", cfg.API.CORSOrigins)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
	if cfg.Logging.Caller {
		t.Error("Logging.Caller should be false by default")
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Catalog
		{"CATALOG_PATH", "catalog.path"},
		{"CSV_PATH", "catalog.path"},
		{"CATALOG_CHUNK_SIZE", "catalog.chunk_size"},
		{"CATALOG_BATCH_SIZE", "catalog.batch_size"},
		{"CATALOG_SCAN_BUDGET", "catalog.scan_budget"},
		{"CATALOG_MATCH_BUDGET", "catalog.match_budget"},
		{"CATALOG_QUERY_TIMEOUT", "catalog.query_timeout"},

		// Cache
		{"CACHE_TTL", "cache.ttl"},
		{"CACHE_CAPACITY", "cache.capacity"},
		{"CACHE_SWEEP_INTERVAL", "cache.sweep_interval"},

		// Statistics
		{"STATS_SAMPLE_SIZE", "stats.sample_size"},
		{"STATS_TTL", "stats.ttl"},
		{"STATS_EXACT_SCAN_THRESHOLD", "stats.exact_scan_threshold"},
		{"STATS_REFRESH_INTERVAL", "stats.refresh_interval"},
		{"STATS_MIN_REFRESH_INTERVAL", "stats.min_refresh_interval"},
		{"STATS_TOP_N", "stats.top_n"},

		// Server
		{"HTTP_PORT", "server.port"},
		{"HTTP_HOST", "server.host"},
		{"HTTP_TIMEOUT", "server.timeout"},
		{"SHUTDOWN_TIMEOUT", "server.shutdown_timeout"},

		// API
		{"API_DEFAULT_PAGE_SIZE", "api.default_page_size"},
		{"API_MAX_PAGE_SIZE", "api.max_page_size"},
		{"RATE_LIMIT_REQUESTS", "api.rate_limit_requests"},
		{"RATE_LIMIT_WINDOW", "api.rate_limit_window"},
		{"DISABLE_RATE_LIMIT", "api.rate_limit_disabled"},
		{"CORS_ORIGINS", "api.cors_origins"},

		// Logging
		{"LOG_LEVEL", "logging.level"},
		{"LOG_FORMAT", "logging.format"},
		{"LOG_CALLER", "logging.caller"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := envTransformFunc(tt.input)
			if result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	}()

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Run("no config file exists", func(t *testing.T) {
		os.Unsetenv(ConfigPathEnvVar)
		result := findConfigFile()
		if result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("test: true"), 0644); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(configPath)

		os.Unsetenv(ConfigPathEnvVar)
		result := findConfigFile()
		if result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom_config.yaml")
		if err := os.WriteFile(customPath, []byte("test: true"), 0644); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}
		defer os.Remove(customPath)

		os.Setenv(ConfigPathEnvVar, customPath)
		defer os.Unsetenv(ConfigPathEnvVar)

		result := findConfigFile()
		if result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		os.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		defer os.Unsetenv(ConfigPathEnvVar)

		result := findConfigFile()
		if result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	os.Clearenv()

	os.Setenv("CATALOG_PATH", "/srv/catalog/videos.csv")
	os.Setenv("HTTP_PORT", "9000")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("CACHE_CAPACITY", "64")
	os.Setenv("CATALOG_QUERY_TIMEOUT", "2s")
	os.Setenv("STATS_SAMPLE_SIZE", "500")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Catalog.Path != "/srv/catalog/videos.csv" {
		t.Errorf("Catalog.Path = %q, want /srv/catalog/videos.csv", cfg.Catalog.Path)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Cache.Capacity != 64 {
		t.Errorf("Cache.Capacity = %d, want 64", cfg.Cache.Capacity)
	}
	if cfg.Catalog.QueryTimeout != 2*time.Second {
		t.Errorf("Catalog.QueryTimeout = %v, want 2s", cfg.Catalog.QueryTimeout)
	}
	if cfg.Stats.SampleSize != 500 {
		t.Errorf("Stats.SampleSize = %d, want 500", cfg.Stats.SampleSize)
	}

	// Defaults still applied for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Catalog.ScanBudget != 500000 {
		t.Errorf("Catalog.ScanBudget = %d, want 500000 (default)", cfg.Catalog.ScanBudget)
	}
}

// TestLoadWithKoanfLegacyCSVPath verifies the CSV_PATH alias maps to the catalog path
func TestLoadWithKoanfLegacyCSVPath(t *testing.T) {
	os.Clearenv()
	os.Setenv("CSV_PATH", "/legacy/dump.csv")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Catalog.Path != "/legacy/dump.csv" {
		t.Errorf("Catalog.Path = %q, want /legacy/dump.csv", cfg.Catalog.Path)
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
func TestLoadWithKoanfConfigFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	configContent := `
catalog:
  path: "/mnt/catalog/videos.csv"
  scan_budget: 250000

server:
  port: 8888
  host: "127.0.0.1"

logging:
  level: "warn"
`
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	os.Clearenv()
	os.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Catalog.Path != "/mnt/catalog/videos.csv" {
		t.Errorf("Catalog.Path = %q, want /mnt/catalog/videos.csv", cfg.Catalog.Path)
	}
	if cfg.Catalog.ScanBudget != 250000 {
		t.Errorf("Catalog.ScanBudget = %d, want 250000", cfg.Catalog.ScanBudget)
	}
	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}

	// Defaults still applied for unset values
	if cfg.Stats.SampleSize != 2000 {
		t.Errorf("Stats.SampleSize = %d, want 2000 (default)", cfg.Stats.SampleSize)
	}
}

// TestLoadWithKoanfEnvOverridesFile tests that env vars override config file
func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	configContent := `
catalog:
  path: "/mnt/catalog/videos.csv"

server:
  port: 8888

logging:
  level: "warn"
`
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	os.Clearenv()
	os.Setenv(ConfigPathEnvVar, configPath)
	os.Setenv("HTTP_PORT", "9999")
	os.Setenv("LOG_LEVEL", "error")
	os.Setenv("CACHE_TTL", "30s")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	// Value from config file (not overridden by env)
	if cfg.Catalog.Path != "/mnt/catalog/videos.csv" {
		t.Errorf("Catalog.Path = %q, want /mnt/catalog/videos.csv (from file)", cfg.Catalog.Path)
	}

	// Env vars override config file
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env override)", cfg.Logging.Level)
	}

	// Env vars override defaults
	if cfg.Cache.TTL != 30*time.Second {
		t.Errorf("Cache.TTL = %v, want 30s (env override)", cfg.Cache.TTL)
	}
}

// TestProcessSliceFields verifies comma-separated env values become slices
func TestProcessSliceFields(t *testing.T) {
	os.Clearenv()
	os.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.API.CORSOrigins) != len(want) {
		t.Fatalf("API.CORSOrigins = %v, want %v", cfg.API.CORSOrigins, want)
	}
	for i, origin := range want {
		if cfg.API.CORSOrigins[i] != origin {
			t.Errorf("API.CORSOrigins[%d] = %q, want %q", i, cfg.API.CORSOrigins[i], origin)
		}
	}
}
