// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order
// of priority. The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/videographus/config.yaml",
	"/etc/videographus/config.yml",
}

// ConfigPathEnvVar names the env var that overrides the config file search.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig is the base layer every other source overrides.
func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:         "/data/videos.csv",
			ChunkSize:    64 * 1024,
			MaxLineBytes: 1 << 20,
			BatchSize:    10000,
			ScanBudget:   500000,
			MatchBudget:  50000,
			QueryTimeout: 5 * time.Second,
		},
		Cache: CacheConfig{
			TTL:           5 * time.Minute,
			Capacity:      512,
			SweepInterval: 5 * time.Minute,
		},
		Stats: StatsConfig{
			SampleSize:         2000,
			TTL:                time.Hour,
			ExactScanThreshold: 16 << 20, // 16 MiB
			RefreshInterval:    time.Hour,
			MinRefreshInterval: time.Minute,
			TopN:               25,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            9002,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		API: APIConfig{
			DefaultPageSize:   20,
			MaxPageSize:       100,
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf assembles the effective Config from three koanf layers,
// lowest priority first: built-in defaults, an optional YAML file, then
// environment variables.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// defaults first, so every key exists
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing candidate path, preferring the
// CONFIG_PATH override, or "" when no file is present.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are keys whose env values arrive comma-separated.
var sliceConfigPaths = []string{
	"api.cors_origins",
}

// processSliceFields splits comma-separated string values into slices for
// the keys in sliceConfigPaths. Values already shaped as slices (from YAML
// or the defaults layer) pass through untouched.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		str, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := splitCSV(str)
		if len(parts) == 0 {
			continue
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// splitCSV splits on commas, trimming whitespace and dropping empty items.
func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// envTransformFunc maps flat environment variable names onto dotted koanf
// paths (CATALOG_PATH -> catalog.path, HTTP_PORT -> server.port). Unmapped
// variables return "" and are ignored.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Catalog mappings
		"catalog_path":           "catalog.path",
		"csv_path":               "catalog.path", // legacy alias
		"catalog_chunk_size":     "catalog.chunk_size",
		"catalog_max_line_bytes": "catalog.max_line_bytes",
		"catalog_batch_size":     "catalog.batch_size",
		"catalog_scan_budget":    "catalog.scan_budget",
		"catalog_match_budget":   "catalog.match_budget",
		"catalog_query_timeout":  "catalog.query_timeout",

		// Cache mappings
		"cache_ttl":            "cache.ttl",
		"cache_capacity":       "cache.capacity",
		"cache_sweep_interval": "cache.sweep_interval",

		// Statistics mappings
		"stats_sample_size":          "stats.sample_size",
		"stats_ttl":                  "stats.ttl",
		"stats_exact_scan_threshold": "stats.exact_scan_threshold",
		"stats_refresh_interval":     "stats.refresh_interval",
		"stats_min_refresh_interval": "stats.min_refresh_interval",
		"stats_top_n":                "stats.top_n",

		// HTTP server mappings
		"http_port":        "server.port",
		"http_host":        "server.host",
		"http_timeout":     "server.timeout",
		"shutdown_timeout": "server.shutdown_timeout",

		// API surface mappings
		"api_default_page_size": "api.default_page_size",
		"api_max_page_size":     "api.max_page_size",
		"rate_limit_requests":   "api.rate_limit_requests",
		"rate_limit_window":     "api.rate_limit_window",
		"disable_rate_limit":    "api.rate_limit_disabled",
		"cors_origins":          "api.cors_origins",

		// Log output mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	return ""
}
