// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

// Package main is the entry point for the Videographus server application.
//
// Videographus is a self-hosted query engine for large pipe-delimited video
// catalog files. It streams the catalog in bounded-memory batches to answer
// filtered, sorted, paginated queries, keeps sampled catalog statistics warm
// in the background, and serves everything over a small REST API.
//
// # Startup Order
//
// Configuration (Koanf v2) comes up first so logging (zerolog) can honor
// LOG_LEVEL and LOG_FORMAT. Then the query cache, the streaming catalog
// engine, and the statistics sampler are wired into the Chi-based HTTP
// layer, and finally a suture v4 supervisor tree takes ownership of the
// stats refresher and the server itself.
//
// The catalog file itself is NOT opened at startup: it is streamed per
// request, so a missing file degrades the service (503 responses, degraded
// health) instead of preventing boot.
//
// # Configuration
//
// Settings merge from three layers, lowest priority first: built-in
// defaults, an optional config.yaml, then environment variables (see
// .env.example).
//
// Core variables:
//   - CATALOG_PATH: pipe-delimited catalog file to serve
//   - HTTP_PORT: listen port (default: 9002)
//   - CACHE_TTL, CACHE_CAPACITY: query cache tuning
//   - STATS_SAMPLE_SIZE, STATS_REFRESH_INTERVAL: statistics tuning
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger a graceful stop: the listener closes,
// in-flight requests get SHUTDOWN_TIMEOUT (default 10s) to finish, and
// the statistics refresher and cache sweeper wind down afterwards.
//
// # Running
//
// Development:
//
//	export CATALOG_PATH=./videos.csv
//	export LOG_FORMAT=console
//	go run ./cmd/server
//
// Production:
//
//	export CATALOG_PATH=/data/videos.csv
//	export CACHE_TTL=5m
//	export STATS_REFRESH_INTERVAL=15m
//	./videographus
//
// Docker:
//
//	docker run -d \
//	  -e CATALOG_PATH=/data/videos.csv \
//	  -v /srv/catalog:/data:ro \
//	  -p 9002:9002 \
//	  ghcr.io/tomtom215/videographus
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/videographus/docs" // Import generated swagger docs
	"github.com/tomtom215/videographus/internal/api"
	"github.com/tomtom215/videographus/internal/cache"
	"github.com/tomtom215/videographus/internal/catalog"
	"github.com/tomtom215/videographus/internal/config"
	"github.com/tomtom215/videographus/internal/logging"
	"github.com/tomtom215/videographus/internal/supervisor"
	"github.com/tomtom215/videographus/internal/supervisor/services"
)

func main() {
	// Config before logging so the log level and format are honored.
	// Until Init runs, failures go through the package default logger.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Videographus with supervisor tree")

	logging.Info().
		Str("catalog_path", cfg.Catalog.Path).
		Dur("query_timeout", cfg.Catalog.QueryTimeout).
		Dur("cache_ttl", cfg.Cache.TTL).
		Int("cache_capacity", cfg.Cache.Capacity).
		Msg("Configuration loaded")

	// The catalog is streamed per request, never held open, so a missing
	// file is a degraded state rather than a startup failure.
	if _, err := os.Stat(cfg.Catalog.Path); err != nil {
		logging.Warn().
			Err(err).
			Str("catalog_path", cfg.Catalog.Path).
			Msg("Catalog file not readable at startup - queries will return 503 until it appears")
	}

	// Query cache with TTL expiry and capacity-bound eviction
	queryCache := cache.NewWithSweepInterval(cfg.Cache.TTL, cfg.Cache.Capacity, cfg.Cache.SweepInterval)
	defer queryCache.Stop()
	logging.Info().
		Dur("ttl", cfg.Cache.TTL).
		Int("capacity", cfg.Cache.Capacity).
		Msg("Query cache initialized")

	// Streaming query engine and statistics sampler share the catalog config
	engine := catalog.NewEngine(cfg.Catalog, queryCache)
	sampler := catalog.NewSampler(cfg.Catalog, cfg.Stats)
	logging.Info().
		Int("sample_size", cfg.Stats.SampleSize).
		Int64("exact_scan_threshold", cfg.Stats.ExactScanThreshold).
		Msg("Catalog engine and sampler initialized")

	if cfg.API.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
		logging.Warn().Msg("This should only be used for development and CI!")
	}

	handler := api.NewHandler(engine, sampler, queryCache, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sutureslog wants an *slog.Logger; the adapter keeps its output
	// flowing through zerolog.
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Data layer: keep the statistics slot warm so /stats never pays the
	// cold-scan cost. The refresher tolerates per-cycle failures; the
	// sampler's circuit breaker handles persistent ones.
	tree.AddDataService(services.NewStatsRefresherService(sampler, services.StatsRefresherConfig{
		RefreshOnStartup: true,
		Interval:         cfg.Stats.RefreshInterval,
	}, logging.Logger()))
	logging.Info().
		Dur("interval", cfg.Stats.RefreshInterval).
		Msg("Stats refresher added to supervisor tree")

	// API layer
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// errCh closes once the tree has fully stopped
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
