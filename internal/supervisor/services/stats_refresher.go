// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/videographus/internal/models"
)

// CatalogSampler defines the interface for the catalog statistics sampler.
// This allows the service to work with the sampler without circular imports.
type CatalogSampler interface {
	// Refresh rescans the catalog and replaces the cached statistics.
	Refresh(ctx context.Context) (*models.CatalogStats, error)
}

// refreshTimeout bounds a single catalog rescan. Sampled scans finish in
// milliseconds; this only matters when the exact-scan path walks a large file.
const refreshTimeout = 2 * time.Minute

// StatsRefresherConfig holds configuration for the statistics refresher.
type StatsRefresherConfig struct {
	// RefreshOnStartup triggers a scan when the service starts, so the
	// first stats request never pays the cold-measurement cost.
	RefreshOnStartup bool

	// Interval is how often to rescan the catalog.
	Interval time.Duration
}

// StatsRefresherService keeps the catalog statistics slot warm by rescanning
// the catalog file on a fixed interval. Between runs, stats requests are
// served from the slot without touching the file.
//
// Failures are logged and retried on the next tick; the sampler's circuit
// breaker decides when repeated failures should stop hitting the file.
type StatsRefresherService struct {
	sampler CatalogSampler
	config  StatsRefresherConfig
	logger  zerolog.Logger
	name    string
}

// NewStatsRefresherService creates a new statistics refresher service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStatsRefresherService(sampler CatalogSampler, cfg StatsRefresherConfig, logger zerolog.Logger) *StatsRefresherService {
	return &StatsRefresherService{
		sampler: sampler,
		config:  cfg,
		logger:  logger.With().Str("service", "stats-refresher").Logger(),
		name:    "stats-refresher",
	}
}

// Serve implements the suture.Service interface.
// It manages the periodic rescan loop for catalog statistics.
func (s *StatsRefresherService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("refresh_on_startup", s.config.RefreshOnStartup).
		Dur("interval", s.config.Interval).
		Msg("stats refresher starting")

	// Warm the slot on startup if configured
	if s.config.RefreshOnStartup {
		if err := s.refresh(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("initial stats refresh failed (will retry on schedule)")
		}
	}

	if s.config.Interval <= 0 {
		s.config.Interval = 15 * time.Minute
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	s.logger.Info().Msg("stats refresher running")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("stats refresher shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.refresh(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled stats refresh failed")
			}
		}
	}
}

// refresh performs one rescan cycle with proper context handling.
func (s *StatsRefresherService) refresh(ctx context.Context) error {
	refreshCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	start := time.Now()

	stats, err := s.sampler.Refresh(refreshCtx)
	if err != nil {
		return err
	}

	s.logger.Info().
		Int64("total_videos", stats.TotalVideos).
		Bool("approximate", stats.Approximate).
		Dur("duration", time.Since(start)).
		Msg("catalog statistics refreshed")

	return nil
}

// String returns the service name for logging.
func (s *StatsRefresherService) String() string {
	return s.name
}
