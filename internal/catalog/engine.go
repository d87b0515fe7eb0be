// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/tomtom215/videographus/internal/cache"
	"github.com/tomtom215/videographus/internal/config"
	"github.com/tomtom215/videographus/internal/logging"
	"github.com/tomtom215/videographus/internal/metrics"
	"github.com/tomtom215/videographus/internal/models"
)

// queryCacheMethod prefixes query cache keys so they never collide with
// other GenerateKey callers.
const queryCacheMethod = "videos.query"

// progressLogBatches is how many batches pass between scan-progress debug
// lines on long scans.
const progressLogBatches = 100

// Engine answers filtered/sorted/paginated queries over the catalog file.
//
// The file is the only source of truth: every cache miss opens its own
// handle, streams line batches through the decoder and the query's compiled
// predicates, then sorts and slices the retained matches. Peak memory per
// query is bounded by one chunk plus the match budget, never by file size.
//
// The engine is constructed once in cmd/server and shared by all request
// goroutines; it holds no per-query state.
type Engine struct {
	cfg   config.CatalogConfig
	cache *cache.Cache
}

// NewEngine creates an engine over the configured catalog file, using c for
// query-result caching.
func NewEngine(cfg config.CatalogConfig, c *cache.Cache) *Engine {
	return &Engine{
		cfg:   cfg,
		cache: c,
	}
}

// Ping reports whether the catalog file is currently openable. Used by the
// readiness probe; a missing file maps to ErrFileNotFound.
func (e *Engine) Ping() error {
	f, err := os.Open(e.cfg.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, e.cfg.Path)
		}
		return fmt.Errorf("open catalog: %w", err)
	}
	return f.Close()
}

// Query answers one normalized QuerySpec.
//
// The cache is consulted first under the spec's canonical key; a hit is
// returned as-is (the cache is a pure accelerator, hits and misses carry
// identical payloads for a static file). An entry that fails the type
// assertion is treated as corruption: dropped, counted, and recomputed
// rather than propagated.
//
// On a miss the catalog is scanned under the configured query timeout.
// Results produced by scan- or match-budget exhaustion are deterministic
// for a static file and are cached; results truncated by the wall-clock
// deadline depend on machine load and are served but not cached.
//
// The returned bool reports whether the result came from the cache.
func (e *Engine) Query(ctx context.Context, spec models.QuerySpec) (*models.QueryResult, bool, error) {
	key := cache.GenerateKey(queryCacheMethod, spec)

	if data, ok := e.cache.Get(key); ok {
		if result, ok := data.(*models.QueryResult); ok {
			metrics.RecordCacheHit()
			return result, true, nil
		}
		// Wrong type under our key means the entry is unusable. Drop it
		// and fall through to a fresh scan.
		e.cache.Delete(key)
		metrics.RecordCacheCorruption()
		logging.Warn().Str("key", key).Msg("Dropped corrupted query cache entry")
	}
	metrics.RecordCacheMiss()

	start := time.Now()
	result, timedOut, err := e.scan(ctx, spec)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordQuery(metrics.QueryOutcomeError, elapsed)
		return nil, false, err
	}

	outcome := metrics.QueryOutcomeExact
	if result.Approximate {
		outcome = metrics.QueryOutcomeApproximate
	}
	metrics.RecordQuery(outcome, elapsed)

	if !timedOut {
		e.cache.Set(key, result)
		metrics.SetCacheEntries(float64(e.cache.Len()))
	}

	logging.Debug().
		Int64("lines_scanned", result.Diagnostics.LinesScanned).
		Int64("lines_skipped", result.Diagnostics.LinesSkipped).
		Int64("numeric_warnings", result.Diagnostics.NumericWarnings).
		Int64("total_matched", result.Pagination.TotalRecords).
		Bool("approximate", result.Approximate).
		Bool("timed_out", timedOut).
		Dur("elapsed", elapsed).
		Msg("Catalog query scanned")

	return result, false, nil
}

// ClearCache drops every cached query result. Exposed for the admin
// endpoint so a swapped catalog file takes effect immediately.
func (e *Engine) ClearCache() {
	e.cache.Clear()
	metrics.SetCacheEntries(0)
}

// scan streams the catalog once for this spec. The second return reports
// whether the scan was cut short by the wall-clock deadline (as opposed to
// a deterministic budget stop).
func (e *Engine) scan(ctx context.Context, spec models.QuerySpec) (*models.QueryResult, bool, error) {
	f, err := os.Open(e.cfg.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("%w: %s", ErrFileNotFound, e.cfg.Path)
		}
		return nil, false, fmt.Errorf("open catalog: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Error closing catalog file")
		}
	}()

	scanCtx := ctx
	if e.cfg.QueryTimeout > 0 {
		var cancel context.CancelFunc
		scanCtx, cancel = context.WithTimeout(ctx, e.cfg.QueryTimeout)
		defer cancel()
	}

	batcher := NewLineBatcherWithMaxLine(f, e.cfg.ChunkSize, e.cfg.BatchSize, e.cfg.MaxLineBytes)
	preds := buildPredicates(spec)

	started := time.Now()
	matched := make([]models.Video, 0, 256)
	var diag models.ScanDiagnostics
	approximate := false
	timedOut := false
	batches := 0

scan:
	for {
		batch, nextErr := batcher.Next(scanCtx)
		if nextErr != nil {
			switch {
			case errors.Is(nextErr, io.EOF):
				break scan
			case ctx.Err() != nil:
				// The caller gave up; there is nobody to serve a
				// partial result to.
				return nil, false, ctx.Err()
			case errors.Is(nextErr, context.DeadlineExceeded):
				// Our own query deadline: serve what we have.
				approximate = true
				timedOut = true
				break scan
			default:
				return nil, false, nextErr
			}
		}

		for _, line := range batch {
			if e.cfg.ScanBudget > 0 && diag.LinesScanned >= e.cfg.ScanBudget {
				approximate = true
				break scan
			}
			diag.LinesScanned++

			video, warns, ok := decodeLine(line)
			diag.NumericWarnings += int64(warns)
			if !ok {
				diag.LinesSkipped++
				continue
			}
			if !matchAll(&video, preds) {
				continue
			}

			matched = append(matched, video)
			if e.cfg.MatchBudget > 0 && len(matched) >= e.cfg.MatchBudget {
				approximate = true
				break scan
			}
		}

		batches++
		if batches%progressLogBatches == 0 {
			logging.Debug().
				Int("batches", batches).
				Int64("lines_scanned", diag.LinesScanned).
				Int("matched", len(matched)).
				Msg("Catalog scan progress")
		}
	}

	diag.BytesRead = batcher.Offset()
	metrics.RecordScan(metrics.ScanTriggerQuery, diag.LinesScanned, diag.BytesRead, time.Since(started))
	if diag.NumericWarnings > 0 {
		metrics.RecordDecodeWarnings(metrics.DecodeWarningNumeric, diag.NumericWarnings)
	}
	if diag.LinesSkipped > 0 {
		metrics.RecordDecodeWarnings(metrics.DecodeWarningShortLine, diag.LinesSkipped)
	}
	if discarded := batcher.LinesDiscarded(); discarded > 0 {
		metrics.RecordDecodeWarnings(metrics.DecodeWarningOversized, discarded)
		diag.LinesSkipped += discarded
	}

	sortVideos(matched, spec.SortBy, spec.SortOrder)

	result := &models.QueryResult{
		Videos:      paginate(matched, spec.Page, spec.Limit),
		Pagination:  models.NewPagination(spec.Page, spec.Limit, int64(len(matched))),
		Approximate: approximate,
		Diagnostics: diag,
	}
	return result, timedOut, nil
}
