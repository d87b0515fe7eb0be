// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package catalog

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/videographus/internal/config"
	"github.com/tomtom215/videographus/internal/logging"
	"github.com/tomtom215/videographus/internal/metrics"
	"github.com/tomtom215/videographus/internal/models"
)

const (
	// probeWindow is how many leading bytes a sampled scan reads to estimate
	// the catalog's average line length.
	probeWindow = 64 * 1024

	// DefaultSampleSize is the sampled-record target when none is configured.
	DefaultSampleSize = 2000

	// DefaultStatsTopN caps the reported distinct sources/categories/
	// performers when none is configured.
	DefaultStatsTopN = 25

	statsBreakerName = "stats-refresh"
)

// Sampler owns the statistics summary slot.
//
// The slot is a last-writer-wins pointer: readers take the current summary
// under an RLock, refreshes swap in a complete replacement. A stale summary
// is served immediately while at most one background refresh runs
// (stale-while-revalidate); only a cold start, when there is nothing to
// serve, computes synchronously.
//
// Refresh attempts triggered by stale reads are additionally gated by a
// rate limiter (floor between attempts) and a circuit breaker, so a
// persistently unreadable catalog does not burn a scan per request.
type Sampler struct {
	cfg   config.CatalogConfig
	stats config.StatsConfig

	mu      sync.RWMutex
	current *models.CatalogStats

	refreshing atomic.Bool
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[*models.CatalogStats]
}

// NewSampler creates a sampler over the configured catalog file.
//
// Circuit breaker configuration:
// - Single probe request in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 3 consecutive failures
func NewSampler(cfg config.CatalogConfig, statsCfg config.StatsConfig) *Sampler {
	minInterval := statsCfg.MinRefreshInterval
	if minInterval <= 0 {
		minInterval = time.Minute
	}

	metrics.CircuitBreakerState.WithLabelValues(statsBreakerName).Set(0) // 0 = closed

	breaker := gobreaker.NewCircuitBreaker[*models.CatalogStats](gobreaker.Settings{
		Name:        statsBreakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= 3
			if shouldTrip {
				logging.Warn().
					Uint32("consecutive_failures", counts.ConsecutiveFailures).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := breakerStateString(from)
			toStr := breakerStateString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &Sampler{
		cfg:     cfg,
		stats:   statsCfg,
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
		breaker: breaker,
	}
}

// Stats returns the current statistics summary.
//
// A summary within its TTL is returned as-is. A stale summary is still
// returned immediately, with one background refresh kicked off to replace
// it; statistics change slowly and a stale answer beats a blocked request.
// Only a cold start, when no summary exists yet, computes synchronously;
// concurrent cold callers wait on the mutex and reuse the first result.
//
// The returned bool reports whether the summary came from the slot rather
// than being computed for this call.
func (s *Sampler) Stats(ctx context.Context) (*models.CatalogStats, bool, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current != nil {
		if s.stats.TTL <= 0 || time.Since(current.SampledAt) <= s.stats.TTL {
			return current, true, nil
		}
		metrics.RecordStatsServedStale()
		s.refreshAsync()
		return current, true, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		return s.current, true, nil
	}

	stats, err := s.measure(ctx)
	if err != nil {
		return nil, false, err
	}
	s.current = stats
	return stats, false, nil
}

// Refresh forces a resample and swaps the slot on success. Used by the
// admin endpoint and the supervised background refresher; it bypasses the
// stale-read rate limiter but still runs through the circuit breaker.
func (s *Sampler) Refresh(ctx context.Context) (*models.CatalogStats, error) {
	stats, err := s.measure(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = stats
	s.mu.Unlock()

	return stats, nil
}

// refreshAsync starts at most one background refresh. The in-flight flag
// collapses concurrent stale reads to a single goroutine; the rate limiter
// puts a floor between attempts even when each one fails fast.
func (s *Sampler) refreshAsync() {
	if !s.refreshing.CompareAndSwap(false, true) {
		return
	}
	if !s.limiter.Allow() {
		s.refreshing.Store(false)
		metrics.RecordStatsThrottled()
		return
	}

	go func() {
		defer s.refreshing.Store(false)

		// A refresh outliving the refresh cadence is stuck, not slow.
		ctx := context.Background()
		if s.stats.RefreshInterval > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.stats.RefreshInterval)
			defer cancel()
		}

		if _, err := s.Refresh(ctx); err != nil {
			logging.Warn().Err(err).Msg("Background statistics refresh failed")
		}
	}()
}

// measure runs one sampling pass through the circuit breaker and records
// the attempt.
func (s *Sampler) measure(ctx context.Context) (*models.CatalogStats, error) {
	start := time.Now()
	stats, err := s.breaker.Execute(func() (*models.CatalogStats, error) {
		return s.sample(ctx)
	})
	metrics.RecordStatsRefresh(time.Since(start), err)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Int64("total_videos", stats.TotalVideos).
		Int64("total_size", stats.TotalSize).
		Bool("approximate", stats.Approximate).
		Dur("elapsed", time.Since(start)).
		Msg("Catalog statistics refreshed")

	return stats, nil
}

// sample computes one summary. Files at or below ExactScanThreshold bytes
// are scanned fully; larger files get systematic sampling at evenly spaced
// byte offsets, which approximates every-Kth-line sampling without reading
// the whole file.
func (s *Sampler) sample(ctx context.Context) (*models.CatalogStats, error) {
	f, err := os.Open(s.cfg.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, s.cfg.Path)
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Error closing catalog file")
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat catalog: %w", err)
	}
	size := fi.Size()

	if size <= s.stats.ExactScanThreshold {
		return s.scanExact(ctx, f, size)
	}
	return s.scanSampled(ctx, f, size)
}

// scanExact streams every line and aggregates without extrapolation.
func (s *Sampler) scanExact(ctx context.Context, f *os.File, size int64) (*models.CatalogStats, error) {
	started := time.Now()
	batcher := NewLineBatcherWithMaxLine(f, s.cfg.ChunkSize, s.cfg.BatchSize, s.cfg.MaxLineBytes)
	acc := newStatsAccumulator(s.stats.TopN)

	var lines, warnings int64
	for {
		batch, err := batcher.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		for _, line := range batch {
			lines++
			video, warns, ok := decodeLine(line)
			warnings += int64(warns)
			if !ok {
				continue
			}
			acc.add(&video)
		}
	}

	metrics.RecordScan(metrics.ScanTriggerStats, lines, batcher.Offset(), time.Since(started))
	if warnings > 0 {
		metrics.RecordDecodeWarnings(metrics.DecodeWarningNumeric, warnings)
	}
	if discarded := batcher.LinesDiscarded(); discarded > 0 {
		metrics.RecordDecodeWarnings(metrics.DecodeWarningOversized, discarded)
	}

	return acc.summarize(size, acc.count, false), nil
}

// scanSampled reads one line at each of sampleSize evenly spaced byte
// offsets. A head probe estimates the average line length, which turns the
// file size into a line-count estimate for extrapolation.
func (s *Sampler) scanSampled(ctx context.Context, f *os.File, size int64) (*models.CatalogStats, error) {
	started := time.Now()

	sampleSize := s.stats.SampleSize
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}

	probe := make([]byte, probeWindow)
	n, err := io.ReadFull(f, probe)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, &StreamReadError{Offset: int64(n), Err: err}
	}
	avgLine := averageLineLength(probe[:n])
	estimatedLines := size / avgLine
	if estimatedLines < 1 {
		estimatedLines = 1
	}

	stride := size / int64(sampleSize)
	if stride < 1 {
		stride = 1
	}

	bufSize := s.cfg.ChunkSize
	if bufSize <= 0 {
		bufSize = DefaultChunkSize
	}
	acc := newStatsAccumulator(s.stats.TopN)
	br := bufio.NewReaderSize(f, bufSize)

	var sampled, bytesRead, warnings int64
	bytesRead = int64(n)
	nextOffset := int64(0)

	for i := 0; i < sampleSize; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		target := int64(i) * stride
		if target >= size {
			break
		}
		// A long line can span several sample points; never re-read it.
		if target < nextOffset {
			continue
		}

		if _, err := f.Seek(target, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seek catalog: %w", err)
		}
		br.Reset(f)

		consumed := int64(0)
		if target > 0 {
			// The seek landed mid-line; discard up to the next boundary.
			skipped, skipErr := br.ReadBytes('\n')
			consumed += int64(len(skipped))
			if skipErr != nil {
				if errors.Is(skipErr, io.EOF) {
					nextOffset = target + consumed
					bytesRead += consumed
					continue
				}
				return nil, &StreamReadError{Offset: target + consumed, Err: skipErr}
			}
		}

		line, readErr := br.ReadBytes('\n')
		consumed += int64(len(line))
		nextOffset = target + consumed
		bytesRead += consumed

		if text := chompLine(line); text != "" {
			sampled++
			video, warns, ok := decodeLine(text)
			warnings += int64(warns)
			if ok {
				acc.add(&video)
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return nil, &StreamReadError{Offset: nextOffset, Err: readErr}
		}
	}

	metrics.RecordScan(metrics.ScanTriggerStats, sampled, bytesRead, time.Since(started))
	if warnings > 0 {
		metrics.RecordDecodeWarnings(metrics.DecodeWarningNumeric, warnings)
	}

	return acc.summarize(size, estimatedLines, true), nil
}

// averageLineLength estimates bytes per line over the probe window. A
// window without a newline is treated as one line.
func averageLineLength(probe []byte) int64 {
	count := int64(0)
	last := -1
	for i, b := range probe {
		if b == '\n' {
			count++
			last = i
		}
	}
	if count == 0 {
		if len(probe) == 0 {
			return 1
		}
		return int64(len(probe))
	}
	return (int64(last) + 1) / count
}

// chompLine strips the trailing newline and carriage return from one raw
// ReadBytes result.
func chompLine(line []byte) string {
	if k := len(line); k > 0 && line[k-1] == '\n' {
		line = line[:k-1]
	}
	return trimCR(string(line))
}

// statsAccumulator aggregates decoded videos into summary figures.
type statsAccumulator struct {
	topN        int
	count       int64
	durationSum int64
	viewsSum    int64
	sources     map[string]int64
	categories  map[string]int64
	performers  map[string]int64
	earliest    *time.Time
	latest      *time.Time
}

func newStatsAccumulator(topN int) *statsAccumulator {
	if topN <= 0 {
		topN = DefaultStatsTopN
	}
	return &statsAccumulator{
		topN:       topN,
		sources:    make(map[string]int64),
		categories: make(map[string]int64),
		performers: make(map[string]int64),
	}
}

func (a *statsAccumulator) add(v *models.Video) {
	a.count++
	a.durationSum += int64(v.DurationSeconds)
	a.viewsSum += v.Views

	if v.Source != "" {
		a.sources[v.Source]++
	}
	for _, c := range v.Categories {
		if c != "" {
			a.categories[c]++
		}
	}
	for _, p := range v.Performers {
		if p != "" {
			a.performers[p]++
		}
	}

	if v.UploadedDate != nil {
		if a.earliest == nil || v.UploadedDate.Before(*a.earliest) {
			t := *v.UploadedDate
			a.earliest = &t
		}
		if a.latest == nil || v.UploadedDate.After(*a.latest) {
			t := *v.UploadedDate
			a.latest = &t
		}
	}
}

// summarize builds the summary. For approximate passes, total views are
// extrapolated as sample mean times the estimated total; exact passes
// report raw sums.
func (a *statsAccumulator) summarize(fileSize, totalVideos int64, approximate bool) *models.CatalogStats {
	avgDuration := 0.0
	if a.count > 0 {
		avgDuration = float64(a.durationSum) / float64(a.count)
	}

	totalViews := a.viewsSum
	if approximate && a.count > 0 {
		meanViews := float64(a.viewsSum) / float64(a.count)
		totalViews = int64(meanViews * float64(totalVideos))
	}

	return &models.CatalogStats{
		TotalVideos:     totalVideos,
		TotalSize:       fileSize,
		Sources:         topByFrequency(a.sources, a.topN),
		Categories:      topByFrequency(a.categories, a.topN),
		Performers:      topByFrequency(a.performers, a.topN),
		DateRange:       models.DateRange{Earliest: a.earliest, Latest: a.latest},
		AverageDuration: avgDuration,
		TotalViews:      totalViews,
		Approximate:     approximate,
		SampledAt:       time.Now(),
	}
}

// topByFrequency ranks keys by descending count, ties broken by name so the
// reported lists are deterministic, and caps the result at n.
func topByFrequency(freq map[string]int64, n int) []string {
	keys := make([]string, 0, len(freq))
	for key := range freq {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if freq[keys[i]] != freq[keys[j]] {
			return freq[keys[i]] > freq[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// breakerStateFloat converts circuit breaker state to numeric value for metrics
func breakerStateFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// breakerStateString converts circuit breaker state to string for logging
func breakerStateString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
