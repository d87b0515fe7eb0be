// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// DefaultSweepInterval is how often the background sweeper reclaims expired
// entries when no explicit interval is configured.
const DefaultSweepInterval = 5 * time.Minute

// Entry represents a cached item with its insertion time and expiration.
// StoredAt orders entries for capacity eviction (oldest first).
type Entry struct {
	Data      interface{}
	StoredAt  time.Time
	ExpiresAt time.Time
}

// Cache provides a thread-safe in-memory cache with TTL support and a hard
// capacity bound. Inserting into a full cache evicts the entry with the
// oldest StoredAt before the new entry is admitted, so memory stays bounded
// regardless of key cardinality.
type Cache struct {
	mu       sync.RWMutex
	entries  map[string]Entry
	order    *evictionHeap
	ttl      time.Duration
	capacity int
	sweep    time.Duration
	stats    Stats
	done     chan struct{}
	stopOnce sync.Once
}

// Stats tracks cache performance counters. HitRate derives the percentage.
type Stats struct {
	mu          sync.RWMutex
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New builds a cache whose entries expire ttl after insertion and whose
// entry count never exceeds capacity (0 or negative means unbounded). A
// background goroutine sweeps expired entries every DefaultSweepInterval;
// call Stop during shutdown to terminate it.
func New(ttl time.Duration, capacity int) *Cache {
	return NewWithSweepInterval(ttl, capacity, DefaultSweepInterval)
}

// NewWithSweepInterval creates a cache with an explicit sweep interval.
// Intervals of zero or below fall back to DefaultSweepInterval.
func NewWithSweepInterval(ttl time.Duration, capacity int, sweepInterval time.Duration) *Cache {
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}

	c := &Cache{
		entries:  make(map[string]Entry),
		order:    newEvictionHeap(),
		ttl:      ttl,
		capacity: capacity,
		sweep:    sweepInterval,
		stats: Stats{
			LastCleanup: time.Now(),
		},
		done: make(chan struct{}),
	}

	go c.cleanupLoop()

	return c
}

// Get returns the value for key, or (nil, false) on a miss.
//
// Expiry is enforced here, not only by the sweeper: an entry past its
// ExpiresAt is removed and reported as a miss even if the sweeper has not
// run yet, so callers never receive data older than the TTL.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.recordMiss()
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		if c.removeIfUnchanged(key, entry) {
			c.recordEviction()
		}
		c.recordMiss()
		return nil, false
	}

	c.recordHit()
	return entry.Data, true
}

// removeIfUnchanged deletes key only if the stored entry is still the one
// the caller observed. Between Get's read lock and this write lock a
// concurrent Set may have refreshed the key; the StoredAt comparison keeps
// the fresh entry in that case. Reports whether an entry was removed.
func (c *Cache) removeIfUnchanged(key string, seen Entry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, ok := c.entries[key]
	if !ok || !cur.StoredAt.Equal(seen.StoredAt) {
		return false
	}
	delete(c.entries, key)
	c.order.remove(key)
	return true
}

// Set stores value under key with the cache's default TTL. An existing entry
// with the same key is overwritten and its StoredAt refreshed.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value in the cache with a custom TTL, evicting the
// oldest-stored entry when the capacity bound would be exceeded.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	now := time.Now()

	c.mu.Lock()

	c.entries[key] = Entry{
		Data:      value,
		StoredAt:  now,
		ExpiresAt: now.Add(ttl),
	}
	c.order.push(key, now)

	evicted := int64(0)
	for c.capacity > 0 && len(c.entries) > c.capacity {
		oldest, ok := c.order.popOldest()
		if !ok {
			break
		}
		delete(c.entries, oldest)
		evicted++
	}
	totalKeys := int64(len(c.entries))

	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evicted
	c.stats.TotalKeys = totalKeys
	c.stats.mu.Unlock()
}

// Delete removes key if present. Missing keys are a no-op and leave the
// eviction counter untouched.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	_, exists := c.entries[key]
	if exists {
		delete(c.entries, key)
		c.order.remove(key)
	}
	c.mu.Unlock()

	if exists {
		c.recordEviction()
	}
}

// Clear drops every entry at once by replacing the backing map. Exposed to
// operators via the admin API so a replaced catalog file can take effect
// before TTLs lapse.
func (c *Cache) Clear() {
	c.mu.Lock()
	evictions := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.order.clear()
	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = 0
	c.stats.mu.Unlock()
}

// Stop terminates the background sweep goroutine. Safe to call more than
// once. The cache remains usable after Stop; only lazy expiry in Get
// reclaims memory from then on.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.done)
	})
}

// GetStats returns a copy of the current counters, safe to read without
// holding any lock.
func (c *Cache) GetStats() Stats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()

	return Stats{
		Hits:        c.stats.Hits,
		Misses:      c.stats.Misses,
		Evictions:   c.stats.Evictions,
		TotalKeys:   c.stats.TotalKeys,
		LastCleanup: c.stats.LastCleanup,
	}
}

// HitRate reports hits as a percentage of all lookups, 0 when no lookups
// have happened yet.
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Len returns the current number of entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.sweep)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.done:
			return
		}
	}
}

// cleanup removes every expired entry in one pass under the write lock.
func (c *Cache) cleanup() {
	now := time.Now()
	c.mu.Lock()

	evictions := int64(0)
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			c.order.remove(key)
			evictions++
		}
	}
	totalKeys := int64(len(c.entries))

	c.mu.Unlock()

	c.stats.mu.Lock()
	c.stats.Evictions += evictions
	c.stats.TotalKeys = totalKeys
	c.stats.LastCleanup = now
	c.stats.mu.Unlock()
}

func (c *Cache) recordHit() {
	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()
}

func (c *Cache) recordMiss() {
	c.stats.mu.Lock()
	c.stats.Misses++
	c.stats.mu.Unlock()
}

func (c *Cache) recordEviction() {
	c.stats.mu.Lock()
	c.stats.Evictions++
	c.stats.mu.Unlock()
}

// GenerateKey creates a cache key from the method name and parameters.
//
// Parameters are serialized with goccy/go-json (struct field order is fixed,
// so a normalized parameter struct always yields the same bytes) and hashed
// with SHA-256; the key is "method:" plus the first 16 hash bytes in hex.
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
