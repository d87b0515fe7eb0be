// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestCacheBasicOperations(t *testing.T) {
	c := New(1*time.Minute, 0)
	defer c.Stop()

	// Test Set and Get
	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	// Test non-existent key
	_, exists = c.Get("key2")
	if exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiration(t *testing.T) {
	c := New(100*time.Millisecond, 0)
	defer c.Stop()

	c.Set("key1", "value1")

	// Value should exist immediately
	_, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	// Wait for expiration
	time.Sleep(150 * time.Millisecond)

	// Value should be expired even though the sweeper has not run
	_, exists = c.Get("key1")
	if exists {
		t.Error("Expected key1 to be expired")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New(1*time.Minute, 0)
	defer c.Stop()

	c.Set("key1", "value1")
	c.Delete("key1")

	_, exists := c.Get("key1")
	if exists {
		t.Error("Expected key1 to be deleted")
	}
}

func TestCacheDeleteMissingKeyLeavesEvictions(t *testing.T) {
	c := New(1*time.Minute, 0)
	defer c.Stop()

	c.Delete("absent")
	if got := c.GetStats().Evictions; got != 0 {
		t.Errorf("Evictions after deleting absent key = %d, want 0", got)
	}

	c.Set("key1", "value1")
	c.Delete("key1")
	if got := c.GetStats().Evictions; got != 1 {
		t.Errorf("Evictions after deleting present key = %d, want 1", got)
	}
}

// TestCacheExpiredGetKeepsRefreshedEntry pins the expiry removal to the
// exact entry Get observed: if a concurrent Set refreshes the key between
// Get's read and the removal, the fresh entry must survive.
func TestCacheExpiredGetKeepsRefreshedEntry(t *testing.T) {
	c := New(1*time.Minute, 0)
	defer c.Stop()

	c.Set("key1", "stale")
	c.mu.RLock()
	stale := c.entries["key1"]
	c.mu.RUnlock()

	// A refresh lands after the stale snapshot was taken.
	time.Sleep(time.Millisecond)
	c.Set("key1", "fresh")

	if c.removeIfUnchanged("key1", stale) {
		t.Error("removal with a stale snapshot must not touch the refreshed entry")
	}
	value, exists := c.Get("key1")
	if !exists || value != "fresh" {
		t.Errorf("Get after stale removal attempt = (%v, %v), want (fresh, true)", value, exists)
	}

	// With the current snapshot the removal goes through.
	c.mu.RLock()
	current := c.entries["key1"]
	c.mu.RUnlock()
	if !c.removeIfUnchanged("key1", current) {
		t.Error("removal with the current snapshot should succeed")
	}
	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be removed")
	}
}

func TestCacheClear(t *testing.T) {
	c := New(1*time.Minute, 0)
	defer c.Stop()

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Set("key3", "value3")

	c.Clear()

	for _, key := range []string{"key1", "key2", "key3"} {
		_, exists := c.Get(key)
		if exists {
			t.Errorf("Expected %s to be cleared", key)
		}
	}
	if c.Len() != 0 {
		t.Errorf("Expected empty cache after clear, got %d entries", c.Len())
	}
}

func TestCacheCapacityEvictsOldestFirst(t *testing.T) {
	c := New(1*time.Minute, 3)
	defer c.Stop()

	c.Set("first", 1)
	time.Sleep(2 * time.Millisecond)
	c.Set("second", 2)
	time.Sleep(2 * time.Millisecond)
	c.Set("third", 3)
	time.Sleep(2 * time.Millisecond)

	// Fourth insert exceeds capacity; the oldest entry must go
	c.Set("fourth", 4)

	if _, exists := c.Get("first"); exists {
		t.Error("Expected oldest entry 'first' to be evicted")
	}
	for _, key := range []string{"second", "third", "fourth"} {
		if _, exists := c.Get(key); !exists {
			t.Errorf("Expected %s to survive eviction", key)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Expected 3 entries at capacity, got %d", c.Len())
	}

	stats := c.GetStats()
	if stats.Evictions != 1 {
		t.Errorf("Expected 1 eviction, got %d", stats.Evictions)
	}
}

func TestCacheOverwriteDoesNotEvict(t *testing.T) {
	c := New(1*time.Minute, 2)
	defer c.Stop()

	c.Set("a", 1)
	time.Sleep(2 * time.Millisecond)
	c.Set("b", 2)
	time.Sleep(2 * time.Millisecond)

	// Overwriting an existing key keeps the cache at size 2, so nothing
	// should be evicted; it also refreshes a's StoredAt so b is now oldest.
	c.Set("a", 10)
	time.Sleep(2 * time.Millisecond)
	c.Set("c", 3)

	if _, exists := c.Get("b"); exists {
		t.Error("Expected 'b' to be evicted after 'a' was refreshed")
	}
	if v, exists := c.Get("a"); !exists || v != 10 {
		t.Errorf("Expected refreshed 'a' = 10 to survive, got %v (exists=%v)", v, exists)
	}
	if _, exists := c.Get("c"); !exists {
		t.Error("Expected newest entry 'c' to survive")
	}
}

func TestCacheSweepReclaimsExpired(t *testing.T) {
	c := NewWithSweepInterval(20*time.Millisecond, 0, 30*time.Millisecond)
	defer c.Stop()

	c.Set("key1", "value1")
	c.Set("key2", "value2")

	// Wait past TTL and at least one sweep
	time.Sleep(100 * time.Millisecond)

	if c.Len() != 0 {
		t.Errorf("Expected sweeper to reclaim expired entries, %d remain", c.Len())
	}
}

func TestCacheStopIsIdempotent(t *testing.T) {
	c := New(1*time.Minute, 0)

	c.Stop()
	c.Stop() // must not panic

	// Cache stays usable after Stop
	c.Set("key1", "value1")
	if _, exists := c.Get("key1"); !exists {
		t.Error("Expected cache to remain usable after Stop")
	}
}

func TestCacheStats(t *testing.T) {
	c := New(1*time.Minute, 0)
	defer c.Stop()

	c.Set("key1", "value1")
	c.Get("key1") // hit
	c.Get("key2") // miss
	c.Get("key1") // hit

	stats := c.GetStats()

	if stats.Hits != 2 {
		t.Errorf("Expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}

	hitRate := c.HitRate()
	expectedHitRate := 66.66666666666667 // 2/3 * 100
	if hitRate < expectedHitRate-0.01 || hitRate > expectedHitRate+0.01 {
		t.Errorf("Expected hit rate around %.2f%%, got %.2f%%", expectedHitRate, hitRate)
	}
}

func TestCacheSetWithTTL(t *testing.T) {
	c := New(1*time.Minute, 0)
	defer c.Stop()

	// Set with short TTL
	c.SetWithTTL("key1", "value1", 100*time.Millisecond)

	// Should exist immediately
	_, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}

	// Wait for expiration
	time.Sleep(150 * time.Millisecond)

	// Should be expired
	_, exists = c.Get("key1")
	if exists {
		t.Error("Expected key1 to be expired")
	}
}

func TestCacheStoredAtOrdering(t *testing.T) {
	c := New(1*time.Minute, 0)
	defer c.Stop()

	before := time.Now()
	c.Set("key1", "value1")
	after := time.Now()

	c.mu.RLock()
	entry := c.entries["key1"]
	c.mu.RUnlock()

	if entry.StoredAt.Before(before) || entry.StoredAt.After(after) {
		t.Errorf("StoredAt %v outside [%v, %v]", entry.StoredAt, before, after)
	}
	if !entry.ExpiresAt.After(entry.StoredAt) {
		t.Error("ExpiresAt must be after StoredAt")
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New(1*time.Minute, 100)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d-%d", n, j)
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 100 {
		t.Errorf("Capacity bound violated: %d entries", c.Len())
	}
}

func TestGenerateKey(t *testing.T) {
	type TestParams struct {
		Category string
		Page     int
	}

	params1 := TestParams{Category: "horror", Page: 1}
	params2 := TestParams{Category: "horror", Page: 1}
	params3 := TestParams{Category: "comedy", Page: 1}

	key1 := GenerateKey("videos.query", params1)
	key2 := GenerateKey("videos.query", params2)
	key3 := GenerateKey("videos.query", params3)

	// Same params should generate same key
	if key1 != key2 {
		t.Error("Expected same params to generate same key")
	}

	// Different params should generate different key
	if key1 == key3 {
		t.Error("Expected different params to generate different keys")
	}

	// Different methods should generate different keys
	key4 := GenerateKey("videos.stats", params1)
	if key1 == key4 {
		t.Error("Expected different methods to generate different keys")
	}

	// Key carries the method prefix for debuggability
	wantPrefix := "videos.query:"
	if len(key1) <= len(wantPrefix) || key1[:len(wantPrefix)] != wantPrefix {
		t.Errorf("Expected key prefixed with %q, got %q", wantPrefix, key1)
	}
}
