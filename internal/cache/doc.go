// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

/*
Package cache provides thread-safe in-memory caching with TTL support and a
hard capacity bound.

This package implements the query-result cache sitting in front of the
catalog engine: identical normalized queries within the TTL window are served
from memory instead of re-scanning the catalog file. The cache is a pure
accelerator; results are byte-identical whether they come from a scan or from
a cache hit.

# Overview

The cache provides:
  - Thread-safe concurrent access (sync.RWMutex)
  - Time-to-live (TTL) expiration, enforced lazily on Get and periodically
    by a background sweeper (Stop terminates the sweeper)
  - A capacity bound: inserting into a full cache evicts the entry with the
    oldest StoredAt first, via an O(log n) timestamp-ordered min-heap
  - Deterministic key derivation (GenerateKey) from a method name plus a
    normalized parameter struct, so URL parameter order never splits entries

# Use Cases

Primary use cases:
  - Catalog query results (5-minute TTL, capacity-bounded)
  - Anything derived from the catalog file that is expensive to recompute
    and tolerates TTL-stale reads

The statistics summary is NOT stored here; the sampler keeps its own slot
with stale-while-revalidate semantics (see internal/catalog).

# Cache Structure

The cache stores entries with insertion metadata:

	type Entry struct {
	    Data      interface{}  // Cached value (any type)
	    StoredAt  time.Time    // Insertion time, orders capacity eviction
	    ExpiresAt time.Time    // Absolute expiry
	}

# Usage Example

Basic caching:

	import "github.com/tomtom215/videographus/internal/cache"

	// Create cache with 5-minute default TTL and 512-entry bound
	c := cache.New(5*time.Minute, 512)
	defer c.Stop()

	// Store value
	key := cache.GenerateKey("videos.query", spec)
	c.Set(key, result)

	// Retrieve value
	if value, ok := c.Get(key); ok {
	    result, ok := value.(*models.QueryResult)
	    // A failed type assertion means a corrupted entry: treat as miss,
	    // drop the entry, recompute.
	}

	// Delete specific key
	c.Delete(key)

	// Clear entire cache (admin escape hatch)
	c.Clear()

# Statistics

GetStats returns hit/miss/eviction counters and the current key count;
HitRate derives the hit percentage. These feed the health endpoint and the
Prometheus gauges.
*/
package cache
