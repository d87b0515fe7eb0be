// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package cache

import (
	"time"
)

// heapEntry is one key in the eviction order, positioned by StoredAt.
type heapEntry struct {
	key      string
	storedAt time.Time
	index    int // index in the heap array, used for O(log n) updates
}

// evictionHeap is a min-heap of cache keys ordered by StoredAt, giving the
// cache O(log n) access to its oldest entry for capacity eviction. A parallel
// map provides O(1) key lookup so re-inserted keys update in place instead of
// duplicating.
//
// The heap carries no lock of its own: every method is called with the
// cache's write lock held.
type evictionHeap struct {
	heap  []*heapEntry
	byKey map[string]*heapEntry
}

// newEvictionHeap creates an empty eviction order.
func newEvictionHeap() *evictionHeap {
	return &evictionHeap{
		heap:  make([]*heapEntry, 0),
		byKey: make(map[string]*heapEntry),
	}
}

// push records key as stored at the given time. If the key is already
// tracked its timestamp is refreshed and the heap reordered.
func (h *evictionHeap) push(key string, storedAt time.Time) {
	if existing, exists := h.byKey[key]; exists {
		existing.storedAt = storedAt
		h.fix(existing.index)
		return
	}

	entry := &heapEntry{
		key:      key,
		storedAt: storedAt,
		index:    len(h.heap),
	}
	h.heap = append(h.heap, entry)
	h.byKey[key] = entry
	h.bubbleUp(entry.index)
}

// popOldest removes and returns the key with the minimum StoredAt.
func (h *evictionHeap) popOldest() (string, bool) {
	if len(h.heap) == 0 {
		return "", false
	}
	return h.removeAt(0).key, true
}

// remove drops a key from the order. No-op if the key is not tracked.
func (h *evictionHeap) remove(key string) {
	entry, exists := h.byKey[key]
	if !exists {
		return
	}
	h.removeAt(entry.index)
}

// len returns the number of tracked keys.
func (h *evictionHeap) len() int {
	return len(h.heap)
}

// clear drops all tracked keys.
func (h *evictionHeap) clear() {
	h.heap = make([]*heapEntry, 0)
	h.byKey = make(map[string]*heapEntry)
}

// removeAt removes the element at the given index.
func (h *evictionHeap) removeAt(i int) *heapEntry {
	n := len(h.heap) - 1
	entry := h.heap[i]

	delete(h.byKey, entry.key)

	if i == n {
		// Removing last element
		h.heap = h.heap[:n]
		return entry
	}

	// Move last element to position i
	h.heap[i] = h.heap[n]
	h.heap[i].index = i
	h.heap = h.heap[:n]

	// Fix heap property
	h.fix(i)

	return entry
}

// fix maintains heap property after a timestamp change at index i.
func (h *evictionHeap) fix(i int) {
	// Try bubbling up
	if h.bubbleUp(i) {
		return
	}
	// If didn't bubble up, try bubbling down
	h.bubbleDown(i)
}

// bubbleUp moves element at index i up to its correct position.
// Returns true if the element moved.
func (h *evictionHeap) bubbleUp(i int) bool {
	moved := false
	for i > 0 {
		parent := (i - 1) / 2
		if !h.heap[i].storedAt.Before(h.heap[parent].storedAt) {
			break
		}
		h.swap(i, parent)
		i = parent
		moved = true
	}
	return moved
}

// bubbleDown moves element at index i down to its correct position.
func (h *evictionHeap) bubbleDown(i int) {
	n := len(h.heap)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && h.heap[left].storedAt.Before(h.heap[smallest].storedAt) {
			smallest = left
		}
		if right < n && h.heap[right].storedAt.Before(h.heap[smallest].storedAt) {
			smallest = right
		}

		if smallest == i {
			break
		}

		h.swap(i, smallest)
		i = smallest
	}
}

// swap swaps elements at indices i and j.
func (h *evictionHeap) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.heap[i].index = i
	h.heap[j].index = j
}
