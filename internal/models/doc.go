// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

/*
Package models defines data structures for the Videographus application.

This package contains all data models used throughout the application: the
decoded catalog record, query specifications and results, aggregate catalog
statistics, and the standardized API response wrapper. It serves as the single
source of truth for data structure definitions.

Key Components:

  - Video: One decoded catalog record with derived fields (source, flags, rating)
  - QuerySpec: Normalized filter/sort/page request handed to the engine
  - QueryResult: Page of matched videos plus pagination metadata
  - CatalogStats: Sampled aggregate statistics over the catalog file
  - APIResponse: Standardized API response wrapper

Models carry camelCase JSON tags matching the public API contract; the
response envelope (APIResponse, Metadata, APIError) keeps the house
snake_case form shared with sibling services.

Thread Safety:

All models are plain data structures. Video values are immutable once
decoded; QuerySpec is request-scoped and never shared across goroutines
after Normalize.
*/
package models
