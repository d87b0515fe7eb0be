// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

/*
Package catalog implements the streaming query engine over the pipe-delimited
video catalog file.

The catalog is a flat file, one video per line, thirteen pipe-separated
fields (plus an optional upload date). It is routinely larger than working
memory, so nothing in this package ever materializes the whole file: queries
and statistics both stream it in fixed-size chunks and retain only what the
caller asked for.

# Architecture

	file -> LineBatcher -> decodeLine -> predicates -> sort/paginate -> QueryResult
	                                  \-> statsAccumulator -> CatalogStats

LineBatcher reads fixed chunks and yields batches of complete lines,
carrying partial lines across chunk boundaries so results are invariant to
the chunk size. decodeLine turns one line into a typed Video, deriving the
source host, HD/VR flags, and like-ratio rating. Predicates are compiled
once per query from the normalized QuerySpec and evaluated per video as a
conjunction.

# Query Semantics

Engine.Query scans on cache miss under three independent limits:

  - ScanBudget caps lines examined; MatchBudget caps matches retained.
    Exhausting either yields a result flagged approximate, never an error.
  - QueryTimeout is the wall-clock ceiling; hitting it also yields a
    best-effort approximate result. Timeout partials are served but not
    cached, because they depend on machine load rather than file content.
  - Caller cancellation aborts the scan with ctx.Err(); there is nobody
    left to serve a partial result to.

Matches are sorted with a stable sort (equal keys keep file order) and the
requested page is sliced out. An out-of-range page returns an empty page
with real pagination totals.

# Statistics

Sampler maintains a summary (record-count estimate, top sources/categories/
performers, date range, mean duration, extrapolated views) in a
last-writer-wins slot. Small files are scanned exactly; large files are
sampled at evenly spaced byte offsets after a head probe estimates the
average line length. Stale summaries are served immediately while a single
background refresh recomputes, so statistics requests never block on a
scan except at cold start.

# Error Model

ErrFileNotFound marks a missing catalog file (deployment problem, maps to
503 at the API). StreamReadError carries the byte offset of a mid-scan I/O
failure. Malformed lines and unparseable numeric fields are never errors:
lines with too few fields are skipped, bad numerics decode as zero, and
both are surfaced as per-query diagnostics and Prometheus counters.
*/
package catalog
