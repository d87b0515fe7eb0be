// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

// Package services adapts the application's workers to the
// suture.Service interface so the supervisor tree can run them.
//
// Two services exist:
//
//   - HTTPServerService turns an *http.Server's ListenAndServe/Shutdown
//     pair into a single blocking Serve. Context cancellation starts a
//     graceful drain bounded by the configured window; a listen error is
//     returned to the supervisor, which decides whether to restart.
//   - StatsRefresher periodically resamples catalog statistics so stats
//     responses stay warm, with jitter between runs and rate limiting to
//     protect the catalog file from refresh storms.
//
// Serve return values follow supervisor conventions: ctx.Err() for a
// requested shutdown, any other error for a crash the supervisor should
// restart. Both services implement fmt.Stringer so suture's event log
// names them.
package services
