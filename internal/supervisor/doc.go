// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

// Package supervisor arranges the application's long-running services
// under a suture v4 supervision tree.
//
// The tree has a fixed two-layer shape:
//
//	videographus (root)
//	├── data-layer   catalog statistics refresher
//	└── api-layer    HTTP server
//
// The layers exist for failure isolation. When the statistics refresher
// crash-loops (unreadable catalog, sampler failures), the data-layer
// supervisor backs off and restarts it while the api-layer keeps serving
// queries; /api/v1/stats degrades to on-demand sampling until the
// refresher recovers.
//
// Services are anything satisfying suture.Service:
//
//	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
//	tree.AddDataService(refresher)
//	tree.AddAPIService(httpService)
//	err = tree.Serve(ctx) // blocks until ctx is canceled
//
// A Serve return of nil removes the service, suture.ErrDoNotRestart
// stops it for good, any other error triggers a restart governed by
// TreeConfig's failure threshold, decay, and backoff. Supervision events
// are logged through sutureslog, which feeds the package's slog adapter
// and therefore the global zerolog output.
package supervisor
