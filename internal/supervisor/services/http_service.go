// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// HTTPServer is the slice of *http.Server this service needs. Tests swap in
// a controllable fake; production passes the real server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService adapts a blocking ListenAndServe server to suture's
// context-driven Serve contract.
//
// ListenAndServe runs on its own goroutine while Serve blocks on the context.
// When the supervisor cancels, the service drains in-flight requests through
// Shutdown under a fresh timeout context (the canceled one would abort the
// drain immediately), then waits for the listen goroutine to exit so no
// goroutine outlives the service.
type HTTPServerService struct {
	server   HTTPServer
	drainFor time.Duration
	logger   zerolog.Logger
	name     string
}

// NewHTTPServerService wraps server for supervision. drainFor bounds the
// graceful-shutdown window; non-positive values get a 10s default.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHTTPServerService(server HTTPServer, drainFor time.Duration, logger zerolog.Logger) *HTTPServerService {
	if drainFor <= 0 {
		drainFor = 10 * time.Second
	}
	return &HTTPServerService{
		server:   server,
		drainFor: drainFor,
		logger:   logger.With().Str("service", "http-server").Logger(),
		name:     "http-server",
	}
}

// Serve implements suture.Service. It returns nil only when the server
// stopped on its own without error; a supervisor-driven stop returns the
// context's error so suture knows not to restart.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		err := h.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	h.logger.Info().Msg("http server listening")

	select {
	case err := <-listenErr:
		if err != nil {
			// Bind failure or a mid-flight crash; suture restarts us.
			return fmt.Errorf("http listen: %w", err)
		}
		return nil

	case <-ctx.Done():
		drainCtx, cancel := context.WithTimeout(context.Background(), h.drainFor)
		defer cancel()

		h.logger.Info().Dur("drain_window", h.drainFor).Msg("http server draining")
		if err := h.server.Shutdown(drainCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}

		<-listenErr
		h.logger.Info().Msg("http server stopped")
		return ctx.Err()
	}
}

// String names the service in supervision events.
func (h *HTTPServerService) String() string {
	return h.name
}
