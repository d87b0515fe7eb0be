// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

// flakyService is a controllable suture.Service for exercising the tree.
// It can be told to crash its first N runs or to return a fixed error on
// every run; otherwise it blocks until its context is canceled.
type flakyService struct {
	name     string
	starts   atomic.Int32
	failLeft atomic.Int32
	runErr   error
}

func newFlakyService(name string) *flakyService {
	return &flakyService{name: name}
}

// crashFirst makes the next n Serve calls return an error.
func (s *flakyService) crashFirst(n int) *flakyService {
	s.failLeft.Store(int32(n))
	return s
}

// alwaysReturn makes every Serve call return err immediately.
// Must be called before the service is handed to a supervisor.
func (s *flakyService) alwaysReturn(err error) *flakyService {
	s.runErr = err
	return s
}

func (s *flakyService) Serve(ctx context.Context) error {
	s.starts.Add(1)
	if s.failLeft.Add(-1) >= 0 {
		return errors.New(s.name + ": induced crash")
	}
	if s.runErr != nil {
		return s.runErr
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *flakyService) Starts() int { return int(s.starts.Load()) }

func (s *flakyService) String() string { return s.name }

// waitStarts polls until svc has been started at least want times.
// Polling keeps these tests stable on loaded CI machines.
func waitStarts(t *testing.T, svc *flakyService, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if svc.Starts() >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("%s: started %d times, want at least %d", svc, svc.Starts(), want)
}

func testSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
