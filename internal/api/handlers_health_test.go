// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/tomtom215/videographus/internal/cache"
	"github.com/tomtom215/videographus/internal/catalog"
)

func TestHealthHealthy(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, simpleCatalog(3))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := executeRequest(handler.Health, req)

	assertStatusCode(t, w.Code, http.StatusOK, "Health")
	response := decodeAPIResponse(t, w, "Health")
	assertResponseSuccess(t, response, "Health")

	dataMap := assertMapData(t, response, "Health")
	if got := dataMap["status"]; got != "healthy" {
		t.Errorf("health status = %v, want healthy", got)
	}
	if got := dataMap["version"]; got != "1.0.0" {
		t.Errorf("version = %v, want 1.0.0", got)
	}
	if got := dataMap["catalog_readable"]; got != true {
		t.Errorf("catalog_readable = %v, want true", got)
	}
	if _, ok := dataMap["cache_hit_rate"].(float64); !ok {
		t.Errorf("cache_hit_rate missing or not numeric: %v", dataMap["cache_hit_rate"])
	}
	if uptime, ok := dataMap["uptime_seconds"].(float64); !ok || uptime < 0 {
		t.Errorf("uptime_seconds = %v, want non-negative number", dataMap["uptime_seconds"])
	}
}

// TestHealthDegraded verifies an unreadable catalog degrades the liveness
// report without failing it: the process is alive even when the data is gone.
func TestHealthDegraded(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, simpleCatalog(3))
	if err := os.Remove(handler.config.Catalog.Path); err != nil {
		t.Fatalf("remove catalog: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := executeRequest(handler.Health, req)

	assertStatusCode(t, w.Code, http.StatusOK, "degraded Health")
	response := decodeAPIResponse(t, w, "degraded Health")

	dataMap := assertMapData(t, response, "degraded Health")
	if got := dataMap["status"]; got != "degraded" {
		t.Errorf("health status = %v, want degraded", got)
	}
	if got := dataMap["catalog_readable"]; got != false {
		t.Errorf("catalog_readable = %v, want false", got)
	}
}

func TestHealthNilEngine(t *testing.T) {
	t.Parallel()

	handler := &Handler{config: testConfig("unused")}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := executeRequest(handler.Health, req)

	// Liveness never hard-fails on missing wiring; it reports degraded.
	assertStatusCode(t, w.Code, http.StatusOK, "nil engine Health")
	response := decodeAPIResponse(t, w, "nil engine Health")
	dataMap := assertMapData(t, response, "nil engine Health")
	if got := dataMap["status"]; got != "degraded" {
		t.Errorf("health status = %v, want degraded", got)
	}
}

func TestHealthMethodNotAllowed(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, simpleCatalog(3))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/health", nil)
	w := executeRequest(handler.Health, req)

	assertStatusCode(t, w.Code, http.StatusMethodNotAllowed, "DELETE health")
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, simpleCatalog(3))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil)
	w := executeRequest(handler.HealthReady, req)

	assertStatusCode(t, w.Code, http.StatusOK, "HealthReady")
	response := decodeAPIResponse(t, w, "HealthReady")
	if response.Status != "ready" {
		t.Errorf("status = %q, want ready", response.Status)
	}

	dataMap := assertMapData(t, response, "HealthReady")
	for _, key := range []string{"catalog_readable", "ready_to_serve", "uptime"} {
		if _, ok := dataMap[key]; !ok {
			t.Errorf("readiness data missing key %q", key)
		}
	}
	if got := dataMap["ready_to_serve"]; got != true {
		t.Errorf("ready_to_serve = %v, want true", got)
	}
}

func TestHealthReadyNotReady(t *testing.T) {
	t.Parallel()

	cfg := testConfig("/nonexistent/videos.csv")
	c := cache.New(cfg.Cache.TTL, cfg.Cache.Capacity)
	t.Cleanup(c.Stop)
	engine := catalog.NewEngine(cfg.Catalog, c)
	sampler := catalog.NewSampler(cfg.Catalog, cfg.Stats)
	handler := NewHandler(engine, sampler, c, cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil)
	w := executeRequest(handler.HealthReady, req)

	assertStatusCode(t, w.Code, http.StatusServiceUnavailable, "not ready")
	response := decodeAPIResponse(t, w, "not ready")
	if response.Status != "not_ready" {
		t.Errorf("status = %q, want not_ready", response.Status)
	}

	dataMap := assertMapData(t, response, "not ready")
	if got := dataMap["ready_to_serve"]; got != false {
		t.Errorf("ready_to_serve = %v, want false", got)
	}
}

// TestHealthReflectsCacheActivity verifies the hit-rate figure moves once the
// query cache sees traffic.
func TestHealthReflectsCacheActivity(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, simpleCatalog(5))

	// One miss, one hit: 50% hit rate.
	for i := 0; i < 2; i++ {
		w := executeRequest(handler.Videos,
			httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil))
		assertStatusCode(t, w.Code, http.StatusOK, "warm-up query")
	}

	w := executeRequest(handler.Health,
		httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	response := decodeAPIResponse(t, w, "Health after traffic")
	dataMap := assertMapData(t, response, "Health after traffic")

	if got := dataMap["cache_hit_rate"].(float64); got != 50.0 {
		t.Errorf("cache_hit_rate = %v, want 50.0", got)
	}
}
