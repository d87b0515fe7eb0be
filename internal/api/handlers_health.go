// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/videographus/internal/models"
)

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns health status including catalog file readability, cache hit rate, and uptime. Reports degraded (still 200) when the catalog file is unreadable; use the readiness probe for a 503 signal.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	// Readability is probed per request: the catalog file can disappear or
	// reappear between deploys without a process restart.
	catalogReadable := h.engine != nil && h.engine.Ping() == nil

	status := "healthy"
	if !catalogReadable {
		status = "degraded"
	}

	hitRate := 0.0
	if h.cache != nil {
		hitRate = h.cache.HitRate()
	}

	health := models.HealthStatus{
		Status:          status,
		Version:         "1.0.0",
		CatalogReadable: catalogReadable,
		CacheHitRate:    hitRate,
		Uptime:          time.Since(h.startTime).Seconds(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the service is ready to handle traffic
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 OK only if the catalog file is readable and queries can be served. Returns 503 if not ready.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	catalogReadable := h.engine != nil && h.engine.Ping() == nil
	ready := catalogReadable

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"catalog_readable": catalogReadable,
			"ready_to_serve":   ready,
			"uptime":           time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
