// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/internmatch/internal/models"
)

// Health status values.
const (
	healthHealthy  = "healthy"
	healthDegraded = "degraded"
	healthReady    = "ready"
	healthNotReady = "not_ready"
)

// breakerOpen matches the state name reported by gobreaker.
const breakerOpen = "open"

// Health handles GET /api/v1/health
// Returns status, catalog size and remote scorer state. An open breaker
// reports degraded: recommendations still work but come from the local scorer.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	health := models.HealthStatus{
		Status:         healthHealthy,
		Version:        h.version,
		Uptime:         time.Since(h.startTime).Round(time.Second).String(),
		CatalogSize:    h.engine.Catalog().Len(),
		RemoteEnabled:  h.engine.RemoteEnabled(),
		RemoteProvider: h.engine.ProviderName(),
	}
	if h.breaker != nil {
		health.BreakerState = h.breaker.BreakerState()
	}
	if health.CatalogSize == 0 || health.BreakerState == breakerOpen {
		health.Status = healthDegraded
	}

	respondSuccess(w, health, start)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK once a non-empty catalog is loaded. The remote scorer is
// not required: without it the service answers from the local scorer.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	catalogSize := h.engine.Catalog().Len()
	ready := catalogSize > 0

	statusCode := http.StatusOK
	status := healthReady
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = healthNotReady
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"catalog_size":   catalogSize,
			"ready_to_serve": ready,
			"uptime":         time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}
