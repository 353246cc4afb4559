// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/debatelive/internal/models"
)

func (h *Handler) healthStatus(status string) models.HealthStatus {
	health := models.HealthStatus{
		Status:    status,
		Version:   Version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Timestamp: time.Now().UTC(),
		Streams:   len(h.store.EventIDs()),
	}
	if h.wsHub != nil {
		health.ConnectedClients = h.wsHub.GetClientCount()
		health.Subscriptions = h.wsHub.Registry().Count()
		health.Topics = h.wsHub.TopicCount()
	}
	return health
}

// Health handles health check requests.
//
// @Summary Get system health status
// @Description Returns version, uptime and connection counts
// @Tags Core
// @Produce json
// @Success 200 {object} models.Response{data=models.HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondOK(w, h.healthStatus("healthy"), "debate backend is running")
}

// HealthLive handles liveness checks.
// Returns 200 OK if the process is alive, regardless of dependencies.
//
// @Summary Liveness check
// @Tags Core
// @Produce json
// @Success 200 {object} models.Response "Service is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondOK(w, map[string]any{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, "")
}

// HealthReady handles readiness checks.
// Returns 503 while the WebSocket hub is at capacity or missing.
//
// @Summary Readiness check
// @Tags Core
// @Produce json
// @Success 200 {object} models.Response{data=models.HealthStatus} "Service is ready"
// @Failure 503 {object} models.Response{data=models.HealthStatus} "Hub at capacity"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.wsHub != nil && !h.wsHub.Full()
	if !ready {
		respondJSON(w, http.StatusServiceUnavailable, &models.Response{
			Success: false,
			Message: "not ready",
			Data:    h.healthStatus("not_ready"),
		})
		return
	}
	respondOK(w, h.healthStatus("ready"), "")
}
