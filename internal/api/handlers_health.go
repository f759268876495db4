// Cropwise - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cropwise

package api

import (
	"net/http"
	"time"
)

// HomeBanner is the body of GET /.
const HomeBanner = "Crop Recommendation System is running!"

// LiveResponse is the body of /health/live.
type LiveResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadyResponse is the body of /health/ready.
type ReadyResponse struct {
	Status string `json:"status"`
	Rows   int    `json:"rows"`
	Crops  int    `json:"crops"`
	Error  string `json:"error,omitempty"`
}

// Home handles GET /.
func (h *Handler) Home(w http.ResponseWriter, _ *http.Request) {
	respondText(w, http.StatusOK, HomeBanner)
}

// HealthLive handles liveness probes. It returns 200 while the process runs.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &LiveResponse{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probes. It returns 200 once a reference
// table is attached, even an empty one, and 503 before that.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	m := h.matcher.Load()
	if m == nil {
		respondJSON(w, http.StatusServiceUnavailable, &ReadyResponse{
			Status: "not_ready",
			Error:  ErrNotReady.Error(),
		})
		return
	}

	table := m.Table()
	respondJSON(w, http.StatusOK, &ReadyResponse{
		Status: "ready",
		Rows:   table.Len(),
		Crops:  len(table.Crops()),
	})
}
