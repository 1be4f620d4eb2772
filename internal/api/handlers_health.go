// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"net/http"
	"time"
)

// LiveResponse is the body of the liveness check.
type LiveResponse struct {
	Alive  bool    `json:"alive"`
	Uptime float64 `json:"uptime"`
}

// ReadyResponse is the body of the readiness check.
type ReadyResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
	K       int    `json:"k"`
}

// HealthLive handles liveness check requests (Kubernetes-style).
// Returns 200 OK as long as the process is serving.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, LiveResponse{
		Alive:  true,
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness check requests (Kubernetes-style).
// Returns 200 OK once the catalog is loaded and clustered, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	if h.store == nil || h.store.Len() == 0 {
		respondJSON(w, http.StatusServiceUnavailable, ReadyResponse{Status: "not_ready"})
		return
	}

	respondJSON(w, http.StatusOK, ReadyResponse{
		Status:  "ready",
		Records: h.store.Len(),
		K:       h.store.K(),
	})
}
