// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package api

import "net/http"

// breakerDisabled is reported by /health/ready when no breaker is configured.
const breakerDisabled = "disabled"

// LiveResponse is the body of GET /health/live.
type LiveResponse struct {
	Status string `json:"status"`
}

// ReadyResponse is the body of GET /health/ready.
type ReadyResponse struct {
	Status  string `json:"status"`
	Breaker string `json:"breaker"`
}

// HealthLive handles liveness probes. It returns 200 whenever the process
// can serve HTTP, regardless of the remote API.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, LiveResponse{Status: "ok"})
}

// HealthReady handles readiness probes.
//
// The service has no local dependencies, so it is always ready; the breaker
// state is reported so operators can see when the remote API is failing fast.
// The remote API is never called from here.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	state := breakerDisabled
	if h.breaker != nil {
		state = h.breaker.State()
	}

	respondJSON(w, http.StatusOK, ReadyResponse{
		Status:  "ready",
		Breaker: state,
	})
}
