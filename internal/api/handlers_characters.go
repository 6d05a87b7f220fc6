// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/multiverse-stats/internal/logging"
)

// Characters handles GET /characters.
//
// It walks every page of the character collection and returns:
//
//	{"character_names": [...], "human_count": n, "not_human_count": n,
//	 "dead_count": n, "alive_count": n}
//
// Any upstream failure aborts the walk; no partial statistics are returned.
func (h *Handler) Characters(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	stats, err := h.aggregator.CollectCharacterStats(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int("characters", stats.Total()).
		Dur("duration", time.Since(start)).
		Msg("Character statistics aggregated")

	respondJSON(w, http.StatusOK, stats)
}
