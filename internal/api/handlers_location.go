// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package api

import (
	"net/http"

	"github.com/tomtom215/multiverse-stats/internal/aggregate"
	"github.com/tomtom215/multiverse-stats/internal/validation"
)

// Location handles GET /location?name=&type=.
//
// Both parameters are optional. The first matching location is projected to
// {"name": ..., "type": ...}; fields absent upstream are null.
func (h *Handler) Location(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := aggregate.LocationQuery{
		Name: query.Get("name"),
		Type: query.Get("type"),
	}

	if verr := validation.ValidateStruct(q); verr != nil {
		respondBadRequest(w, r, verr.Error())
		return
	}

	loc, err := h.aggregator.FindLocation(r.Context(), q)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, loc.Projection())
}
