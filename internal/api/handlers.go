// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package api

import (
	"context"

	"github.com/tomtom215/multiverse-stats/internal/aggregate"
	"github.com/tomtom215/multiverse-stats/internal/models"
)

// Aggregator is the part of aggregate.Service the handlers depend on.
type Aggregator interface {
	CollectCharacterStats(ctx context.Context) (*models.CharacterStats, error)
	FindLocation(ctx context.Context, q aggregate.LocationQuery) (*models.Location, error)
}

// BreakerStater reports the remote circuit breaker state.
type BreakerStater interface {
	State() string
}

// Handler serves the HTTP endpoints.
type Handler struct {
	aggregator Aggregator
	breaker    BreakerStater
}

// NewHandler creates a Handler. breaker may be nil when the circuit breaker
// is disabled.
func NewHandler(aggregator Aggregator, breaker BreakerStater) *Handler {
	return &Handler{
		aggregator: aggregator,
		breaker:    breaker,
	}
}
