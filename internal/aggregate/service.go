// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package aggregate

import (
	"strings"

	"github.com/tomtom215/multiverse-stats/internal/remote"
)

const (
	characterPath = "/character"
	locationPath  = "/location"
)

// Service aggregates data from the Rick and Morty API.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	getter  remote.Getter
	baseURL string
}

// NewService creates a Service that fetches through getter against baseURL.
func NewService(getter remote.Getter, baseURL string) *Service {
	return &Service{
		getter:  getter,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}
