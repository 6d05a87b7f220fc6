// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package aggregate

import (
	"context"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/tomtom215/multiverse-stats/internal/models"
	"github.com/tomtom215/multiverse-stats/internal/remote"
)

// NoMatchingLocation is the message of the 404 returned by FindLocation.
const NoMatchingLocation = "No matching location found"

// LocationQuery holds the optional search filters. Empty fields are not sent.
type LocationQuery struct {
	Name string `query:"name" validate:"max=200"`
	Type string `query:"type" validate:"max=200"`
}

// Encode renders the query string, name before type.
func (q LocationQuery) Encode() string {
	values := url.Values{}
	if q.Name != "" {
		values.Set("name", q.Name)
	}
	if q.Type != "" {
		values.Set("type", q.Type)
	}
	return values.Encode()
}

// locationURL is the search URL for q. With no filters it carries no "?".
func (s *Service) locationURL(q LocationQuery) string {
	reqURL := s.baseURL + locationPath
	if encoded := q.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}
	return reqURL
}

// FindLocation returns the first location matching q.
// Multiple matches are not disambiguated: element 0 wins.
func (s *Service) FindLocation(ctx context.Context, q LocationQuery) (*models.Location, error) {
	body, err := s.getter.Get(ctx, s.locationURL(q))
	if err != nil {
		return nil, err
	}

	var page models.PagedResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, remote.UnexpectedShape(err)
	}
	if len(page.Results) == 0 {
		return nil, remote.NotFound(NoMatchingLocation)
	}

	var loc models.Location
	if err := json.Unmarshal(page.Results[0], &loc); err != nil {
		return nil, remote.UnexpectedShape(err)
	}
	return &loc, nil
}
