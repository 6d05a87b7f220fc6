// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package models

import (
	"github.com/goccy/go-json"
)

// Location is a record from the /location search.
//
// Name and Type are the only fields the API exposes; everything else the
// remote sends (id, dimension, residents, url, created...) lands in Extra.
type Location struct {
	Name  OptString
	Type  OptString
	Extra map[string]json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler. The input must be a JSON object.
func (l *Location) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}

	*l = Location{Extra: make(map[string]json.RawMessage, len(fields))}
	for key, raw := range fields {
		switch key {
		case "name":
			_ = l.Name.UnmarshalJSON(raw)
		case "type":
			_ = l.Type.UnmarshalJSON(raw)
		default:
			l.Extra[key] = raw
		}
	}
	return nil
}

// LocationResponse is the projection returned by GET /location.
type LocationResponse struct {
	Name OptString `json:"name"`
	Type OptString `json:"type"`
}

// Projection drops every field except name and type.
func (l *Location) Projection() LocationResponse {
	return LocationResponse{Name: l.Name, Type: l.Type}
}
