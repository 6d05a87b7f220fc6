// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// PageInfo carries the pagination pointer of a PagedResponse.
type PageInfo struct {
	Next OptString
}

// UnmarshalJSON implements json.Unmarshaler. Only the exact key "next" is read.
func (p *PageInfo) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}
	*p = PageInfo{}
	if raw, ok := fields["next"]; ok {
		_ = p.Next.UnmarshalJSON(raw)
	}
	return nil
}

// PagedResponse is the envelope the API wraps every collection in.
// Results are kept raw so each record is decoded independently.
type PagedResponse struct {
	Info    PageInfo
	Results []json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler. Keys are matched exactly, so
// "Info" or "RESULTS" are ignored like any other unknown key. A present,
// non-null info must be an object and results must be an array.
func (p *PagedResponse) UnmarshalJSON(data []byte) error {
	fields, err := decodeObject(data)
	if err != nil {
		return err
	}

	*p = PagedResponse{}
	if raw, ok := fields["info"]; ok {
		if err := json.Unmarshal(raw, &p.Info); err != nil {
			return fmt.Errorf("info: %w", err)
		}
	}
	if raw, ok := fields["results"]; ok {
		if err := json.Unmarshal(raw, &p.Results); err != nil {
			return fmt.Errorf("results: %w", err)
		}
	}
	return nil
}

// decodeObject reads a JSON object into its raw members, keyed exactly as sent.
// null yields an empty map.
func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// NextURL returns the next page URL, or false when this is the last page.
// A missing, null, non-string or empty next ends pagination.
func (p *PagedResponse) NextURL() (string, bool) {
	if !p.Info.Next.NonEmpty() {
		return "", false
	}
	return p.Info.Next.Value, true
}
