// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package models

import (
	"github.com/goccy/go-json"
)

// OptString is a JSON field that is only meaningful when it holds a string.
//
// Decoding never fails: null, booleans, numbers, objects and arrays all leave
// Valid false. An absent field also leaves Valid false.
type OptString struct {
	Value string
	Valid bool
}

// String returns a valid OptString holding s.
func String(s string) OptString {
	return OptString{Value: s, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptString) UnmarshalJSON(data []byte) error {
	*o = OptString{}
	if len(data) == 0 || data[0] != '"' {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil //nolint:nilerr // malformed strings are treated as absent
	}
	o.Value = s
	o.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler. Invalid values encode as null.
func (o OptString) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Equals reports whether o is a string exactly equal to s.
func (o OptString) Equals(s string) bool {
	return o.Valid && o.Value == s
}

// NonEmpty reports whether o is a string with at least one character.
func (o OptString) NonEmpty() bool {
	return o.Valid && o.Value != ""
}
