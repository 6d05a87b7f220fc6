// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package models

import (
	"github.com/goccy/go-json"
)

// Literal values the remote API uses for species and status.
const (
	SpeciesHuman = "Human"
	StatusAlive  = "Alive"
	StatusDead   = "Dead"
)

// Character holds the fields used for statistics.
type Character struct {
	Name    OptString
	Species OptString
	Status  OptString
}

// DecodeCharacter decodes one element of a results array. Keys are matched
// exactly: "Name" or "SPECIES" do not count as name or species.
// A record that is not a JSON object is returned with every field absent.
func DecodeCharacter(raw json.RawMessage) Character {
	fields, err := decodeObject(raw)
	if err != nil {
		return Character{}
	}

	var c Character
	if v, ok := fields["name"]; ok {
		_ = c.Name.UnmarshalJSON(v)
	}
	if v, ok := fields["species"]; ok {
		_ = c.Species.UnmarshalJSON(v)
	}
	if v, ok := fields["status"]; ok {
		_ = c.Status.UnmarshalJSON(v)
	}
	return c
}

// IsHuman reports an exact, case-sensitive match on "Human".
func (c Character) IsHuman() bool {
	return c.Species.Equals(SpeciesHuman)
}

// IsAlive reports status exactly "Alive".
func (c Character) IsAlive() bool {
	return c.Status.Equals(StatusAlive)
}

// IsDead reports status exactly "Dead".
func (c Character) IsDead() bool {
	return c.Status.Equals(StatusDead)
}
