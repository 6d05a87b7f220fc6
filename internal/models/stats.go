// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package models

// CharacterStats is the aggregate returned by GET /characters.
//
// Invariants:
//   - HumanCount + NotHumanCount equals the number of characters processed
//   - AliveCount + DeadCount never exceeds it ("unknown" counts toward neither)
type CharacterStats struct {
	CharacterNames []string `json:"character_names"`
	HumanCount     int      `json:"human_count"`
	NotHumanCount  int      `json:"not_human_count"`
	DeadCount      int      `json:"dead_count"`
	AliveCount     int      `json:"alive_count"`
}

// NewCharacterStats returns empty stats whose names encode as [] rather than null.
func NewCharacterStats() *CharacterStats {
	return &CharacterStats{CharacterNames: []string{}}
}

// Add sums other into s, appending names in order.
func (s *CharacterStats) Add(other *CharacterStats) {
	if s.CharacterNames == nil {
		s.CharacterNames = []string{}
	}
	s.CharacterNames = append(s.CharacterNames, other.CharacterNames...)
	s.HumanCount += other.HumanCount
	s.NotHumanCount += other.NotHumanCount
	s.DeadCount += other.DeadCount
	s.AliveCount += other.AliveCount
}

// Total is the number of characters folded into s.
func (s *CharacterStats) Total() int {
	return s.HumanCount + s.NotHumanCount
}
