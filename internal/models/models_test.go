// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestOptString_Unmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue string
	}{
		{"string", `{"f":"Rick"}`, true, "Rick"},
		{"empty string", `{"f":""}`, true, ""},
		{"escaped string", `{"f":"Mr. \"Poopy\" Butthole"}`, true, `Mr. "Poopy" Butthole`},
		{"null", `{"f":null}`, false, ""},
		{"true", `{"f":true}`, false, ""},
		{"false", `{"f":false}`, false, ""},
		{"number", `{"f":72}`, false, ""},
		{"zero", `{"f":0}`, false, ""},
		{"object", `{"f":{"a":1}}`, false, ""},
		{"array", `{"f":["x"]}`, false, ""},
		{"absent", `{}`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var v struct {
				F OptString `json:"f"`
			}
			if err := json.Unmarshal([]byte(tt.input), &v); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if v.F.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", v.F.Valid, tt.wantValid)
			}
			if v.F.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", v.F.Value, tt.wantValue)
			}
		})
	}
}

func TestOptString_Marshal(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(LocationResponse{Name: String("Earth (C-137)")})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"name":"Earth (C-137)","type":null}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestDecodeCharacter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		wantHuman bool
		wantAlive bool
		wantDead  bool
		wantName  bool
	}{
		{"human alive", `{"name":"Rick","species":"Human","status":"Alive"}`, true, true, false, true},
		{"alien dead", `{"name":"Birdperson","species":"Alien","status":"Dead"}`, false, false, true, true},
		{"lowercase human", `{"name":"Morty","species":"human","status":"alive"}`, false, false, false, true},
		{"unknown status", `{"name":"Jerry","species":"Human","status":"unknown"}`, true, false, false, true},
		{"boolean fields", `{"name":true,"species":true,"status":true}`, false, false, false, false},
		{"empty object", `{}`, false, false, false, false},
		{"not an object", `42`, false, false, false, false},
		{"null record", `null`, false, false, false, false},
		{"uppercase keys", `{"NAME":"Rick","SPECIES":"Human","STATUS":"Alive"}`, false, false, false, false},
		{"title-case keys", `{"Name":"Rick","Species":"Human","Status":"Dead"}`, false, false, false, false},
		{"mixed keys", `{"NAME":"Rick","species":"Human","Status":"Alive"}`, true, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := DecodeCharacter(json.RawMessage(tt.raw))
			if got := c.IsHuman(); got != tt.wantHuman {
				t.Errorf("IsHuman() = %v, want %v", got, tt.wantHuman)
			}
			if got := c.IsAlive(); got != tt.wantAlive {
				t.Errorf("IsAlive() = %v, want %v", got, tt.wantAlive)
			}
			if got := c.IsDead(); got != tt.wantDead {
				t.Errorf("IsDead() = %v, want %v", got, tt.wantDead)
			}
			if got := c.Name.NonEmpty(); got != tt.wantName {
				t.Errorf("Name.NonEmpty() = %v, want %v", got, tt.wantName)
			}
		})
	}
}

func TestLocation_UnmarshalKeepsExtraFields(t *testing.T) {
	t.Parallel()

	raw := `{"id":1,"name":"Earth (C-137)","type":"Planet","dimension":"Dimension C-137","residents":[]}`
	var loc Location
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !loc.Name.Equals("Earth (C-137)") {
		t.Errorf("Name = %+v, want Earth (C-137)", loc.Name)
	}
	if !loc.Type.Equals("Planet") {
		t.Errorf("Type = %+v, want Planet", loc.Type)
	}
	for _, key := range []string{"id", "dimension", "residents"} {
		if _, ok := loc.Extra[key]; !ok {
			t.Errorf("Extra missing key %q", key)
		}
	}
	if _, ok := loc.Extra["name"]; ok {
		t.Error("Extra should not contain name")
	}

	data, err := json.Marshal(loc.Projection())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"name":"Earth (C-137)","type":"Planet"}`; string(data) != want {
		t.Errorf("Projection JSON = %s, want %s", data, want)
	}
}

func TestLocation_UnmarshalRejectsNonObject(t *testing.T) {
	t.Parallel()

	var loc Location
	if err := json.Unmarshal([]byte(`"Earth"`), &loc); err == nil {
		t.Error("expected error decoding a string into Location")
	}
}

func TestPagedResponse_NextURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		wantNext string
		wantOK   bool
	}{
		{"next set", `{"info":{"next":"https://example.test/character?page=2"},"results":[]}`, "https://example.test/character?page=2", true},
		{"next null", `{"info":{"next":null},"results":[]}`, "", false},
		{"next absent", `{"info":{},"results":[]}`, "", false},
		{"info absent", `{"results":[]}`, "", false},
		{"next empty", `{"info":{"next":""}}`, "", false},
		{"next number", `{"info":{"next":2}}`, "", false},
		{"title-case next", `{"info":{"Next":"page-2"},"results":[]}`, "", false},
		{"title-case info", `{"Info":{"next":"page-2"},"results":[]}`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var page PagedResponse
			if err := json.Unmarshal([]byte(tt.raw), &page); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			next, ok := page.NextURL()
			if ok != tt.wantOK || next != tt.wantNext {
				t.Errorf("NextURL() = (%q, %v), want (%q, %v)", next, ok, tt.wantNext, tt.wantOK)
			}
		})
	}
}

func TestPagedResponse_ResultsKeyIsExact(t *testing.T) {
	t.Parallel()

	var page PagedResponse
	if err := json.Unmarshal([]byte(`{"RESULTS":[{"name":"Rick"}],"results":[{"name":"Morty"}]}`), &page); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(page.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(page.Results))
	}
	if c := DecodeCharacter(page.Results[0]); !c.Name.Equals("Morty") {
		t.Errorf("Results[0].name = %+v, want Morty", c.Name)
	}
}

func TestPagedResponse_RejectsWrongShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"top-level array", `[1,2]`},
		{"info is a string", `{"info":"page-2"}`},
		{"results is an object", `{"results":{"name":"Rick"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var page PagedResponse
			if err := json.Unmarshal([]byte(tt.raw), &page); err == nil {
				t.Errorf("Unmarshal(%s) expected error", tt.raw)
			}
		})
	}
}

func TestCharacterStats_Add(t *testing.T) {
	t.Parallel()

	total := NewCharacterStats()
	total.Add(&CharacterStats{CharacterNames: []string{"Rick"}, HumanCount: 1, AliveCount: 1})
	total.Add(&CharacterStats{CharacterNames: []string{"Birdperson"}, NotHumanCount: 1, DeadCount: 1})

	if len(total.CharacterNames) != 2 || total.CharacterNames[0] != "Rick" || total.CharacterNames[1] != "Birdperson" {
		t.Errorf("CharacterNames = %v, want [Rick Birdperson]", total.CharacterNames)
	}
	if total.Total() != 2 {
		t.Errorf("Total() = %d, want 2", total.Total())
	}
	if total.AliveCount != 1 || total.DeadCount != 1 {
		t.Errorf("alive/dead = %d/%d, want 1/1", total.AliveCount, total.DeadCount)
	}
}

func TestCharacterStats_EmptyNamesEncodeAsArray(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewCharacterStats())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"character_names":[],"human_count":0,"not_human_count":0,"dead_count":0,"alive_count":0}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
