// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

/*
Package models defines the data structures exchanged with the Rick and Morty API
and returned by the HTTP endpoints.

Remote records are loosely structured: any field may be missing, null, or of an
unexpected JSON type. Fields are therefore decoded into OptString, which never
fails to decode and is only Valid when the JSON value is a string.

Key Components:

  - OptString: optional string field with explicit type checking
  - Character: remote character record (name, species, status)
  - Location: remote location record (name, type, plus ignored extra fields)
  - PagedResponse: remote envelope with results and info.next
  - CharacterStats: aggregate returned by GET /characters
*/
package models
