// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

/*
Package aggregate builds the two API results on top of the remote client.

Character Statistics:

CollectCharacterStats walks the paginated /character collection one page at a
time. Each page is folded into per-page stats which are then summed into the
running total, so memory is bounded by a single page. The loop is a two-state
machine driven only by info.next:

	HasNext(url) --fetch+fold--> HasNext(next) | Done

Any failure aborts the walk and is returned unchanged; partial stats are never
returned.

Location Lookup:

FindLocation issues exactly one /location search with whichever of name and
type are non-empty and returns the first result. An empty or missing results
array is reported as a 404 *remote.Error.
*/
package aggregate
