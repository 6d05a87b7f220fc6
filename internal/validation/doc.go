// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

/*
Package validation wraps go-playground/validator for inbound request values.

A single validator instance is built lazily and shared. Struct tags declare the
constraints; the `query` tag names the field in messages:

	type LocationQuery struct {
	    Name string `query:"name" validate:"max=200"`
	}

	if verr := validation.ValidateStruct(q); verr != nil {
	    // verr.Error() == "name must be at most 200 characters"
	}
*/
package validation
