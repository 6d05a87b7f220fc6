// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

/*
Package remote is the HTTP client layer for the Rick and Morty REST API.

Every failure of a remote interaction is reported as a single error type, *Error,
which carries a Kind, a human-readable Message, the HTTP StatusCode the boundary
should answer with, and an optional structured Payload:

	body, err := client.Get(ctx, client.BaseURL()+"/character")
	if remoteErr, ok := remote.AsError(err); ok {
	    // remoteErr.StatusCode, remoteErr.Message
	}

Key Components:

  - Client: one GET per call, fixed timeout, no retries, no caching
  - BreakerClient: sony/gobreaker wrapper that fails fast when the API is down
  - Getter: the interface both satisfy and that the aggregator depends on

Status Mapping:

  - transport failure: 503
  - timeout: 504
  - remote 4xx/5xx: remote status
  - malformed JSON: 502
  - empty lookup result: 404
  - breaker open: 503
*/
package remote
