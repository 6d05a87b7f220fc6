// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

/*
Package api provides the HTTP boundary of Multiverse Stats.

Endpoints:

  - GET /characters: aggregated statistics over every character page
  - GET /location?name=&type=: the first matching location, projected to name/type
  - GET /health/live, GET /health/ready: probes (never call the remote API)
  - GET /metrics: Prometheus exposition

Error Envelopes:

A *remote.Error is answered with its own status and

	{"error": "<message>", "source": "external_api", "status_code": <status>}

Everything else (unexpected errors, recovered panics) is answered 500 with

	{"error": "Internal server error", "details": "<text>"}

Invalid query parameters and unknown routes use the same {error, details}
shape with 400, 404 or 405.

Usage Example:

	handler := api.NewHandler(aggregate.NewService(getter, cfg.Remote.BaseURL), breaker)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromOrigins(cfg.Security.CORSOrigins))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
