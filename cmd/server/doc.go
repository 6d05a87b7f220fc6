// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

/*
Package main is the entry point for the Multiverse Stats server.

The server answers two read-only questions about the public Rick and Morty
REST API: per-species and per-status counts of living characters
(GET /characters) and the first location matching a name or type
(GET /location).

# Application Architecture

	RootSupervisor ("multiverse-stats")
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: koanf v2 defaults, config file, then environment variables
 2. Logging: zerolog with JSON or console output
 3. Remote client: one GET per call, optional gobreaker circuit breaker
 4. Aggregator: page walking and fold for /characters, lookup for /location
 5. Router: chi with request ID, access log, metrics, CORS and security headers
 6. Supervisor tree: suture v4, HTTP server as a supervised service

# Configuration

	RICK_AND_MORTY_BASE_URL  API root (default https://rickandmortyapi.com/api)
	RICK_AND_MORTY_TIMEOUT   per-call timeout (default 10s)
	REMOTE_BREAKER_ENABLED   circuit breaker on/off (default true)
	HTTP_HOST, HTTP_PORT     listen address (default 0.0.0.0:5000)
	CORS_ORIGINS             comma-separated allowed origins (default *)
	LOG_LEVEL, LOG_FORMAT    zerolog level and json|console

A YAML file is read from CONFIG_PATH or ./config.yaml when present.

# Shutdown

SIGINT or SIGTERM cancels the root context. The HTTP server drains in-flight
requests for up to HTTP_SHUTDOWN_TIMEOUT before the process exits.
*/
package main
