// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and are
exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:5000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in flight (gauge)

Remote API Metrics:
  - remote_requests_total: Calls to the Rick and Morty API (counter)
    Labels: outcome (success, transport, timeout, http_status, invalid_json)
  - remote_request_duration_seconds: Call latency (histogram)

Aggregation Metrics:
  - aggregate_pages_fetched_total: Character pages folded (counter)
  - aggregate_records_folded_total: Character records classified (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests by result (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures: Current failure streak (gauge)
  - circuit_breaker_state_transitions_total: Transitions (counter)
    Labels: name, from_state, to_state

# Usage Example

	start := time.Now()
	body, err := client.Get(ctx, url)
	metrics.RecordRemoteRequest("success", time.Since(start))

# Alerting

	- alert: RickAndMortyAPIDown
	  expr: circuit_breaker_state{name="rick-and-morty-api"} == 2
	  for: 1m

# Thread Safety

All metric operations are thread-safe. Prometheus collectors use atomic
operations internally.
*/
package metrics
