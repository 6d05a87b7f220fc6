// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

/*
Package middleware provides HTTP middleware components for the application.

All middleware use the standard func(http.Handler) http.Handler shape so they
plug directly into chi's r.Use.

Key Components:

  - RequestID: X-Request-ID propagation into the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge by route pattern
  - SecurityHeaders: nosniff, frame denial, referrer policy, HSTS over HTTPS
  - AccessLog: one zerolog line per request, warn level when slow

Middleware Stack:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))

Thread Safety:

All middleware are safe for concurrent use. Per-request state lives in the
wrapped ResponseWriter and the request context.
*/
package middleware
