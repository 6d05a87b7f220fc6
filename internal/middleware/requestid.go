// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package middleware

import (
	"net/http"

	"github.com/tomtom215/multiverse-stats/internal/logging"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"

	// CorrelationIDHeader is honored when an upstream caller supplies one.
	CorrelationIDHeader = "X-Correlation-ID"

	// maxIDLength bounds client-supplied IDs before they reach the logs.
	maxIDLength = 128
)

// RequestID adds a request ID to each request.
//
// An incoming X-Request-ID is reused, otherwise a UUID is generated. The ID is
// echoed in the response header and stored in the context, where logging.Ctx
// picks it up. A caller's X-Correlation-ID is propagated the same way; when
// absent a short one is generated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := sanitizeID(r.Header.Get(RequestIDHeader))
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}
		correlationID := sanitizeID(r.Header.Get(CorrelationIDHeader))
		if correlationID == "" {
			correlationID = logging.GenerateCorrelationID()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithCorrelationID(ctx, correlationID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sanitizeID drops IDs that are too long or contain non-printable characters.
func sanitizeID(id string) string {
	if len(id) > maxIDLength {
		return ""
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return ""
		}
	}
	return id
}
