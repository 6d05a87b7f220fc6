// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package api

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/multiverse-stats/internal/logging"
	"github.com/tomtom215/multiverse-stats/internal/remote"
)

// externalAPISource marks error envelopes caused by the Rick and Morty API.
const externalAPISource = "external_api"

// internalErrorMessage is the fixed message of every unhandled failure.
const internalErrorMessage = "Internal server error"

// ExternalAPIErrorResponse is the body returned for a *remote.Error.
type ExternalAPIErrorResponse struct {
	Error      string `json:"error"`
	Source     string `json:"source"`
	StatusCode int    `json:"status_code"`
}

// ErrorResponse is the generic error body: invalid input, unknown routes,
// unexpected failures and recovered panics.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// respondJSON writes v as JSON with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error","details":"failed to encode response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError translates err into the matching error envelope.
//
// A *remote.Error answers with its own status (500 when zero) and message.
// Anything else is an unexpected failure and answers 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	if remoteErr, ok := remote.AsError(err); ok {
		respondRemoteError(w, r, remoteErr)
		return
	}
	respondInternalError(w, r, err.Error())
}

// respondRemoteError writes the external API error envelope.
func respondRemoteError(w http.ResponseWriter, r *http.Request, remoteErr *remote.Error) {
	status := remoteErr.StatusCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	logging.Ctx(r.Context()).Warn().
		Str("kind", remoteErr.Kind.String()).
		Int("status", status).
		Str("path", r.URL.Path).
		Err(remoteErr.Unwrap()).
		Msg(remoteErr.Message)

	respondJSON(w, status, ExternalAPIErrorResponse{
		Error:      remoteErr.Message,
		Source:     externalAPISource,
		StatusCode: status,
	})
}

// respondInternalError writes the 500 envelope carrying details.
func respondInternalError(w http.ResponseWriter, r *http.Request, details string) {
	logging.Ctx(r.Context()).Error().
		Str("path", r.URL.Path).
		Str("details", details).
		Msg(internalErrorMessage)

	respondJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   internalErrorMessage,
		Details: details,
	})
}

// respondBadRequest writes a 400 generic envelope for rejected input.
func respondBadRequest(w http.ResponseWriter, r *http.Request, details string) {
	logging.Ctx(r.Context()).Debug().
		Str("path", r.URL.Path).
		Str("details", details).
		Msg("Rejected request")

	respondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   "Invalid request",
		Details: details,
	})
}

// panicDetails renders a recovered panic value for the error envelope.
func panicDetails(rec any) string {
	if err, ok := rec.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(rec)
}
