// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package remote

import (
	"errors"
	"net/http"
)

// ErrorKind classifies how a remote interaction failed.
type ErrorKind int

const (
	// KindTransport is a network-level failure (DNS, refused, reset).
	KindTransport ErrorKind = iota + 1
	// KindTimeout means the fixed request budget elapsed.
	KindTimeout
	// KindHTTPStatus means the remote answered with a 4xx/5xx status.
	KindHTTPStatus
	// KindInvalidJSON means the body could not be parsed as JSON.
	KindInvalidJSON
	// KindUnexpectedShape means the JSON parsed but not into the expected envelope.
	KindUnexpectedShape
	// KindNotFound means a lookup produced no results.
	KindNotFound
	// KindCircuitOpen means the circuit breaker rejected the call.
	KindCircuitOpen
)

// DefaultStatusCode is applied when an Error is constructed without a status.
const DefaultStatusCode = http.StatusBadGateway

// String returns a stable label for logs and metrics.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindHTTPStatus:
		return "http_status"
	case KindInvalidJSON:
		return "invalid_json"
	case KindUnexpectedShape:
		return "unexpected_shape"
	case KindNotFound:
		return "not_found"
	case KindCircuitOpen:
		return "circuit_open"
	default:
		return "unknown"
	}
}

// Error is the single failure value produced whenever a call to the external API
// cannot complete as expected. It is created at the failure site and handed up to
// the HTTP boundary unchanged.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Payload    map[string]any

	// Err is the underlying cause, if any. It is never serialized.
	Err error
}

// NewError builds an Error, applying the 502 default for a zero status and an
// empty payload for a nil one.
func NewError(kind ErrorKind, message string, statusCode int, payload map[string]any) *Error {
	if statusCode == 0 {
		statusCode = DefaultStatusCode
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return &Error{
		Kind:       kind,
		Message:    message,
		StatusCode: statusCode,
		Payload:    payload,
	}
}

// withCause attaches the underlying error and returns e.
func (e *Error) withCause(err error) *Error {
	e.Err = err
	return e
}

// Error implements the error interface. Only the message is exposed.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var remoteErr *Error
	if errors.As(err, &remoteErr) {
		return remoteErr, true
	}
	return nil, false
}

// NotFound reports the empty-result lookup failure.
func NotFound(message string) *Error {
	return NewError(KindNotFound, message, http.StatusNotFound, nil)
}

// UnexpectedShape reports JSON that does not match the expected envelope.
func UnexpectedShape(err error) *Error {
	return NewError(KindUnexpectedShape, "Unexpected response structure", http.StatusBadGateway, nil).withCause(err)
}

// countsAsFailure reports whether err should trip the circuit breaker.
// Client errors (4xx) and empty lookups are complete, healthy exchanges.
func countsAsFailure(err error) bool {
	remoteErr, ok := AsError(err)
	if !ok {
		return true
	}
	switch remoteErr.Kind {
	case KindHTTPStatus:
		return remoteErr.StatusCode >= http.StatusInternalServerError
	case KindNotFound:
		return false
	default:
		return true
	}
}
