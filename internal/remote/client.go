// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

/*
client.go - Rick and Morty API HTTP client

The Client performs exactly one HTTP GET per call and normalizes every failure
into a *Error:

  - Transport failure (DNS, refused, reset): 503
  - Timeout of the fixed request budget: 504 "Request timed out"
  - Remote status 4xx/5xx: the remote status, message starts with "HTTP error"
  - Body that is not JSON: 502 "Invalid JSON response"

There are no retries and no caching. The response body is always closed before
Get returns.
*/

//nolint:staticcheck // File documentation, not package doc
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/multiverse-stats/internal/config"
	"github.com/tomtom215/multiverse-stats/internal/logging"
	"github.com/tomtom215/multiverse-stats/internal/metrics"
)

// DefaultTimeout is the per-call budget when the configuration leaves it unset.
const DefaultTimeout = 10 * time.Second

// maxErrorBodySize limits how much of an error response body is kept for diagnostics.
const maxErrorBodySize = 64 * 1024

// Getter fetches a URL and returns its JSON body.
// Errors are always *Error values.
type Getter interface {
	Get(ctx context.Context, rawURL string) (json.RawMessage, error)
}

// Client talks to the Rick and Morty REST API.
//
// Thread Safety: safe for concurrent use. The client holds no per-call state.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a client for the configured base URL and timeout.
func NewClient(cfg *config.RemoteConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a single GET to rawURL and returns the raw JSON body.
func (c *Client) Get(ctx context.Context, rawURL string) (json.RawMessage, error) {
	start := time.Now()
	body, err := c.get(ctx, rawURL)

	outcome := "success"
	if remoteErr, ok := AsError(err); ok {
		outcome = remoteErr.Kind.String()
	}
	metrics.RecordRemoteRequest(outcome, time.Since(start))

	logging.Ctx(ctx).Debug().
		Str("url", rawURL).
		Str("outcome", outcome).
		Dur("duration", time.Since(start)).
		Msg("External API request")

	return body, err
}

func (c *Client) get(ctx context.Context, rawURL string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, transportError(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body := readBodyForError(resp.Body)
		msg := fmt.Sprintf("HTTP error: %d %s for url: %s", resp.StatusCode, http.StatusText(resp.StatusCode), rawURL)
		return nil, NewError(KindHTTPStatus, msg, resp.StatusCode, map[string]any{
			"body": string(body),
		})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if !json.Valid(body) {
		return nil, NewError(KindInvalidJSON, "Invalid JSON response", http.StatusBadGateway, nil)
	}

	return json.RawMessage(body), nil
}

// classifyTransportError separates timeouts from other network failures.
func classifyTransportError(err error) *Error {
	if isTimeout(err) {
		return NewError(KindTimeout, "Request timed out", http.StatusGatewayTimeout, nil).withCause(err)
	}
	return transportError(err)
}

func transportError(err error) *Error {
	return NewError(KindTransport, fmt.Sprintf("External API request failed: %v", err), http.StatusServiceUnavailable, nil).withCause(err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// readBodyForError reads at most maxErrorBodySize bytes of an error response.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
