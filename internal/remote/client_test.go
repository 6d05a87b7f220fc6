// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package remote

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/multiverse-stats/internal/config"
	"github.com/tomtom215/multiverse-stats/internal/metrics"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.RemoteConfig{BaseURL: srv.URL + "/api/", Timeout: timeout}), srv
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	c := NewClient(&config.RemoteConfig{BaseURL: "https://rickandmortyapi.com/api/"})
	if c.BaseURL() != "https://rickandmortyapi.com/api" {
		t.Errorf("BaseURL() = %q, want trailing slash trimmed", c.BaseURL())
	}
	if c.client.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want default %v", c.client.Timeout, DefaultTimeout)
	}
}

func TestClientGet_Success(t *testing.T) {
	t.Parallel()

	var gotAccept string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`{"info":{"next":null},"results":[]}`))
	}, time.Second)

	body, err := c.Get(context.Background(), c.BaseURL()+"/character")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(body) != `{"info":{"next":null},"results":[]}` {
		t.Errorf("body = %s", body)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
}

func TestClientGet_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		handler     http.HandlerFunc
		timeout     time.Duration
		wantKind    ErrorKind
		wantStatus  int
		wantMessage string
	}{
		{
			name: "remote 404",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"error":"There is nothing here"}`))
			},
			timeout:     time.Second,
			wantKind:    KindHTTPStatus,
			wantStatus:  http.StatusNotFound,
			wantMessage: "HTTP error: 404 Not Found for url: ",
		},
		{
			name: "remote 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			timeout:     time.Second,
			wantKind:    KindHTTPStatus,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "HTTP error: 500 Internal Server Error",
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>maintenance</html>`))
			},
			timeout:     time.Second,
			wantKind:    KindInvalidJSON,
			wantStatus:  http.StatusBadGateway,
			wantMessage: "Invalid JSON response",
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			timeout:     time.Second,
			wantKind:    KindInvalidJSON,
			wantStatus:  http.StatusBadGateway,
			wantMessage: "Invalid JSON response",
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(2 * time.Second):
				}
			},
			timeout:     50 * time.Millisecond,
			wantKind:    KindTimeout,
			wantStatus:  http.StatusGatewayTimeout,
			wantMessage: "Request timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestClient(t, tt.handler, tt.timeout)
			body, err := c.Get(context.Background(), c.BaseURL()+"/character")

			if body != nil {
				t.Errorf("expected nil body on error, got %s", body)
			}
			remoteErr, ok := AsError(err)
			if !ok {
				t.Fatalf("expected *Error, got %T: %v", err, err)
			}
			if remoteErr.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", remoteErr.Kind, tt.wantKind)
			}
			if remoteErr.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", remoteErr.StatusCode, tt.wantStatus)
			}
			if !strings.HasPrefix(remoteErr.Message, tt.wantMessage) {
				t.Errorf("Message = %q, want prefix %q", remoteErr.Message, tt.wantMessage)
			}
			if remoteErr.Payload == nil {
				t.Error("Payload should never be nil")
			}
		})
	}
}

func TestClientGet_HTTPErrorKeepsBody(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"There is nothing here"}`))
	}, time.Second)

	_, err := c.Get(context.Background(), c.BaseURL()+"/location?name=Nowhere")
	remoteErr, _ := AsError(err)
	if remoteErr == nil {
		t.Fatal("expected *Error")
	}
	if !strings.HasSuffix(remoteErr.Message, "/api/location?name=Nowhere") {
		t.Errorf("Message = %q, want it to end with the requested URL", remoteErr.Message)
	}
	if remoteErr.Payload["body"] != `{"error":"There is nothing here"}` {
		t.Errorf("Payload[body] = %v", remoteErr.Payload["body"])
	}
}

func TestClientGet_ConnectionRefused(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	c := NewClient(&config.RemoteConfig{BaseURL: "http://" + addr + "/api", Timeout: time.Second})
	_, err = c.Get(context.Background(), c.BaseURL()+"/character")

	remoteErr, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if remoteErr.Kind != KindTransport || remoteErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("got kind %v status %d, want transport 503", remoteErr.Kind, remoteErr.StatusCode)
	}
	if !strings.HasPrefix(remoteErr.Message, "External API request failed: ") {
		t.Errorf("Message = %q", remoteErr.Message)
	}
	if remoteErr.Unwrap() == nil {
		t.Error("expected the transport cause to be kept")
	}
}

func TestClientGet_CanceledContext(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, c.BaseURL()+"/character")
	remoteErr, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if remoteErr.Kind != KindTransport {
		t.Errorf("Kind = %v, want transport", remoteErr.Kind)
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("expected context.Canceled in the error chain")
	}
}

func TestClientGet_RecordsOutcomeMetric(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}, time.Second)

	counter := metrics.RemoteRequestsTotal.WithLabelValues(KindInvalidJSON.String())
	before := testutil.ToFloat64(counter)
	_, _ = c.Get(context.Background(), c.BaseURL()+"/character")

	if got := testutil.ToFloat64(counter) - before; got < 1 {
		t.Errorf("remote_requests_total{outcome=invalid_json} delta = %v, want >= 1", got)
	}
}
