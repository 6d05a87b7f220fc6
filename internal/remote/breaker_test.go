// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package remote

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/multiverse-stats/internal/config"
)

// stubGetter returns the same result for every call and counts calls.
type stubGetter struct {
	mu    sync.Mutex
	body  json.RawMessage
	err   error
	calls int
}

func (s *stubGetter) Get(context.Context, string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.body, s.err
}

func (s *stubGetter) set(body json.RawMessage, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.body, s.err = body, err
}

func (s *stubGetter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func testBreakerConfig(openTimeout time.Duration) *config.BreakerConfig {
	return &config.BreakerConfig{
		Enabled:      true,
		MinRequests:  3,
		FailureRatio: 0.5,
		OpenTimeout:  openTimeout,
	}
}

func TestBreakerClient_PassesErrorsThroughUnchanged(t *testing.T) {
	t.Parallel()

	want := NewError(KindTimeout, "Request timed out", http.StatusGatewayTimeout, nil)
	b := NewBreakerClient(&stubGetter{err: want}, testBreakerConfig(time.Minute))

	_, err := b.Get(context.Background(), "http://x/api/character")
	if err != want {
		t.Errorf("expected the original *Error instance, got %v", err)
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed after one failure", b.State())
	}
}

func TestBreakerClient_OpensAndFailsFast(t *testing.T) {
	t.Parallel()

	stub := &stubGetter{err: NewError(KindHTTPStatus, "HTTP error: 502 Bad Gateway", http.StatusBadGateway, nil)}
	b := NewBreakerClient(stub, testBreakerConfig(time.Minute))

	for i := 0; i < 3; i++ {
		_, _ = b.Get(context.Background(), "http://x/api/character")
	}
	if b.State() != "open" {
		t.Fatalf("State() = %q, want open", b.State())
	}

	callsBefore := stub.callCount()
	_, err := b.Get(context.Background(), "http://x/api/character")

	remoteErr, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if remoteErr.Kind != KindCircuitOpen || remoteErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("got kind %v status %d, want circuit_open 503", remoteErr.Kind, remoteErr.StatusCode)
	}
	if stub.callCount() != callsBefore {
		t.Error("open breaker must not call the wrapped getter")
	}
}

func TestBreakerClient_ClientErrorsDoNotTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"remote 404", NewError(KindHTTPStatus, "HTTP error: 404 Not Found", http.StatusNotFound, nil)},
		{"empty lookup", NotFound("No matching location found")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := NewBreakerClient(&stubGetter{err: tt.err}, testBreakerConfig(time.Minute))
			for i := 0; i < 10; i++ {
				_, err := b.Get(context.Background(), "http://x/api/location?name=Nowhere")
				if err != tt.err {
					t.Fatalf("call %d: expected original error, got %v", i, err)
				}
			}
			if b.State() != "closed" {
				t.Errorf("State() = %q, want closed", b.State())
			}
		})
	}
}

func TestBreakerClient_HalfOpenRecovers(t *testing.T) {
	t.Parallel()

	stub := &stubGetter{err: NewError(KindTransport, "External API request failed: refused", http.StatusServiceUnavailable, nil)}
	b := NewBreakerClient(stub, testBreakerConfig(20*time.Millisecond))

	for i := 0; i < 3; i++ {
		_, _ = b.Get(context.Background(), "http://x/api/character")
	}
	if b.State() != "open" {
		t.Fatalf("State() = %q, want open", b.State())
	}

	time.Sleep(50 * time.Millisecond)
	stub.set(json.RawMessage(`{"results":[]}`), nil)

	body, err := b.Get(context.Background(), "http://x/api/character")
	if err != nil {
		t.Fatalf("probe request failed: %v", err)
	}
	if string(body) != `{"results":[]}` {
		t.Errorf("body = %s", body)
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed after successful probe", b.State())
	}
}

func TestCountsAsFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"transport", NewError(KindTransport, "x", http.StatusServiceUnavailable, nil), true},
		{"timeout", NewError(KindTimeout, "x", http.StatusGatewayTimeout, nil), true},
		{"invalid json", NewError(KindInvalidJSON, "x", 0, nil), true},
		{"http 500", NewError(KindHTTPStatus, "x", http.StatusInternalServerError, nil), true},
		{"http 429", NewError(KindHTTPStatus, "x", http.StatusTooManyRequests, nil), false},
		{"not found", NotFound("x"), false},
		{"foreign error", context.Canceled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := countsAsFailure(tt.err); got != tt.want {
				t.Errorf("countsAsFailure() = %v, want %v", got, tt.want)
			}
		})
	}
}
