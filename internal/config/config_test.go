// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "http base url with path", mutate: func(c *Config) { c.Remote.BaseURL = "http://127.0.0.1:8080/api" }},
		{name: "empty base url", mutate: func(c *Config) { c.Remote.BaseURL = "" }, wantErr: "RICK_AND_MORTY_BASE_URL is required"},
		{name: "bad scheme", mutate: func(c *Config) { c.Remote.BaseURL = "ftp://x/api" }, wantErr: "scheme must be http or https"},
		{name: "missing host", mutate: func(c *Config) { c.Remote.BaseURL = "https:///api" }, wantErr: "host is required"},
		{name: "query string", mutate: func(c *Config) { c.Remote.BaseURL = "https://x/api?a=1" }, wantErr: "query parameters"},
		{name: "zero remote timeout", mutate: func(c *Config) { c.Remote.Timeout = 0 }, wantErr: "RICK_AND_MORTY_TIMEOUT"},
		{name: "ratio above one", mutate: func(c *Config) { c.Remote.Breaker.FailureRatio = 1.5 }, wantErr: "FAILURE_RATIO"},
		{name: "ratio zero", mutate: func(c *Config) { c.Remote.Breaker.FailureRatio = 0 }, wantErr: "FAILURE_RATIO"},
		{name: "ratio ignored when disabled", mutate: func(c *Config) {
			c.Remote.Breaker.Enabled = false
			c.Remote.Breaker.FailureRatio = 0
		}},
		{name: "zero min requests", mutate: func(c *Config) { c.Remote.Breaker.MinRequests = 0 }, wantErr: "MIN_REQUESTS"},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "HTTP_PORT"},
		{name: "port too high", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "HTTP_PORT"},
		{name: "negative shutdown timeout", mutate: func(c *Config) { c.Server.ShutdownTimeout = -time.Second }, wantErr: "HTTP_SHUTDOWN_TIMEOUT"},
		{name: "unknown log level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: "LOG_LEVEL"},
		{name: "unknown log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestServerConfigAddr(t *testing.T) {
	t.Parallel()
	s := ServerConfig{Host: "127.0.0.1", Port: 5000}
	if got := s.Addr(); got != "127.0.0.1:5000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:5000", got)
	}
}
