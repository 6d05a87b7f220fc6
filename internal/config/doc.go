// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

/*
Package config provides centralized configuration management for Multiverse Stats.

Configuration is loaded with Koanf v2 from three layers, later layers winning:
built-in defaults, an optional YAML file (CONFIG_PATH or config.yaml), and
environment variables.

# Configuration Structure

  - RemoteConfig: Rick and Morty API root, request timeout and circuit breaker
  - ServerConfig: HTTP listen address and timeouts
  - SecurityConfig: CORS allowed origins
  - LoggingConfig: zerolog level, format and caller info

# Environment Variables

Remote API (RemoteConfig):
  - RICK_AND_MORTY_BASE_URL: API root (default: https://rickandmortyapi.com/api)
  - RICK_AND_MORTY_TIMEOUT: Per-request timeout (default: 10s)
  - REMOTE_BREAKER_ENABLED: Wrap the client in a circuit breaker (default: true)
  - REMOTE_BREAKER_MIN_REQUESTS: Requests before the breaker may trip (default: 10)
  - REMOTE_BREAKER_FAILURE_RATIO: Failure ratio that opens the breaker (default: 0.6)
  - REMOTE_BREAKER_INTERVAL: Closed-state count reset window (default: 1m)
  - REMOTE_BREAKER_OPEN_TIMEOUT: Open duration before probing (default: 30s)

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 5000)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller info (default: false)

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	fmt.Println(cfg.Server.Addr())
*/
package config
