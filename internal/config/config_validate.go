// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package config

import (
	"fmt"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateRemote(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateRemote validates the external API settings
func (c *Config) validateRemote() error {
	if c.Remote.BaseURL == "" {
		return fmt.Errorf("RICK_AND_MORTY_BASE_URL is required")
	}
	if err := validateHTTPURL(c.Remote.BaseURL, "RICK_AND_MORTY_BASE_URL"); err != nil {
		return fmt.Errorf("RICK_AND_MORTY_BASE_URL is invalid: %w", err)
	}
	if c.Remote.Timeout <= 0 {
		return fmt.Errorf("RICK_AND_MORTY_TIMEOUT must be positive")
	}
	return c.validateBreaker()
}

// validateBreaker validates circuit breaker bounds (only if enabled)
func (c *Config) validateBreaker() error {
	b := c.Remote.Breaker
	if !b.Enabled {
		return nil
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("REMOTE_BREAKER_FAILURE_RATIO must be in (0, 1], got %v", b.FailureRatio)
	}
	if b.MinRequests == 0 {
		return fmt.Errorf("REMOTE_BREAKER_MIN_REQUESTS must be at least 1")
	}
	if b.OpenTimeout < 0 || b.Interval < 0 {
		return fmt.Errorf("REMOTE_BREAKER_OPEN_TIMEOUT and REMOTE_BREAKER_INTERVAL must not be negative")
	}
	return nil
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
