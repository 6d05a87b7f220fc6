// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

// Package logging provides centralized zerolog-based structured logging.
//
// A single global logger is configured once from the application's logging
// section and used everywhere:
//
//	logging.Init(logging.FromConfig(cfg.Logging))
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("External API error")
//
// Ctx attaches the request_id (and correlation_id, when a caller supplied one)
// stored in the context by the HTTP middleware, so every log line written while
// serving a request can be joined back to it.
//
// The slog adapter (NewSlogLogger) routes suture supervisor events through the
// same zerolog output.
//
// # Configuration
//
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event is
// never written.
package logging
