// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/multiverse-stats/internal/aggregate"
	"github.com/tomtom215/multiverse-stats/internal/api"
	"github.com/tomtom215/multiverse-stats/internal/config"
	"github.com/tomtom215/multiverse-stats/internal/logging"
	"github.com/tomtom215/multiverse-stats/internal/remote"
	"github.com/tomtom215/multiverse-stats/internal/supervisor"
	"github.com/tomtom215/multiverse-stats/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Default logger; config not yet available.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.FromConfig(cfg.Logging))

	logging.Info().
		Str("base_url", cfg.Remote.BaseURL).
		Dur("remote_timeout", cfg.Remote.Timeout).
		Bool("breaker_enabled", cfg.Remote.Breaker.Enabled).
		Str("addr", cfg.Server.Addr()).
		Msg("Configuration loaded")

	client := remote.NewClient(&cfg.Remote)

	// A nil *BreakerClient must not reach NewHandler as a non-nil interface.
	var getter remote.Getter = client
	var breaker api.BreakerStater
	if cfg.Remote.Breaker.Enabled {
		bc := remote.NewBreakerClient(client, &cfg.Remote.Breaker)
		getter = bc
		breaker = bc
	}

	aggregator := aggregate.NewService(getter, client.BaseURL())
	handler := api.NewHandler(aggregator, breaker)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromOrigins(cfg.Security.CORSOrigins))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// sutureslog needs an *slog.Logger; this one writes through zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Run(ctx); err != nil {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
