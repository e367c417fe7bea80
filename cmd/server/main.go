// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/internmatch/internal/api"
	"github.com/tomtom215/internmatch/internal/config"
	"github.com/tomtom215/internmatch/internal/logging"
	"github.com/tomtom215/internmatch/internal/supervisor"
	"github.com/tomtom215/internmatch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Caller:  cfg.Logging.Caller,
		Service: "internmatch",
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Internmatch with supervisor tree")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().
			Strs("origins", cfg.API.CORSOrigins).
			Msg("Wildcard CORS origin configured in production")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	components, err := initRecommend(ctx, cfg, logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	handler := api.NewHandler(components.Engine, api.HandlerConfig{
		RequestTimeout: cfg.API.RequestTimeout,
		Version:        version,
		Breaker:        components.Breaker,
	})
	middleware := api.NewChiMiddleware(api.ChiMiddlewareConfigFromAPI(&cfg.API))
	router := api.NewRouter(handler, middleware)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	if components.Stats != nil {
		tree.AddEngineService(components.Stats)
		logging.Info().Dur("interval", cfg.Recommend.StatsInterval).Msg("Recommendation stats reporter added to supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, services.HTTPServiceConfig{
		Addr:            server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, logging.WithComponent("http")))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
