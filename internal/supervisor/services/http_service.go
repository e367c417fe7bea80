// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// defaultShutdownTimeout applies when no positive timeout is configured.
const defaultShutdownTimeout = 10 * time.Second

// HTTPServer interface matches *http.Server lifecycle methods.
//
// Satisfied by *http.Server from net/http:
//   - ListenAndServe() error
//   - Shutdown(ctx context.Context) error
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServiceConfig holds HTTP service settings.
type HTTPServiceConfig struct {
	// Addr is the listen address, used for logging only.
	Addr string

	// ShutdownTimeout bounds graceful shutdown. Default: 10s
	ShutdownTimeout time.Duration
}

// HTTPServerService wraps an HTTP server as a supervised service.
//
// It translates between http.Server's blocking ListenAndServe and suture's
// context-aware Serve:
//
//  1. Starts ListenAndServe in a goroutine
//  2. Waits for either context cancellation or server error
//  3. On cancellation, calls Shutdown with the configured timeout
//
// Example usage:
//
//	server := &http.Server{Addr: ":8080", Handler: router}
//	svc := services.NewHTTPServerService(server, services.HTTPServiceConfig{Addr: server.Addr}, logger)
//	tree.AddAPIService(svc)
type HTTPServerService struct {
	server HTTPServer
	config HTTPServiceConfig
	logger zerolog.Logger
	name   string
}

// NewHTTPServerService creates a new HTTP server service wrapper.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHTTPServerService(server HTTPServer, cfg HTTPServiceConfig, logger zerolog.Logger) *HTTPServerService {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return &HTTPServerService{
		server: server,
		config: cfg,
		logger: logger.With().Str("service", "http-server").Logger(),
		name:   "http-server",
	}
}

// Serve implements suture.Service.
//
// Returns ctx.Err() after a graceful shutdown, or an error if the server
// fails to start or crashes. http.ErrServerClosed is expected on shutdown
// and is not treated as a failure.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	h.logger.Info().Str("addr", h.config.Addr).Msg("HTTP server listening")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		// Closed without a shutdown request; suture restarts the service.
		return nil

	case <-ctx.Done():
		// The original context is canceled, so shutdown gets its own.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.config.ShutdownTimeout)
		defer cancel()

		h.logger.Info().Dur("timeout", h.config.ShutdownTimeout).Msg("HTTP server shutting down")
		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		h.logger.Info().Msg("HTTP server stopped")
		return ctx.Err()
	}
}

// String implements fmt.Stringer for logging.
// Suture uses this to identify the service in log messages.
func (h *HTTPServerService) String() string {
	return h.name
}
