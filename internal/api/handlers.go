// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package api

import (
	"time"

	"github.com/tomtom215/internmatch/internal/catalog"
	"github.com/tomtom215/internmatch/internal/recommend"
)

// defaultRequestTimeout applies when HandlerConfig.RequestTimeout is unset.
const defaultRequestTimeout = 40 * time.Second

// BreakerStateReporter exposes the state of the remote scorer's circuit breaker.
type BreakerStateReporter interface {
	BreakerState() string
}

// HandlerConfig holds optional handler settings.
type HandlerConfig struct {
	// RequestTimeout bounds a single recommendation request.
	RequestTimeout time.Duration

	// Version is reported by the health endpoint.
	Version string

	// Options overrides the form suggestion lists.
	Options *catalog.FormOptions

	// Breaker reports the remote scorer breaker state, when one is configured.
	Breaker BreakerStateReporter
}

// Handler serves the API endpoints.
type Handler struct {
	engine         *recommend.Engine
	options        catalog.FormOptions
	requestTimeout time.Duration
	version        string
	breaker        BreakerStateReporter
	startTime      time.Time
}

// NewHandler creates a new API handler over engine.
//
//nolint:gocritic // hugeParam: configuration struct passed once at startup
func NewHandler(engine *recommend.Engine, cfg HandlerConfig) *Handler {
	options := catalog.DefaultFormOptions()
	if cfg.Options != nil {
		options = *cfg.Options
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Handler{
		engine:         engine,
		options:        options,
		requestTimeout: timeout,
		version:        cfg.Version,
		breaker:        cfg.Breaker,
		startTime:      time.Now(),
	}
}
