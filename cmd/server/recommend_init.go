// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/internmatch/internal/catalog"
	"github.com/tomtom215/internmatch/internal/config"
	"github.com/tomtom215/internmatch/internal/llm"
	"github.com/tomtom215/internmatch/internal/metrics"
	"github.com/tomtom215/internmatch/internal/recommend"
	"github.com/tomtom215/internmatch/internal/supervisor/services"
)

// breakerReporter is implemented by remote scorers wrapped in a circuit breaker.
type breakerReporter interface {
	BreakerState() string
}

// RecommendComponents holds all recommendation-related components.
type RecommendComponents struct {
	Catalog *catalog.Catalog
	Engine  *recommend.Engine

	// Breaker is nil unless the remote scorer runs behind a circuit breaker.
	Breaker breakerReporter

	// Stats is nil when periodic reporting is disabled.
	Stats *services.RecommendStatsService
}

// initRecommend loads the catalog, builds the optional remote scorer and
// creates the engine. A missing credential is not an error: the engine then
// serves local results only.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*RecommendComponents, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	metrics.CatalogPostings.Set(float64(cat.Len()))
	logger.Info().
		Int("postings", cat.Len()).
		Str("path", cfg.Catalog.Path).
		Msg("catalog loaded")

	client, err := llm.New(ctx, &cfg.LLM)
	if err != nil {
		// A misconfigured provider degrades to local scoring rather than
		// keeping the service down.
		logger.Warn().Err(err).Msg("remote scorer unavailable, serving local recommendations only")
		client = nil
	}

	var remote recommend.RemoteScorer
	if client != nil {
		remote = client
	} else {
		logger.Info().Msg("remote scoring disabled (no API key configured)")
	}

	engine, err := recommend.NewEngine(recommend.ConfigFrom(&cfg.Recommend), cat, remote, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}
	engine.SetObserver(metrics.RecommendObserver{})

	components := &RecommendComponents{
		Catalog: cat,
		Engine:  engine,
	}
	if br, ok := client.(breakerReporter); ok {
		components.Breaker = br
	}

	if cfg.Recommend.StatsInterval > 0 {
		var breaker services.BreakerState
		if components.Breaker != nil {
			breaker = components.Breaker
		}
		components.Stats = services.NewRecommendStatsService(engine, breaker, cfg.Recommend.StatsInterval, logger)
	}

	logger.Info().
		Bool("remote_enabled", engine.RemoteEnabled()).
		Str("provider", engine.ProviderName()).
		Int("top_n", cfg.Recommend.TopN).
		Msg("recommendation engine initialized")

	return components, nil
}
