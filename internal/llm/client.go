// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/internmatch/internal/config"
	"github.com/tomtom215/internmatch/internal/logging"
)

// Client sends a prompt to a remote model and returns its text output.
type Client interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

var (
	// ErrEmptyResponse is returned when the provider answers without text.
	ErrEmptyResponse = errors.New("llm: empty response")

	// ErrUnsupportedProvider is returned for an unknown provider name.
	ErrUnsupportedProvider = errors.New("llm: unsupported provider")

	// ErrRateLimited is returned when the outbound limiter cannot admit a
	// call before the context deadline.
	ErrRateLimited = errors.New("llm: rate limited")
)

// New builds the remote scorer described by cfg. It returns a nil Client
// and a nil error when no credential is configured.
func New(ctx context.Context, cfg *config.LLMConfig) (Client, error) {
	provider, apiKey := cfg.ResolvedProvider()
	if apiKey == "" {
		return nil, nil
	}

	var (
		client Client
		err    error
	)
	switch provider {
	case config.ProviderGemini:
		client, err = NewGeminiClient(ctx, cfg, apiKey)
	case config.ProviderOpenAI:
		client = NewOpenAIClient(cfg, apiKey)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}
	if err != nil {
		return nil, err
	}

	if cfg.RequestsPerMinute > 0 {
		client = NewRateLimitedClient(client, cfg.RequestsPerMinute, cfg.RateLimitBurst)
	}
	if cfg.Breaker.Enabled {
		client = NewBreakerClient(client, &cfg.Breaker)
	}

	logging.Info().
		Str("provider", provider).
		Str("model", cfg.ResolvedModel()).
		Int("requests_per_minute", cfg.RequestsPerMinute).
		Bool("circuit_breaker", cfg.Breaker.Enabled).
		Msg("Remote scorer configured")

	return client, nil
}
