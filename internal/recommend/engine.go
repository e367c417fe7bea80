// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/internmatch/internal/catalog"
)

// Note: This package depends only on the catalog. Remote providers and
// metrics collectors are injected through the RemoteScorer and Observer
// interfaces to keep transport and instrumentation out of the core.

// RemoteScorer produces free-form text for a scoring prompt.
// Implementations live in the llm package.
type RemoteScorer interface {
	// Name identifies the provider in logs, metrics and results.
	Name() string

	// Complete sends prompt and returns the raw model output.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Observer receives instrumentation events from the engine.
// Implementations must be safe for concurrent use.
type Observer interface {
	// ObserveRecommendation is called once per Recommend call.
	ObserveRecommendation(outcome, provider string, duration time.Duration)

	// ObserveRemoteCall is called after every remote attempt.
	ObserveRemoteCall(provider string, duration time.Duration, err error)

	// ObserveLocalScore is called for every locally scored recommendation returned.
	ObserveLocalScore(score int)
}

type nopObserver struct{}

func (nopObserver) ObserveRecommendation(string, string, time.Duration) {}
func (nopObserver) ObserveRemoteCall(string, time.Duration, error)      {}
func (nopObserver) ObserveLocalScore(int)                               {}

// Metrics is a snapshot of engine counters.
type Metrics struct {
	// RequestCount is the total number of Recommend calls.
	RequestCount int64 `json:"request_count"`

	// RemoteAttempts is the number of remote calls made.
	RemoteAttempts int64 `json:"remote_attempts"`

	// RemoteSuccesses counts results that used the remote answer.
	RemoteSuccesses int64 `json:"remote_successes"`

	// TransportFallbacks counts remote calls that failed.
	TransportFallbacks int64 `json:"transport_fallbacks"`

	// ParseFallbacks counts unusable remote payloads.
	ParseFallbacks int64 `json:"parse_fallbacks"`

	// EmptyFallbacks counts remote answers with no known posting.
	EmptyFallbacks int64 `json:"empty_fallbacks"`

	// AverageLatencyMS is the mean Recommend latency.
	AverageLatencyMS float64 `json:"average_latency_ms"`
}

// Engine orchestrates local scoring and the optional remote scorer.
// It is safe for concurrent use.
type Engine struct {
	config   *Config
	catalog  *catalog.Catalog
	local    *LocalScorer
	remote   RemoteScorer
	observer Observer
	logger   zerolog.Logger

	// Metrics
	requestCount       atomic.Int64
	remoteAttempts     atomic.Int64
	remoteSuccesses    atomic.Int64
	transportFallbacks atomic.Int64
	parseFallbacks     atomic.Int64
	emptyFallbacks     atomic.Int64
	totalLatencyNS     atomic.Int64
}

// NewEngine creates an engine over cat. A nil remote disables remote
// scoring; a nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, cat *catalog.Catalog, remote RemoteScorer, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil {
		return nil, errors.New("catalog is required")
	}

	return &Engine{
		config:   cfg,
		catalog:  cat,
		local:    NewLocalScorer(cfg),
		remote:   remote,
		observer: nopObserver{},
		logger:   logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// SetObserver installs an instrumentation observer. Passing nil restores the no-op observer.
func (e *Engine) SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	e.observer = o
}

// RemoteEnabled reports whether a remote scorer is configured.
func (e *Engine) RemoteEnabled() bool {
	return e.remote != nil
}

// ProviderName returns the remote provider name, or "" when disabled.
func (e *Engine) ProviderName() string {
	if e.remote == nil {
		return ""
	}
	return e.remote.Name()
}

// Catalog returns the catalog the engine scores against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Recommend produces recommendations for profile. It never fails: any
// remote problem degrades to the local result.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, profile CandidateProfile) RecommendationResult {
	start := time.Now()
	e.requestCount.Add(1)

	postings := e.catalog.Postings()
	local := e.local.Score(profile, postings)

	var result RecommendationResult
	if e.remote == nil {
		result = e.localResult(local, OutcomeLocal)
	} else {
		result = e.remoteResult(ctx, profile, postings, local)
	}

	if !result.IsAIGenerated {
		for i := range result.Recommendations {
			e.observer.ObserveLocalScore(result.Recommendations[i].MatchScore)
		}
	}

	elapsed := time.Since(start)
	e.totalLatencyNS.Add(int64(elapsed))
	e.observer.ObserveRecommendation(result.Outcome.String(), result.Provider, elapsed)

	e.logger.Debug().
		Str("outcome", result.Outcome.String()).
		Str("provider", result.Provider).
		Int("returned", len(result.Recommendations)).
		Dur("latency", elapsed).
		Msg("recommendation complete")

	return result
}

// Explain runs only the local scorer and attaches score breakdowns.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func (e *Engine) Explain(profile CandidateProfile) []ScoredPosting {
	return e.local.Explain(profile, e.catalog.Postings())
}

//nolint:gocritic // hugeParam: profile passed by value for immutability
func (e *Engine) remoteResult(ctx context.Context, profile CandidateProfile, postings []catalog.Posting, local []ScoredPosting) RecommendationResult {
	provider := e.remote.Name()
	logger := e.logger.With().Str("provider", provider).Logger()

	prompt, err := BuildPrompt(profile, postings)
	if err != nil {
		logger.Warn().Err(err).Msg("prompt rendering failed, using local recommendations")
		return e.fallback(local, OutcomeTransportFallback, provider)
	}

	raw, err := e.callRemote(ctx, provider, prompt)
	if err != nil {
		logger.Warn().Err(err).Msg("remote scorer failed, using local recommendations")
		return e.fallback(local, OutcomeTransportFallback, provider)
	}

	env, err := parseEnvelope(raw)
	if err != nil {
		logger.Warn().Err(err).Int("payload_bytes", len(raw)).Msg("remote payload unusable, using local recommendations")
		return e.fallback(local, OutcomeParseFallback, provider)
	}

	resolved := env.resolve(e.catalog)
	if len(resolved) == 0 {
		logger.Warn().
			Int("remote_entries", len(*env.Recommendations)).
			Msg("no remote recommendation matched the catalog, using local recommendations")
		return e.fallback(local, OutcomeEmptyFallback, provider)
	}

	e.remoteSuccesses.Add(1)
	return RecommendationResult{
		Recommendations: resolved,
		Summary:         env.Summary,
		IsAIGenerated:   true,
		Outcome:         OutcomeRemote,
		Provider:        provider,
	}
}

// callRemote makes the single remote attempt under the configured timeout.
func (e *Engine) callRemote(ctx context.Context, provider, prompt string) (string, error) {
	e.remoteAttempts.Add(1)

	callCtx, cancel := context.WithTimeout(ctx, e.config.RemoteTimeout)
	defer cancel()

	start := time.Now()
	raw, err := e.remote.Complete(callCtx, prompt)
	e.observer.ObserveRemoteCall(provider, time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("remote scorer %s: %w", provider, err)
	}
	return raw, nil
}

func (e *Engine) fallback(local []ScoredPosting, outcome Outcome, provider string) RecommendationResult {
	switch outcome {
	case OutcomeTransportFallback:
		e.transportFallbacks.Add(1)
	case OutcomeParseFallback:
		e.parseFallbacks.Add(1)
	case OutcomeEmptyFallback:
		e.emptyFallbacks.Add(1)
	}
	result := e.localResult(local, outcome)
	result.Provider = provider
	return result
}

func (e *Engine) localResult(local []ScoredPosting, outcome Outcome) RecommendationResult {
	return RecommendationResult{
		Recommendations: local,
		Summary:         summaryFor(outcome),
		IsAIGenerated:   false,
		Outcome:         outcome,
	}
}

func summaryFor(outcome Outcome) string {
	switch outcome {
	case OutcomeTransportFallback:
		return SummaryTransportFallback
	case OutcomeParseFallback, OutcomeEmptyFallback:
		return SummaryParseFallback
	default:
		return SummaryLocal
	}
}

// GetMetrics returns the current engine metrics.
func (e *Engine) GetMetrics() Metrics {
	m := Metrics{
		RequestCount:       e.requestCount.Load(),
		RemoteAttempts:     e.remoteAttempts.Load(),
		RemoteSuccesses:    e.remoteSuccesses.Load(),
		TransportFallbacks: e.transportFallbacks.Load(),
		ParseFallbacks:     e.parseFallbacks.Load(),
		EmptyFallbacks:     e.emptyFallbacks.Load(),
	}
	if m.RequestCount > 0 {
		m.AverageLatencyMS = float64(e.totalLatencyNS.Load()) / float64(m.RequestCount) / float64(time.Millisecond)
	}
	return m
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() Config {
	return *e.config
}
