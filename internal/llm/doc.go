// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package llm provides the remote scorers used by the recommendation engine.

A remote scorer receives a rendered prompt and returns the raw model text.
Parsing, id resolution and fallback live in the recommend package; this
package only moves text to and from a provider.

# Providers

  - GeminiClient: Google Gemini through google.golang.org/genai
  - OpenAIClient: OpenAI chat completions through github.com/openai/openai-go/v3,
    also usable with OpenAI-compatible gateways via LLM_BASE_URL

# Resilience

New composes the provider with two optional decorators:

	provider -> RateLimitedClient -> BreakerClient

RateLimitedClient throttles outbound calls with golang.org/x/time/rate.
BreakerClient wraps calls in a sony/gobreaker circuit breaker so a failing
provider is skipped quickly and the engine falls back to local scoring.
Neither decorator retries: a recommendation request makes at most one
remote call.

# Usage

	client, err := llm.New(ctx, &cfg.LLM)
	if err != nil {
	    return err
	}
	if client == nil {
	    // no credential configured, local scoring only
	}
*/
package llm
