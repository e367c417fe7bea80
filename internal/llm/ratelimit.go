// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package llm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/internmatch/internal/metrics"
)

// RateLimitedClient throttles outbound calls with a token bucket.
// A call waits for a token until its context expires.
type RateLimitedClient struct {
	inner   Client
	limiter *rate.Limiter
}

// NewRateLimitedClient allows requestsPerMinute calls with the given burst.
func NewRateLimitedClient(inner Client, requestsPerMinute, burst int) *RateLimitedClient {
	return &RateLimitedClient{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), burst),
	}
}

// Name returns the wrapped provider name.
func (r *RateLimitedClient) Name() string {
	return r.inner.Name()
}

// Complete waits for the limiter, then delegates.
func (r *RateLimitedClient) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	err := r.limiter.Wait(ctx)
	metrics.RecordRateLimitWait(r.inner.Name(), time.Since(start), err == nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRateLimited, err)
	}
	return r.inner.Complete(ctx, prompt)
}
