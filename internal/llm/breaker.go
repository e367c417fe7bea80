// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package llm

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/internmatch/internal/config"
	"github.com/tomtom215/internmatch/internal/logging"
	"github.com/tomtom215/internmatch/internal/metrics"
)

// BreakerClient wraps a Client with the circuit breaker pattern.
// While open, calls fail with gobreaker.ErrOpenState without reaching the
// provider and the engine serves local results.
//
// The breaker uses real time for its interval and timeout. Tests drive it
// through request counts, not clocks.
type BreakerClient struct {
	inner Client
	cb    *gobreaker.CircuitBreaker[string]
	name  string
}

// NewBreakerClient creates a breaker named after the wrapped provider.
// With the default settings the circuit:
//   - allows 3 concurrent probes in half-open state
//   - resets counts every minute while closed
//   - waits 2 minutes before probing after opening
//   - opens at a 60% failure rate over at least 10 requests
func NewBreakerClient(inner Client, cfg *config.BreakerConfig) *BreakerClient {
	cbName := "llm-" + inner.Name()

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	minRequests := cfg.MinRequests
	failureRatio := cfg.FailureRatio

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}

			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := ratio >= failureRatio

			if shouldTrip {
				logging.Warn().Str("breaker", cbName).Uint32("failures", counts.TotalFailures).Float64("failure_rate", ratio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		// Throttling and caller cancellation say nothing about provider health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrRateLimited) || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerClient{
		inner: inner,
		cb:    cb,
		name:  cbName,
	}
}

// Name returns the wrapped provider name.
func (b *BreakerClient) Name() string {
	return b.inner.Name()
}

// Complete runs the wrapped call under circuit breaker protection.
func (b *BreakerClient) Complete(ctx context.Context, prompt string) (string, error) {
	return b.execute(func() (string, error) {
		return b.inner.Complete(ctx, prompt)
	})
}

// BreakerState returns closed, half-open or open.
func (b *BreakerClient) BreakerState() string {
	return stateToString(b.cb.State())
}

func (b *BreakerClient) execute(fn func() (string, error)) (string, error) {
	result, err := b.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", b.name).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
			counts := b.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		}
		return "", err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)

	return result, nil
}

// stateToFloat converts circuit breaker state to float for Prometheus
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
