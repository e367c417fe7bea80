// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - API endpoint latency and throughput
// - Recommendation outcomes and local score distribution
// - Remote model calls, rate limiting and circuit breaking
// - Catalog size

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}, // remote calls can take seconds
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome", "provider"}, // outcome: local, remote, fallback_transport, fallback_parse, fallback_empty
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "End-to-end recommendation latency in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"outcome"},
	)

	LocalMatchScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_local_match_score",
			Help:    "Distribution of locally computed match scores returned to candidates",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 105},
		},
	)

	// Remote Model Metrics
	RemoteCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "remote_scorer_calls_total",
			Help: "Total number of remote scorer calls",
		},
		[]string{"provider", "result"}, // result: "success", "error", "timeout"
	)

	RemoteCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "remote_scorer_call_duration_seconds",
			Help:    "Remote scorer call duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"provider"},
	)

	RemoteRateLimitWait = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "remote_scorer_rate_limit_wait_seconds",
			Help:    "Time spent waiting for the outbound rate limiter",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)

	RemoteRateLimitRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "remote_scorer_rate_limit_rejected_total",
			Help: "Remote calls abandoned because the rate limiter could not admit them in time",
		},
		[]string{"provider"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Catalog Metrics
	CatalogPostings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_postings",
			Help: "Number of internship postings in the loaded catalog",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one orchestrator result.
func RecordRecommendation(outcome, provider string, duration time.Duration) {
	if provider == "" {
		provider = "none"
	}
	RecommendationsTotal.WithLabelValues(outcome, provider).Inc()
	RecommendationDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordRemoteCall records a remote scorer call and classifies its result.
func RecordRemoteCall(provider string, duration time.Duration, err error) {
	RemoteCallDuration.WithLabelValues(provider).Observe(duration.Seconds())
	RemoteCallsTotal.WithLabelValues(provider, remoteResult(err)).Inc()
}

func remoteResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}

// RecordRateLimitWait records time spent in the outbound limiter.
func RecordRateLimitWait(provider string, wait time.Duration, admitted bool) {
	RemoteRateLimitWait.WithLabelValues(provider).Observe(wait.Seconds())
	if !admitted {
		RemoteRateLimitRejected.WithLabelValues(provider).Inc()
	}
}

// RecommendObserver forwards recommendation engine events to Prometheus.
type RecommendObserver struct{}

// ObserveRecommendation records an orchestrator result.
func (RecommendObserver) ObserveRecommendation(outcome, provider string, duration time.Duration) {
	RecordRecommendation(outcome, provider, duration)
}

// ObserveRemoteCall records a remote scorer call.
func (RecommendObserver) ObserveRemoteCall(provider string, duration time.Duration, err error) {
	RecordRemoteCall(provider, duration, err)
}

// ObserveLocalScore records a locally computed match score.
func (RecommendObserver) ObserveLocalScore(score int) {
	LocalMatchScore.Observe(float64(score))
}
