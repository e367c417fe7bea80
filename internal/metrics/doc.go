// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Requests rejected by the per-IP limiter (counter)
    Labels: endpoint

Recommendation Metrics:
  - recommendations_total: Results by path taken (counter)
    Labels: outcome (local, remote, fallback_transport, fallback_parse, fallback_empty), provider
  - recommendation_duration_seconds: End-to-end latency (histogram)
    Labels: outcome
  - recommendation_local_match_score: Distribution of local scores (histogram)
    Buckets reach 105, the highest score under default weights

Remote Scorer Metrics:
  - remote_scorer_calls_total: Calls by result (counter)
    Labels: provider, result (success, error, timeout)
  - remote_scorer_call_duration_seconds: Call latency (histogram)
    Labels: provider
  - remote_scorer_rate_limit_wait_seconds: Time spent in the outbound limiter (histogram)
  - remote_scorer_rate_limit_rejected_total: Calls the limiter could not admit (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests by result (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_consecutive_failures: Current failure streak (gauge)
  - circuit_breaker_state_transitions_total: State changes (counter)
    Labels: name, from_state, to_state

Catalog Metrics:
  - catalog_postings: Postings in the loaded catalog (gauge)

# Usage

Record API requests from middleware:

	start := time.Now()
	metrics.TrackActiveRequest(true)
	defer metrics.TrackActiveRequest(false)
	// ... handle request
	metrics.RecordAPIRequest(r.Method, route, strconv.Itoa(status), time.Since(start))

Attach the recommendation observer to the engine:

	engine.SetObserver(metrics.RecommendObserver{})

# Example Alerts

	groups:
	  - name: internmatch
	    rules:
	      - alert: RemoteScorerDegraded
	        expr: sum(rate(recommendations_total{outcome=~"fallback_.*"}[10m]))
	              / sum(rate(recommendations_total{outcome!="local"}[10m])) > 0.5
	        for: 10m
	      - alert: CircuitBreakerOpen
	        expr: circuit_breaker_state == 2
	        for: 5m

# Thread Safety

All metric operations are thread-safe. Prometheus client library handles
concurrent updates internally.
*/
package metrics
