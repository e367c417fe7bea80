// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package api provides the HTTP surface of the recommendation engine.

Routing uses github.com/go-chi/chi/v5 with a middleware stack built from the
chi ecosystem (go-chi/cors, go-chi/httprate, chi's RealIP, Recoverer and
Compress) plus the project's own request ID, access log and Prometheus
middleware from internal/middleware.

# Endpoints

	POST /api/v1/recommendations          candidate profile -> top recommendations
	POST /api/v1/recommendations/local    local scorer only, with score breakdowns
	GET  /api/v1/recommendations/metrics  engine counters and effective scoring config
	GET  /api/v1/internships              catalog listing (?sector=&type=&location=)
	GET  /api/v1/internships/{id}         single posting
	GET  /api/v1/options                  suggestion lists for the profile form
	GET  /api/v1/health                   health summary
	GET  /api/v1/health/live              liveness probe
	GET  /api/v1/health/ready             readiness probe
	GET  /metrics                         Prometheus exposition

# Response Envelope

Every JSON response uses models.APIResponse:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "...", "query_time_ms": 2}}
	{"status": "error", "data": null, "error": {"code": "VALIDATION_ERROR", "message": "..."}, "metadata": {...}}

The recommendation endpoint never reports a remote scorer failure as an
HTTP error. Remote problems degrade to the local result and are visible
only through the outcome field, logs and metrics.
*/
package api
