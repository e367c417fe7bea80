// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package middleware provides HTTP middleware shared by the API router.

Each middleware has the http.HandlerFunc decorator shape and is adapted to
chi with a one-line wrapper in the api package.

  - RequestID: accepts a well-formed upstream X-Request-ID or generates a
    UUID, echoes it, and stores a logger tagged with it for logging.Ctx
  - PrometheusMetrics: request count, latency and in-flight gauge labelled
    by chi route pattern so path parameters do not explode cardinality
  - AccessLog: one structured zerolog line per request

Recommended order (outermost first): RequestID, AccessLog, PrometheusMetrics.
*/
package middleware
