// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package models defines the HTTP request and response shapes for Internmatch.

Domain types (postings, profiles, results) live in the catalog and recommend
packages. This package holds the API envelope and the request DTOs that are
validated before they are converted into domain values:

  - APIResponse, Metadata, APIError: the envelope every endpoint returns
  - RecommendationRequest: the candidate profile as submitted by a client
  - InternshipQuery: listing filters from the query string
  - HealthStatus: payload of the health endpoints
*/
package models
