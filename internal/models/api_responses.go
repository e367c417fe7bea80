// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package models

import (
	"time"
)

// APIResponse is the envelope returned by every endpoint.
//
// Success:
//
//	{
//	  "status": "success",
//	  "data": {"recommendations": [...], "summary": "...", "isAIGenerated": false},
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z", "query_time_ms": 3}
//	}
//
// Error:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "VALIDATION_ERROR", "message": "skills is required", "details": {"field": "skills"}},
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is the machine-readable error body.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes used by the API.
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeInvalidJSON  = "INVALID_JSON"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeRateLimited  = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeUnavailable  = "SERVICE_UNAVAILABLE"
	ErrCodeBodyTooLarge = "REQUEST_TOO_LARGE"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)
