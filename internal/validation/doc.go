// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package validation validates HTTP request payloads with go-playground/validator v10.

A single validator instance is built lazily and shared; it caches struct
metadata and is safe for concurrent use. Field names in error messages come
from the json tag, so clients see the names they sent.

# Custom Tags

  - notblank: string is not empty after trimming whitespace
  - employment_type: "Full-time", "Part-time" or "Any" (case and hyphen insensitive)
  - sector: one of the catalog sector names (case insensitive)

# Usage

	type RecommendationRequest struct {
	    Education     string   `json:"education" validate:"required,notblank,max=100"`
	    Skills        []string `json:"skills" validate:"required,min=1,max=5,dive,notblank"`
	    PreferredType string   `json:"preferredType" validate:"omitempty,employment_type"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
	    return
	}

Validation errors translate to the VALIDATION_ERROR code used by the API
error envelope.
*/
package validation
