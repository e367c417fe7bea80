// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/internmatch/internal/logging"
	"github.com/tomtom215/internmatch/internal/models"
	"github.com/tomtom215/internmatch/internal/validation"
)

// maxRequestBodyBytes bounds JSON request bodies. A full profile is well under 4KB.
const maxRequestBodyBytes = 64 << 10

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
// Newlines, carriage returns, tabs and other control characters are escaped.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
// Responses are not cacheable unless the handler set Cache-Control first.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "no-store")
	}
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondSuccess wraps data in a success envelope. start is the time the
// handler began work and feeds query_time_ms.
func respondSuccess(w http.ResponseWriter, data interface{}, start time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now().UTC(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondAPIError(w, status, &models.APIError{
		Code:    code,
		Message: message,
	})
}

// respondAPIError sends a prepared APIError, details included.
func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	respondJSON(w, status, &models.APIResponse{
		Status: models.StatusError,
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: apiErr,
	})
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
//
// Example:
//
//	var req models.RecommendationRequest
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondAPIError(w, http.StatusBadRequest, apiErr)
//	    return
//	}
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// decodeJSONBody decodes a bounded JSON request body into dst. The returned
// status is 413 for oversized bodies and 400 for everything else.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) (int, *models.APIError) {
	if r.Body == nil {
		return http.StatusBadRequest, &models.APIError{Code: models.ErrCodeInvalidJSON, Message: "Request body is required"}
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return http.StatusRequestEntityTooLarge, &models.APIError{
				Code:    models.ErrCodeBodyTooLarge,
				Message: fmt.Sprintf("Request body must not exceed %d bytes", maxErr.Limit),
			}
		}
		return http.StatusBadRequest, &models.APIError{Code: models.ErrCodeInvalidJSON, Message: "Failed to read request body"}
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return http.StatusBadRequest, &models.APIError{Code: models.ErrCodeInvalidJSON, Message: "Request body is required"}
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return http.StatusBadRequest, &models.APIError{
			Code:    models.ErrCodeInvalidJSON,
			Message: "Request body is not valid JSON",
			Details: map[string]interface{}{"error": sanitizeLogValue(err.Error())},
		}
	}
	return 0, nil
}
