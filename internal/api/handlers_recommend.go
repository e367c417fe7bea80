// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/internmatch/internal/logging"
	"github.com/tomtom215/internmatch/internal/models"
	"github.com/tomtom215/internmatch/internal/recommend"
)

// EngineStats is the payload of the engine metrics endpoint.
type EngineStats struct {
	Metrics        recommend.Metrics `json:"metrics"`
	Config         recommend.Config  `json:"config"`
	RemoteEnabled  bool              `json:"remote_enabled"`
	RemoteProvider string            `json:"remote_provider,omitempty"`
}

// readProfile decodes and validates a recommendation request. It writes the
// error response itself and reports whether the caller may continue.
func readProfile(w http.ResponseWriter, r *http.Request) (recommend.CandidateProfile, bool) {
	var req models.RecommendationRequest
	if status, apiErr := decodeJSONBody(w, r, &req); apiErr != nil {
		respondAPIError(w, status, apiErr)
		return recommend.CandidateProfile{}, false
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return recommend.CandidateProfile{}, false
	}

	profile, err := req.ToProfile()
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return recommend.CandidateProfile{}, false
	}
	return profile, true
}

// Recommend handles POST /api/v1/recommendations.
// Returns the top recommendations for the submitted profile. Remote scorer
// failures never surface as errors; they degrade to the local result.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	profile, ok := readProfile(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	result := h.engine.Recommend(ctx, profile)

	logging.Ctx(r.Context()).Info().
		Str("outcome", result.Outcome.String()).
		Str("provider", result.Provider).
		Bool("ai_generated", result.IsAIGenerated).
		Int("returned", len(result.Recommendations)).
		Msg("Recommendations served")

	respondSuccess(w, result, start)
}

// RecommendLocal handles POST /api/v1/recommendations/local.
// Runs only the local scorer and attaches per-dimension score breakdowns.
func (h *Handler) RecommendLocal(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	profile, ok := readProfile(w, r)
	if !ok {
		return
	}

	respondSuccess(w, recommend.RecommendationResult{
		Recommendations: h.engine.Explain(profile),
		Summary:         recommend.SummaryLocal,
		IsAIGenerated:   false,
		Outcome:         recommend.OutcomeLocal,
	}, start)
}

// RecommendStats handles GET /api/v1/recommendations/metrics.
func (h *Handler) RecommendStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondSuccess(w, EngineStats{
		Metrics:        h.engine.GetMetrics(),
		Config:         h.engine.GetConfig(),
		RemoteEnabled:  h.engine.RemoteEnabled(),
		RemoteProvider: h.engine.ProviderName(),
	}, start)
}
