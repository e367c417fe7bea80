// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/internmatch/internal/models"
)

// catalogCacheControl allows clients to cache catalog reads briefly.
const catalogCacheControl = "public, max-age=60"

// ListInternships handles GET /api/v1/internships
//
// Query parameters (all optional):
//   - sector: exact sector name, case-insensitive
//   - type: Full-time or Part-time
//   - location: case-insensitive substring of the posting location
func (h *Handler) ListInternships(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := r.URL.Query()
	query := models.InternshipQuery{
		Sector:   q.Get("sector"),
		Type:     q.Get("type"),
		Location: q.Get("location"),
	}
	if apiErr := validateRequest(&query); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}

	postings := h.engine.Catalog().Find(filter)

	w.Header().Set("Cache-Control", catalogCacheControl)
	respondSuccess(w, models.InternshipList{
		Total:       len(postings),
		Internships: postings,
	}, start)
}

// GetInternship handles GET /api/v1/internships/{id}
func (h *Handler) GetInternship(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, models.ErrCodeValidation, "id must be a positive integer", nil)
		return
	}

	posting, ok := h.engine.Catalog().Lookup(id)
	if !ok {
		respondError(w, http.StatusNotFound, models.ErrCodeNotFound, fmt.Sprintf("Internship %d not found", id), nil)
		return
	}

	w.Header().Set("Cache-Control", catalogCacheControl)
	respondSuccess(w, posting, start)
}

// Options handles GET /api/v1/options
// Returns the suggestion lists used to build a candidate profile form.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	w.Header().Set("Cache-Control", catalogCacheControl)
	respondSuccess(w, h.options, start)
}
