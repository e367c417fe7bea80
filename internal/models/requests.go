// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package models

import (
	"fmt"
	"strings"

	"github.com/tomtom215/internmatch/internal/catalog"
	"github.com/tomtom215/internmatch/internal/recommend"
)

// RecommendationRequest is the candidate profile submitted to the
// recommendation endpoints.
type RecommendationRequest struct {
	Name          string   `json:"name,omitempty" validate:"omitempty,max=100"`
	Education     string   `json:"education" validate:"required,notblank,max=100"`
	Skills        []string `json:"skills" validate:"required,min=1,max=5,dive,notblank,max=50"`
	Interests     []string `json:"interests" validate:"required,min=1,max=3,dive,notblank,max=50"`
	Location      string   `json:"location" validate:"required,notblank,max=100"`
	PreferredType string   `json:"preferredType,omitempty" validate:"omitempty,employment_type"`
}

// ToProfile converts a validated request into a candidate profile.
// Entries are trimmed; matching semantics are left to the scorer.
func (r *RecommendationRequest) ToProfile() (recommend.CandidateProfile, error) {
	t, err := catalog.ParseEmploymentType(r.PreferredType)
	if err != nil {
		return recommend.CandidateProfile{}, fmt.Errorf("preferredType: %w", err)
	}
	return recommend.CandidateProfile{
		Name:          strings.TrimSpace(r.Name),
		Education:     strings.TrimSpace(r.Education),
		Skills:        trimAll(r.Skills),
		Interests:     trimAll(r.Interests),
		Location:      strings.TrimSpace(r.Location),
		PreferredType: t,
	}, nil
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

// InternshipQuery holds the listing filters read from the query string.
type InternshipQuery struct {
	Sector   string `json:"sector" validate:"omitempty,sector"`
	Type     string `json:"type" validate:"omitempty,employment_type"`
	Location string `json:"location" validate:"omitempty,max=100"`
}

// ToFilter converts a validated query into a catalog filter.
func (q *InternshipQuery) ToFilter() (catalog.Filter, error) {
	var f catalog.Filter
	if q.Sector != "" {
		s, err := catalog.ParseSector(q.Sector)
		if err != nil {
			return f, fmt.Errorf("sector: %w", err)
		}
		f.Sector = s
	}
	t, err := catalog.ParseEmploymentType(q.Type)
	if err != nil {
		return f, fmt.Errorf("type: %w", err)
	}
	f.Type = t
	f.Location = q.Location
	return f, nil
}

// InternshipList is the payload of the listing endpoint.
type InternshipList struct {
	Total       int               `json:"total"`
	Internships []catalog.Posting `json:"internships"`
}

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status         string `json:"status"`
	Version        string `json:"version,omitempty"`
	Uptime         string `json:"uptime,omitempty"`
	CatalogSize    int    `json:"catalog_size"`
	RemoteEnabled  bool   `json:"remote_enabled"`
	RemoteProvider string `json:"remote_provider,omitempty"`
	BreakerState   string `json:"breaker_state,omitempty"`
}
