// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	"github.com/tomtom215/internmatch/internal/catalog"
)

// CandidateProfile is the self-reported input for a recommendation request.
// Field-presence validation is performed by callers before scoring.
type CandidateProfile struct {
	// Name is optional and only used for logging and prompts.
	Name string `json:"name,omitempty"`

	// Education is the candidate's qualification, e.g. "B.Tech".
	Education string `json:"education"`

	// Skills are the candidate's skills, typically 1-5 entries.
	Skills []string `json:"skills"`

	// Interests are sector names the candidate cares about, typically 1-3 entries.
	Interests []string `json:"interests"`

	// Location is the preferred "City, State".
	Location string `json:"location"`

	// PreferredType is the preferred employment type. TypeUnspecified means any.
	PreferredType catalog.EmploymentType `json:"preferredType,omitempty"`
}

// ScoreBreakdown records the contribution of each dimension to a local score.
type ScoreBreakdown struct {
	Education float64 `json:"education"`
	Skills    float64 `json:"skills"`
	Interest  float64 `json:"interest"`
	Location  float64 `json:"location"`
	TypeBonus float64 `json:"typeBonus"`

	// Total is the unrounded, unclamped sum.
	Total float64 `json:"total"`

	// MatchedSkills are the candidate-side skill names that matched.
	MatchedSkills []string `json:"matchedSkills,omitempty"`
}

// ScoredPosting is a catalog posting annotated with a match score and reasons.
type ScoredPosting struct {
	catalog.Posting

	// MatchScore is the integer score. The local scorer can exceed 100
	// (up to 105 with default weights) unless a cap is configured.
	MatchScore int `json:"matchScore"`

	// MatchReasons are human-readable explanations in discovery order.
	MatchReasons []string `json:"matchReasons"`

	// Breakdown is set by the local scorer when breakdowns are enabled.
	Breakdown *ScoreBreakdown `json:"scoreBreakdown,omitempty"`
}

// Outcome describes which path produced a RecommendationResult.
type Outcome int

const (
	// OutcomeLocal means no remote scorer is configured.
	OutcomeLocal Outcome = iota
	// OutcomeRemote means the remote result was used.
	OutcomeRemote
	// OutcomeTransportFallback means the remote call failed.
	OutcomeTransportFallback
	// OutcomeParseFallback means the remote payload could not be decoded.
	OutcomeParseFallback
	// OutcomeEmptyFallback means no remote entry resolved to a catalog posting.
	OutcomeEmptyFallback
)

// String returns the metric/log label of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeLocal:
		return "local"
	case OutcomeRemote:
		return "remote"
	case OutcomeTransportFallback:
		return "fallback_transport"
	case OutcomeParseFallback:
		return "fallback_parse"
	case OutcomeEmptyFallback:
		return "fallback_empty"
	default:
		return "unknown"
	}
}

// IsFallback reports whether a remote attempt was made and discarded.
func (o Outcome) IsFallback() bool {
	return o == OutcomeTransportFallback || o == OutcomeParseFallback || o == OutcomeEmptyFallback
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// RecommendationResult is the uniform output of the orchestrator.
type RecommendationResult struct {
	// Recommendations are ordered best first.
	Recommendations []ScoredPosting `json:"recommendations"`

	// Summary is a short human-readable explanation of the result.
	Summary string `json:"summary"`

	// IsAIGenerated is true only when the remote result was used.
	IsAIGenerated bool `json:"isAIGenerated"`

	// Outcome records the path taken.
	Outcome Outcome `json:"outcome"`

	// Provider names the remote scorer that was attempted, if any.
	Provider string `json:"provider,omitempty"`
}
