// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/internmatch/internal/catalog"
)

// Reason texts recorded by the local scorer.
const (
	ReasonEducation = "Education matches requirements"
	ReasonInterest  = "Matches your interest areas"
	ReasonLocation  = "Located in your preferred area"
)

// LocalScorer ranks postings with deterministic rules.
// It holds no mutable state and is safe for concurrent use.
type LocalScorer struct {
	weights   Weights
	topN      int
	scoreCap  int
	breakdown bool
}

// NewLocalScorer creates a scorer from cfg. A nil cfg uses DefaultConfig.
func NewLocalScorer(cfg *Config) *LocalScorer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &LocalScorer{
		weights:   cfg.Weights,
		topN:      cfg.TopN,
		scoreCap:  cfg.ScoreCap,
		breakdown: cfg.IncludeBreakdown,
	}
}

// Score evaluates every posting against profile and returns the best
// matches, highest score first. Equal scores keep catalog order.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func (s *LocalScorer) Score(profile CandidateProfile, postings []catalog.Posting) []ScoredPosting {
	return s.score(profile, postings, s.breakdown)
}

// Explain is Score with per-dimension breakdowns always attached.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func (s *LocalScorer) Explain(profile CandidateProfile, postings []catalog.Posting) []ScoredPosting {
	return s.score(profile, postings, true)
}

//nolint:gocritic // hugeParam: profile passed by value for immutability
func (s *LocalScorer) score(profile CandidateProfile, postings []catalog.Posting, withBreakdown bool) []ScoredPosting {
	scored := make([]ScoredPosting, len(postings))
	for i := range postings {
		scored[i] = s.scorePosting(&profile, &postings[i], withBreakdown)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if len(scored) > s.topN {
		scored = scored[:s.topN]
	}
	return scored
}

// scorePosting evaluates one posting. Dimensions are visited in a fixed
// order so that reasons always read education, skills, interest, location, type.
func (s *LocalScorer) scorePosting(profile *CandidateProfile, p *catalog.Posting, withBreakdown bool) ScoredPosting {
	var b ScoreBreakdown
	reasons := make([]string, 0, 5)

	if educationMatches(profile.Education, p.Education) {
		b.Education = s.weights.Education
		reasons = append(reasons, ReasonEducation)
	}

	b.MatchedSkills = matchedSkills(profile.Skills, p.Skills)
	denominator := len(profile.Skills)
	if denominator < 1 {
		denominator = 1
	}
	b.Skills = float64(len(b.MatchedSkills)) / float64(denominator) * s.weights.Skills
	if len(b.MatchedSkills) > 0 {
		reasons = append(reasons, skillsReason(b.MatchedSkills))
	}

	if interestMatches(profile.Interests, p.Sector) {
		b.Interest = s.weights.Interest
		reasons = append(reasons, ReasonInterest)
	}

	if overlaps(p.Location, profile.Location) {
		b.Location = s.weights.Location
		reasons = append(reasons, ReasonLocation)
	}

	if profile.PreferredType.IsSpecified() && profile.PreferredType == p.Type {
		b.TypeBonus = s.weights.TypeBonus
		reasons = append(reasons, typeReason(profile.PreferredType))
	}

	b.Total = b.Education + b.Skills + b.Interest + b.Location + b.TypeBonus

	result := ScoredPosting{
		Posting:      p.Clone(),
		MatchScore:   s.finalScore(b.Total),
		MatchReasons: reasons,
	}
	if withBreakdown {
		result.Breakdown = &b
	}
	return result
}

// finalScore rounds half-up and applies the optional cap.
func (s *LocalScorer) finalScore(total float64) int {
	score := int(math.Floor(total + 0.5))
	if score < 0 {
		score = 0
	}
	if s.scoreCap > 0 && score > s.scoreCap {
		score = s.scoreCap
	}
	return score
}

func skillsReason(matched []string) string {
	return fmt.Sprintf("%d matching skills: %s", len(matched), strings.Join(matched, ", "))
}

func typeReason(t catalog.EmploymentType) string {
	return fmt.Sprintf("Matches your %s preference", strings.ToLower(t.String()))
}
