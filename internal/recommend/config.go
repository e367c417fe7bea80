// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/internmatch/internal/config"
)

// Summary texts returned with local results.
const (
	// SummaryLocal accompanies results when no remote scorer is configured.
	SummaryLocal = "Recommendations generated using our matching algorithm"

	// SummaryTransportFallback accompanies results after a failed remote call.
	SummaryTransportFallback = SummaryLocal + " (AI fallback)"

	// SummaryParseFallback accompanies results after an unusable remote payload.
	SummaryParseFallback = SummaryLocal + " (AI parse error)"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights defines the points awarded per matching dimension.
	Weights Weights `json:"weights"`

	// TopN is the number of local recommendations returned.
	TopN int `json:"top_n"`

	// ScoreCap clamps local scores to this value when positive.
	// Zero keeps scores uncapped, so a full match scores 105 with default weights.
	ScoreCap int `json:"score_cap"`

	// IncludeBreakdown attaches per-dimension scores to local results.
	IncludeBreakdown bool `json:"include_breakdown"`

	// RemoteTimeout bounds the single remote scoring attempt.
	RemoteTimeout time.Duration `json:"remote_timeout"`
}

// ConfigFrom maps the application recommend settings onto an engine Config.
func ConfigFrom(r *config.RecommendConfig) *Config {
	return &Config{
		Weights: Weights{
			Education: r.Weights.Education,
			Skills:    r.Weights.Skills,
			Interest:  r.Weights.Interest,
			Location:  r.Weights.Location,
			TypeBonus: r.Weights.TypeBonus,
		},
		TopN:             r.TopN,
		ScoreCap:         r.ScoreCap,
		IncludeBreakdown: r.IncludeBreakdown,
		RemoteTimeout:    r.RemoteTimeout,
	}
}

// Weights holds the points per dimension. Education, interest, location and
// type bonus are all-or-nothing; skills are prorated by the matched fraction.
type Weights struct {
	Education float64 `json:"education"`
	Skills    float64 `json:"skills"`
	Interest  float64 `json:"interest"`
	Location  float64 `json:"location"`
	TypeBonus float64 `json:"type_bonus"`
}

// Max returns the highest reachable unclamped score.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Max() float64 {
	return w.Education + w.Skills + w.Interest + w.Location + w.TypeBonus
}

// DefaultWeights returns the 30/40/20/10 (+5) weighting.
func DefaultWeights() Weights {
	return Weights{
		Education: 30,
		Skills:    40,
		Interest:  20,
		Location:  10,
		TypeBonus: 5,
	}
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights:          DefaultWeights(),
		TopN:             5,
		ScoreCap:         0,
		IncludeBreakdown: false,
		RemoteTimeout:    30 * time.Second,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	weights := map[string]float64{
		"weights.education":  c.Weights.Education,
		"weights.skills":     c.Weights.Skills,
		"weights.interest":   c.Weights.Interest,
		"weights.location":   c.Weights.Location,
		"weights.type_bonus": c.Weights.TypeBonus,
	}
	for name, w := range weights {
		if w < 0 {
			return fmt.Errorf("%s must be non-negative, got %f", name, w)
		}
	}

	if c.TopN < 1 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.ScoreCap < 0 {
		return fmt.Errorf("score_cap must be non-negative, got %d", c.ScoreCap)
	}
	if c.RemoteTimeout <= 0 {
		return fmt.Errorf("remote_timeout must be positive, got %v", c.RemoteTimeout)
	}

	return nil
}
