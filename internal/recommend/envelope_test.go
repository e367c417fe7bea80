// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/internmatch/internal/catalog"
)

func TestStripCodeFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json {\"a\":1} ```  \n", `{"a":1}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := stripCodeFences(tt.input); got != tt.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseEnvelope_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"only fences", "```json\n```"},
		{"not json", "Here are my recommendations: 3, 5, 7"},
		{"missing recommendations", `{"summary":"s"}`},
		{"null recommendations", `{"recommendations":null,"summary":"s"}`},
		{"recommendations not a list", `{"recommendations":"3,5","summary":"s"}`},
		{"truncated", `{"recommendations":[{"id":3,`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parseEnvelope(tt.raw)
			if !errors.Is(err, ErrMalformedEnvelope) {
				t.Errorf("parseEnvelope(%q) error = %v, want ErrMalformedEnvelope", tt.raw, err)
			}
		})
	}
}

func TestParseEnvelope_EmptyList(t *testing.T) {
	t.Parallel()

	env, err := parseEnvelope(`{"recommendations":[],"summary":"none"}`)
	if err != nil {
		t.Fatalf("parseEnvelope() error = %v", err)
	}
	if got := env.resolve(catalog.Default()); len(got) != 0 {
		t.Errorf("len(resolve()) = %d, want 0", len(got))
	}
	if env.Summary != "none" {
		t.Errorf("Summary = %q, want %q", env.Summary, "none")
	}
}

func TestEnvelope_Resolve(t *testing.T) {
	t.Parallel()

	raw := `{
		"recommendations": [
			{"id": 99, "matchScore": 90, "matchReasons": ["ghost"]},
			{"id": 5, "matchScore": 88.5, "matchReasons": ["writing"]},
			{"id": "2", "matchScore": 80, "matchReasons": ["string id"]},
			{"id": 2.5, "matchScore": 80},
			{"id": 7},
			{"id": 5, "matchScore": 10, "matchReasons": ["repeat"]}
		],
		"summary": "mixed"
	}`

	env, err := parseEnvelope(raw)
	if err != nil {
		t.Fatalf("parseEnvelope() error = %v", err)
	}

	got := env.resolve(catalog.Default())

	if ids := resultIDs(got); !reflect.DeepEqual(ids, []int{5, 7}) {
		t.Fatalf("ids = %v, want [5 7]", ids)
	}
	if got[0].MatchScore != 89 {
		t.Errorf("results[0].MatchScore = %d, want 89", got[0].MatchScore)
	}
	if !reflect.DeepEqual(got[0].MatchReasons, []string{"writing"}) {
		t.Errorf("results[0].MatchReasons = %q, want [writing]", got[0].MatchReasons)
	}
	if got[0].Title != "Content Writing Intern" {
		t.Errorf("results[0].Title = %q, want catalog title", got[0].Title)
	}
	if got[1].MatchScore != 0 {
		t.Errorf("results[1].MatchScore = %d, want 0", got[1].MatchScore)
	}
	if got[1].MatchReasons == nil || len(got[1].MatchReasons) != 0 {
		t.Errorf("results[1].MatchReasons = %#v, want empty non-nil slice", got[1].MatchReasons)
	}
}

func TestRemoteScore(t *testing.T) {
	t.Parallel()

	f := func(v float64) *float64 { return &v }
	tests := []struct {
		name string
		in   *float64
		want int
	}{
		{"missing", nil, 0},
		{"integral", f(88), 88},
		{"half rounds up", f(88.5), 89},
		{"below half rounds down", f(88.49), 88},
		{"negative clamps to zero", f(-40), 0},
		{"small negative clamps to zero", f(-0.4), 0},
		{"huge clamps to max", f(1e300), math.MaxInt32},
		{"just above max", f(float64(math.MaxInt32) + 10), math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := remoteScore(tt.in); got != tt.want {
				t.Errorf("remoteScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEnvelope_Resolve_ClampsScores(t *testing.T) {
	t.Parallel()

	env, err := parseEnvelope(`{"recommendations":[
		{"id": 1, "matchScore": -40},
		{"id": 2, "matchScore": 1e300}
	],"summary":"out of range"}`)
	if err != nil {
		t.Fatalf("parseEnvelope() error = %v", err)
	}

	got := env.resolve(catalog.Default())
	if len(got) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(got))
	}
	if got[0].MatchScore != 0 {
		t.Errorf("results[0].MatchScore = %d, want 0", got[0].MatchScore)
	}
	if got[1].MatchScore != math.MaxInt32 {
		t.Errorf("results[1].MatchScore = %d, want %d", got[1].MatchScore, math.MaxInt32)
	}
}
