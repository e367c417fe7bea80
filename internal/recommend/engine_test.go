// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/internmatch/internal/catalog"
	"github.com/tomtom215/internmatch/internal/config"
)

// mockRemote implements RemoteScorer for testing.
type mockRemote struct {
	response string
	err      error
	block    bool

	calls      atomic.Int32
	mu         sync.Mutex
	lastPrompt string
}

func (m *mockRemote) Name() string { return "mock" }

func (m *mockRemote) Complete(ctx context.Context, prompt string) (string, error) {
	m.calls.Add(1)
	m.mu.Lock()
	m.lastPrompt = prompt
	m.mu.Unlock()

	if m.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// mockObserver records instrumentation events.
type mockObserver struct {
	mu          sync.Mutex
	outcomes    []string
	remoteCalls int
	remoteErrs  int
	localScores []int
}

func (o *mockObserver) ObserveRecommendation(outcome, _ string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func (o *mockObserver) ObserveRemoteCall(_ string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.remoteCalls++
	if err != nil {
		o.remoteErrs++
	}
}

func (o *mockObserver) ObserveLocalScore(score int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.localScores = append(o.localScores, score)
}

func newTestEngine(t *testing.T, cfg *Config, remote RemoteScorer) *Engine {
	t.Helper()
	engine, err := NewEngine(cfg, catalog.Default(), remote, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	t.Run("nil config uses defaults", func(t *testing.T) {
		t.Parallel()
		engine := newTestEngine(t, nil, nil)
		if engine.GetConfig().TopN != 5 {
			t.Errorf("TopN = %d, want 5", engine.GetConfig().TopN)
		}
		if engine.RemoteEnabled() {
			t.Error("RemoteEnabled() = true, want false")
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.TopN = 0
		if _, err := NewEngine(cfg, catalog.Default(), nil, zerolog.Nop()); err == nil {
			t.Error("expected error for TopN = 0")
		}
	})

	t.Run("nil catalog", func(t *testing.T) {
		t.Parallel()
		if _, err := NewEngine(nil, nil, nil, zerolog.Nop()); err == nil {
			t.Error("expected error for nil catalog")
		}
	})
}

func TestEngine_Recommend_NoRemote(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil, nil)
	profile := fullMatchProfile()

	got := engine.Recommend(context.Background(), profile)
	want := NewLocalScorer(nil).Score(profile, catalog.DefaultPostings())

	if !reflect.DeepEqual(got.Recommendations, want) {
		t.Errorf("Recommendations = %v, want local result %v", resultIDs(got.Recommendations), resultIDs(want))
	}
	if got.Summary != SummaryLocal {
		t.Errorf("Summary = %q, want %q", got.Summary, SummaryLocal)
	}
	if got.IsAIGenerated {
		t.Error("IsAIGenerated = true, want false")
	}
	if got.Outcome != OutcomeLocal {
		t.Errorf("Outcome = %v, want %v", got.Outcome, OutcomeLocal)
	}
	if got.Provider != "" {
		t.Errorf("Provider = %q, want empty", got.Provider)
	}
}

func TestEngine_Recommend_Merge(t *testing.T) {
	t.Parallel()

	remote := &mockRemote{
		response: `{"recommendations":[{"id":3,"matchScore":77,"matchReasons":["x"]}],"summary":"s"}`,
	}
	engine := newTestEngine(t, nil, remote)

	got := engine.Recommend(context.Background(), fullMatchProfile())

	if !got.IsAIGenerated {
		t.Error("IsAIGenerated = false, want true")
	}
	if got.Summary != "s" {
		t.Errorf("Summary = %q, want %q", got.Summary, "s")
	}
	if got.Outcome != OutcomeRemote {
		t.Errorf("Outcome = %v, want %v", got.Outcome, OutcomeRemote)
	}
	if got.Provider != "mock" {
		t.Errorf("Provider = %q, want mock", got.Provider)
	}
	if len(got.Recommendations) != 1 {
		t.Fatalf("len(Recommendations) = %d, want 1", len(got.Recommendations))
	}

	posting, _ := catalog.Default().Lookup(3)
	want := ScoredPosting{Posting: posting, MatchScore: 77, MatchReasons: []string{"x"}}
	if !reflect.DeepEqual(got.Recommendations[0], want) {
		t.Errorf("Recommendations[0] = %+v, want %+v", got.Recommendations[0], want)
	}
	if n := remote.calls.Load(); n != 1 {
		t.Errorf("remote calls = %d, want 1", n)
	}
}

func TestEngine_Recommend_Fallbacks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		remote      *mockRemote
		wantOutcome Outcome
		wantSummary string
	}{
		{
			name:        "transport error",
			remote:      &mockRemote{err: errors.New("status 503")},
			wantOutcome: OutcomeTransportFallback,
			wantSummary: SummaryTransportFallback,
		},
		{
			name:        "not json",
			remote:      &mockRemote{response: "I recommend internship 3."},
			wantOutcome: OutcomeParseFallback,
			wantSummary: SummaryParseFallback,
		},
		{
			name:        "missing recommendations",
			remote:      &mockRemote{response: `{"summary":"s"}`},
			wantOutcome: OutcomeParseFallback,
			wantSummary: SummaryParseFallback,
		},
		{
			name:        "only unknown ids",
			remote:      &mockRemote{response: `{"recommendations":[{"id":42,"matchScore":90,"matchReasons":["x"]}],"summary":"s"}`},
			wantOutcome: OutcomeEmptyFallback,
			wantSummary: SummaryParseFallback,
		},
		{
			name:        "empty list",
			remote:      &mockRemote{response: `{"recommendations":[],"summary":"s"}`},
			wantOutcome: OutcomeEmptyFallback,
			wantSummary: SummaryParseFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := newTestEngine(t, nil, tt.remote)
			profile := fullMatchProfile()

			got := engine.Recommend(context.Background(), profile)
			want := NewLocalScorer(nil).Score(profile, catalog.DefaultPostings())

			if got.IsAIGenerated {
				t.Error("IsAIGenerated = true, want false")
			}
			if got.Outcome != tt.wantOutcome {
				t.Errorf("Outcome = %v, want %v", got.Outcome, tt.wantOutcome)
			}
			if got.Summary != tt.wantSummary {
				t.Errorf("Summary = %q, want %q", got.Summary, tt.wantSummary)
			}
			if got.Provider != "mock" {
				t.Errorf("Provider = %q, want mock", got.Provider)
			}
			if !reflect.DeepEqual(got.Recommendations, want) {
				t.Errorf("Recommendations = %v, want local %v", resultIDs(got.Recommendations), resultIDs(want))
			}
			if n := tt.remote.calls.Load(); n != 1 {
				t.Errorf("remote calls = %d, want 1 (no retry)", n)
			}
		})
	}
}

func TestEngine_Recommend_FencedPayloadKeepsRemoteOrder(t *testing.T) {
	t.Parallel()

	remote := &mockRemote{response: "```json\n" + `{
		"recommendations": [
			{"id": 10, "matchScore": 60, "matchReasons": ["design"]},
			{"id": 404, "matchScore": 99, "matchReasons": ["unknown"]},
			{"id": 1, "matchScore": 95, "matchReasons": ["skills"]}
		],
		"summary": "Two good fits"
	}` + "\n```"}
	engine := newTestEngine(t, nil, remote)

	got := engine.Recommend(context.Background(), fullMatchProfile())

	if got.Outcome != OutcomeRemote {
		t.Fatalf("Outcome = %v, want %v", got.Outcome, OutcomeRemote)
	}
	if ids := resultIDs(got.Recommendations); !reflect.DeepEqual(ids, []int{10, 1}) {
		t.Errorf("ids = %v, want [10 1]", ids)
	}
}

func TestEngine_Recommend_RemoteScoresNeverNegative(t *testing.T) {
	t.Parallel()

	remote := &mockRemote{response: `{"recommendations":[
		{"id": 4, "matchScore": -40, "matchReasons": ["negative"]},
		{"id": 6, "matchScore": 1e300, "matchReasons": ["overflow"]}
	],"summary":"bad scores"}`}
	engine := newTestEngine(t, nil, remote)

	got := engine.Recommend(context.Background(), fullMatchProfile())

	if got.Outcome != OutcomeRemote {
		t.Fatalf("Outcome = %v, want %v", got.Outcome, OutcomeRemote)
	}
	for _, rec := range got.Recommendations {
		if rec.MatchScore < 0 {
			t.Errorf("posting %d MatchScore = %d, want >= 0", rec.ID, rec.MatchScore)
		}
	}
}

func TestEngine_Recommend_RemoteTimeout(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.RemoteTimeout = 20 * time.Millisecond
	remote := &mockRemote{block: true}
	engine := newTestEngine(t, cfg, remote)

	start := time.Now()
	got := engine.Recommend(context.Background(), fullMatchProfile())

	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Recommend took %v, timeout not applied", elapsed)
	}
	if got.Outcome != OutcomeTransportFallback {
		t.Errorf("Outcome = %v, want %v", got.Outcome, OutcomeTransportFallback)
	}
	if len(got.Recommendations) == 0 {
		t.Error("expected local recommendations after timeout")
	}
}

func TestEngine_Recommend_Prompt(t *testing.T) {
	t.Parallel()

	remote := &mockRemote{err: errors.New("offline")}
	engine := newTestEngine(t, nil, remote)

	profile := fullMatchProfile()
	profile.PreferredType = catalog.TypeUnspecified
	engine.Recommend(context.Background(), profile)

	remote.mu.Lock()
	prompt := remote.lastPrompt
	remote.mu.Unlock()

	wantLines := []string{
		"You are an expert career advisor for PM Internship Scheme.",
		"- Education: B.Tech",
		"- Skills: JavaScript, React",
		"- Interests: Technology",
		"- Location: Mumbai, Maharashtra",
		"- Type Preference: Any",
		"3. Data Analytics Intern at DataInsights Corp (Bangalore, Karnataka) - Analytics - Requires: Python, SQL, Excel, Statistics, Data Visualization",
		"10. Graphic Design Intern at Visual Arts Studio (Jaipur, Rajasthan) - Design - Requires:",
		`"recommendations": [`,
	}
	for _, line := range wantLines {
		if !strings.Contains(prompt, line) {
			t.Errorf("prompt missing %q", line)
		}
	}
}

func TestEngine_ObserverAndMetrics(t *testing.T) {
	t.Parallel()

	remote := &mockRemote{err: errors.New("boom")}
	engine := newTestEngine(t, nil, remote)
	obs := &mockObserver{}
	engine.SetObserver(obs)

	engine.Recommend(context.Background(), fullMatchProfile())

	remote.err = nil
	remote.response = `{"recommendations":[{"id":1,"matchScore":90,"matchReasons":["a"]}],"summary":"ok"}`
	engine.Recommend(context.Background(), fullMatchProfile())

	obs.mu.Lock()
	defer obs.mu.Unlock()

	if want := []string{"fallback_transport", "remote"}; !reflect.DeepEqual(obs.outcomes, want) {
		t.Errorf("outcomes = %v, want %v", obs.outcomes, want)
	}
	if obs.remoteCalls != 2 || obs.remoteErrs != 1 {
		t.Errorf("remote calls/errors = %d/%d, want 2/1", obs.remoteCalls, obs.remoteErrs)
	}
	if len(obs.localScores) != 5 {
		t.Errorf("local scores observed = %d, want 5", len(obs.localScores))
	}

	m := engine.GetMetrics()
	if m.RequestCount != 2 {
		t.Errorf("RequestCount = %d, want 2", m.RequestCount)
	}
	if m.RemoteAttempts != 2 {
		t.Errorf("RemoteAttempts = %d, want 2", m.RemoteAttempts)
	}
	if m.RemoteSuccesses != 1 {
		t.Errorf("RemoteSuccesses = %d, want 1", m.RemoteSuccesses)
	}
	if m.TransportFallbacks != 1 {
		t.Errorf("TransportFallbacks = %d, want 1", m.TransportFallbacks)
	}
}

func TestEngine_Explain(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil, &mockRemote{err: errors.New("unused")})
	got := engine.Explain(fullMatchProfile())

	if len(got) != 5 {
		t.Fatalf("len(Explain()) = %d, want 5", len(got))
	}
	for i := range got {
		if got[i].Breakdown == nil {
			t.Errorf("results[%d].Breakdown = nil", i)
		}
	}
	if got[0].Breakdown.Total != 105 {
		t.Errorf("results[0].Breakdown.Total = %v, want 105", got[0].Breakdown.Total)
	}
}

func TestEngine_ConcurrentRecommend(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil, nil)
	want := engine.Recommend(context.Background(), fullMatchProfile())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := engine.Recommend(context.Background(), fullMatchProfile())
			if !reflect.DeepEqual(got, want) {
				t.Error("concurrent Recommend produced a different result")
			}
		}()
	}
	wg.Wait()

	if n := engine.GetMetrics().RequestCount; n != 21 {
		t.Errorf("RequestCount = %d, want 21", n)
	}
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		outcome  Outcome
		want     string
		fallback bool
	}{
		{OutcomeLocal, "local", false},
		{OutcomeRemote, "remote", false},
		{OutcomeTransportFallback, "fallback_transport", true},
		{OutcomeParseFallback, "fallback_parse", true},
		{OutcomeEmptyFallback, "fallback_empty", true},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
		}
		if got := tt.outcome.IsFallback(); got != tt.fallback {
			t.Errorf("Outcome(%d).IsFallback() = %v, want %v", tt.outcome, got, tt.fallback)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative weight", func(c *Config) { c.Weights.Skills = -1 }, true},
		{"zero top_n", func(c *Config) { c.TopN = 0 }, true},
		{"negative cap", func(c *Config) { c.ScoreCap = -5 }, true},
		{"zero timeout", func(c *Config) { c.RemoteTimeout = 0 }, true},
		{"cap at 100", func(c *Config) { c.ScoreCap = 100 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultWeights_Max(t *testing.T) {
	t.Parallel()

	if got := DefaultWeights().Max(); got != 105 {
		t.Errorf("DefaultWeights().Max() = %v, want 105", got)
	}
}

func TestConfigFrom(t *testing.T) {
	t.Parallel()

	got := ConfigFrom(&config.RecommendConfig{
		TopN:             7,
		ScoreCap:         100,
		IncludeBreakdown: true,
		RemoteTimeout:    30 * time.Second,
		StatsInterval:    time.Minute,
		Weights: config.WeightsConfig{
			Education: 30,
			Skills:    40,
			Interest:  20,
			Location:  10,
			TypeBonus: 5,
		},
	})

	want := &Config{
		Weights:          DefaultWeights(),
		TopN:             7,
		ScoreCap:         100,
		IncludeBreakdown: true,
		RemoteTimeout:    30 * time.Second,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ConfigFrom() = %+v, want %+v", got, want)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("mapped config invalid: %v", err)
	}
}
