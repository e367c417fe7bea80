// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/internmatch/internal/catalog"
	"github.com/tomtom215/internmatch/internal/recommend"
)

const validProfile = `{
	"name": "Asha",
	"education": "B.Tech",
	"skills": ["JavaScript", "React"],
	"interests": ["Technology"],
	"location": "Mumbai",
	"preferredType": "Full-time"
}`

// stubRemote returns a canned payload or error.
type stubRemote struct {
	payload string
	err     error
}

func (s *stubRemote) Name() string { return "stub" }

func (s *stubRemote) Complete(context.Context, string) (string, error) {
	return s.payload, s.err
}

type stubBreaker string

func (s stubBreaker) BreakerState() string { return string(s) }

// envelope mirrors models.APIResponse with raw data for decoding in tests.
type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata struct {
		Timestamp string `json:"timestamp"`
	} `json:"metadata"`
	Error *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

type resultPayload struct {
	Recommendations []struct {
		ID             int                    `json:"id"`
		MatchScore     int                    `json:"matchScore"`
		MatchReasons   []string               `json:"matchReasons"`
		ScoreBreakdown map[string]interface{} `json:"scoreBreakdown"`
	} `json:"recommendations"`
	Summary       string `json:"summary"`
	IsAIGenerated bool   `json:"isAIGenerated"`
	Outcome       string `json:"outcome"`
	Provider      string `json:"provider"`
}

func newTestEngine(t *testing.T, cat *catalog.Catalog, remote recommend.RemoteScorer) *recommend.Engine {
	t.Helper()
	if cat == nil {
		cat = catalog.Default()
	}
	engine, err := recommend.NewEngine(nil, cat, remote, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

// newTestServer builds the full router with rate limiting disabled.
func newTestServer(t *testing.T, remote recommend.RemoteScorer, cfg HandlerConfig) http.Handler {
	t.Helper()
	handler := NewHandler(newTestEngine(t, nil, remote), cfg)
	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.CORSAllowedOrigins = []string{"*"}
	mwCfg.RateLimitDisabled = true
	return NewRouter(handler, NewChiMiddleware(mwCfg)).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v (data %s)", err, env.Data)
	}
}

func TestRecommend_LocalOnly(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, HandlerConfig{})
	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/recommendations", validProfile)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if env.Status != "success" {
		t.Errorf("envelope status = %q, want success", env.Status)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}

	var result resultPayload
	decodeData(t, env, &result)

	if result.IsAIGenerated {
		t.Error("isAIGenerated = true without a remote scorer")
	}
	if result.Summary != recommend.SummaryLocal {
		t.Errorf("summary = %q, want %q", result.Summary, recommend.SummaryLocal)
	}
	if result.Outcome != "local" {
		t.Errorf("outcome = %q, want local", result.Outcome)
	}
	if len(result.Recommendations) != 5 {
		t.Fatalf("got %d recommendations, want 5", len(result.Recommendations))
	}
	if result.Recommendations[0].ID != 1 {
		t.Errorf("top recommendation id = %d, want 1", result.Recommendations[0].ID)
	}
	if result.Recommendations[0].MatchScore != 105 {
		t.Errorf("top score = %d, want 105", result.Recommendations[0].MatchScore)
	}
	for i := 1; i < len(result.Recommendations); i++ {
		if result.Recommendations[i].MatchScore > result.Recommendations[i-1].MatchScore {
			t.Errorf("recommendations not sorted at %d", i)
		}
	}
}

func TestRecommend_RemoteResult(t *testing.T) {
	t.Parallel()

	remote := &stubRemote{payload: "```json\n" +
		`{"recommendations":[{"id":3,"matchScore":91,"matchReasons":["Strong SQL"]},{"id":999,"matchScore":80,"matchReasons":[]},{"id":1,"matchScore":70,"matchReasons":["Web stack"]}],"summary":"Picked for you"}` +
		"\n```"}
	srv := newTestServer(t, remote, HandlerConfig{})

	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/recommendations", validProfile)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result resultPayload
	decodeData(t, env, &result)

	if !result.IsAIGenerated {
		t.Error("isAIGenerated = false, want true")
	}
	if result.Summary != "Picked for you" {
		t.Errorf("summary = %q", result.Summary)
	}
	if result.Provider != "stub" {
		t.Errorf("provider = %q, want stub", result.Provider)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2 (unknown id dropped)", len(result.Recommendations))
	}
	if result.Recommendations[0].ID != 3 || result.Recommendations[1].ID != 1 {
		t.Errorf("order = [%d %d], want remote order [3 1]", result.Recommendations[0].ID, result.Recommendations[1].ID)
	}
	if result.Recommendations[0].MatchScore != 91 {
		t.Errorf("score = %d, want remote score 91", result.Recommendations[0].MatchScore)
	}
}

func TestRecommend_RemoteFailureFallsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		remote  *stubRemote
		outcome string
	}{
		{"transport error", &stubRemote{err: errors.New("connection refused")}, "fallback_transport"},
		{"unparseable payload", &stubRemote{payload: "I cannot help with that"}, "fallback_parse"},
		{"only unknown ids", &stubRemote{payload: `{"recommendations":[{"id":404}],"summary":"x"}`}, "fallback_empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(t, tt.remote, HandlerConfig{})
			rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/recommendations", validProfile)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var result resultPayload
			decodeData(t, env, &result)
			if result.IsAIGenerated {
				t.Error("isAIGenerated = true on fallback")
			}
			if result.Outcome != tt.outcome {
				t.Errorf("outcome = %q, want %q", result.Outcome, tt.outcome)
			}
			if tt.outcome != "fallback_empty" && len(result.Recommendations) == 0 {
				t.Error("fallback returned no recommendations")
			}
		})
	}
}

func TestRecommend_BadRequests(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, HandlerConfig{})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"empty body", "", http.StatusBadRequest, "INVALID_JSON"},
		{"malformed json", `{"education":`, http.StatusBadRequest, "INVALID_JSON"},
		{"wrong type", `{"education":"B.Tech","skills":"Go","interests":["Technology"],"location":"Pune"}`, http.StatusBadRequest, "INVALID_JSON"},
		{"missing skills", `{"education":"B.Tech","interests":["Technology"],"location":"Pune"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"blank education", `{"education":"  ","skills":["Go"],"interests":["Technology"],"location":"Pune"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"too many skills", `{"education":"B.Tech","skills":["a","b","c","d","e","f"],"interests":["Technology"],"location":"Pune"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"too many interests", `{"education":"B.Tech","skills":["Go"],"interests":["a","b","c","d"],"location":"Pune"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown preferred type", `{"education":"B.Tech","skills":["Go"],"interests":["Technology"],"location":"Pune","preferredType":"Contract"}`, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"oversized body", `{"education":"` + strings.Repeat("a", maxRequestBodyBytes) + `"}`, http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/recommendations", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if env.Status != "error" || env.Error == nil {
				t.Fatalf("expected error envelope, got %s", rec.Body.String())
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", env.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestRecommendLocal_IncludesBreakdown(t *testing.T) {
	t.Parallel()

	// The remote scorer must not be consulted by the local endpoint.
	srv := newTestServer(t, &stubRemote{err: errors.New("must not be called")}, HandlerConfig{})
	rec, env := doRequest(t, srv, http.MethodPost, "/api/v1/recommendations/local", validProfile)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result resultPayload
	decodeData(t, env, &result)
	if result.Outcome != "local" || result.IsAIGenerated {
		t.Errorf("outcome = %q ai = %v, want local/false", result.Outcome, result.IsAIGenerated)
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("no recommendations")
	}
	top := result.Recommendations[0]
	if top.ScoreBreakdown == nil {
		t.Fatal("scoreBreakdown missing")
	}
	if total, ok := top.ScoreBreakdown["total"].(float64); !ok || total != 105 {
		t.Errorf("breakdown total = %v, want 105", top.ScoreBreakdown["total"])
	}
}

func TestRecommendStats(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, HandlerConfig{})
	doRequest(t, srv, http.MethodPost, "/api/v1/recommendations", validProfile)

	rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/recommendations/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var stats struct {
		Metrics struct {
			RequestCount int64 `json:"request_count"`
		} `json:"metrics"`
		Config struct {
			TopN int `json:"top_n"`
		} `json:"config"`
		RemoteEnabled bool `json:"remote_enabled"`
	}
	decodeData(t, env, &stats)

	if stats.Metrics.RequestCount != 1 {
		t.Errorf("request_count = %d, want 1", stats.Metrics.RequestCount)
	}
	if stats.Config.TopN != 5 {
		t.Errorf("top_n = %d, want 5", stats.Config.TopN)
	}
	if stats.RemoteEnabled {
		t.Error("remote_enabled = true without a remote scorer")
	}
}

func TestListInternships(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, HandlerConfig{})

	tests := []struct {
		name      string
		query     string
		wantTotal int
	}{
		{"no filters", "", 10},
		{"sector", "?sector=technology", 2},
		{"type", "?type=part-time", 2},
		{"location substring", "?location=maharashtra", 2},
		{"combined", "?sector=Technology&location=Mumbai", 1},
		{"no match", "?location=Atlantis", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/internships"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
			}
			if got := rec.Header().Get("Cache-Control"); got != catalogCacheControl {
				t.Errorf("Cache-Control = %q, want %q", got, catalogCacheControl)
			}

			var list struct {
				Total       int               `json:"total"`
				Internships []json.RawMessage `json:"internships"`
			}
			decodeData(t, env, &list)
			if list.Total != tt.wantTotal || len(list.Internships) != tt.wantTotal {
				t.Errorf("total = %d (len %d), want %d", list.Total, len(list.Internships), tt.wantTotal)
			}
		})
	}
}

func TestListInternships_InvalidFilters(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, HandlerConfig{})
	for _, query := range []string{"?sector=Astrology", "?type=Contract"} {
		rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/internships"+query, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", query, rec.Code)
			continue
		}
		if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
			t.Errorf("%s: expected VALIDATION_ERROR, got %s", query, rec.Body.String())
		}
	}
}

func TestGetInternship(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, HandlerConfig{})

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"known", "3", http.StatusOK},
		{"unknown", "9999", http.StatusNotFound},
		{"not a number", "abc", http.StatusBadRequest},
		{"zero", "0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/internships/"+tt.id, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var posting struct {
				ID     int    `json:"id"`
				Title  string `json:"title"`
				Sector string `json:"sector"`
				Type   string `json:"type"`
			}
			decodeData(t, env, &posting)
			if posting.ID != 3 || posting.Sector != "Analytics" || posting.Type != "Full-time" {
				t.Errorf("posting = %+v", posting)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	custom := catalog.FormOptions{Education: []string{"PhD"}, Sectors: []string{"Technology"}}

	tests := []struct {
		name        string
		cfg         HandlerConfig
		wantSectors int
	}{
		{"defaults", HandlerConfig{}, len(catalog.Sectors)},
		{"override", HandlerConfig{Options: &custom}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(t, nil, tt.cfg)
			rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/options", "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var opts catalog.FormOptions
			decodeData(t, env, &opts)
			if len(opts.Sectors) != tt.wantSectors {
				t.Errorf("got %d sectors, want %d", len(opts.Sectors), tt.wantSectors)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remote     recommend.RemoteScorer
		breaker    BreakerStateReporter
		wantStatus string
	}{
		{"local only", nil, nil, healthHealthy},
		{"remote closed breaker", &stubRemote{}, stubBreaker("closed"), healthHealthy},
		{"remote open breaker", &stubRemote{}, stubBreaker("open"), healthDegraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(t, tt.remote, HandlerConfig{Version: "1.2.3", Breaker: tt.breaker})
			rec, env := doRequest(t, srv, http.MethodGet, "/api/v1/health", "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var health struct {
				Status         string `json:"status"`
				Version        string `json:"version"`
				CatalogSize    int    `json:"catalog_size"`
				RemoteEnabled  bool   `json:"remote_enabled"`
				RemoteProvider string `json:"remote_provider"`
			}
			decodeData(t, env, &health)

			if health.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", health.Status, tt.wantStatus)
			}
			if health.Version != "1.2.3" || health.CatalogSize != 10 {
				t.Errorf("health = %+v", health)
			}
			if health.RemoteEnabled != (tt.remote != nil) {
				t.Errorf("remote_enabled = %v", health.RemoteEnabled)
			}
		})
	}
}

func TestHealthProbes(t *testing.T) {
	t.Parallel()

	empty, err := catalog.New(nil)
	if err != nil {
		t.Fatalf("catalog.New(nil) error = %v", err)
	}

	tests := []struct {
		name      string
		cat       *catalog.Catalog
		path      string
		wantCode  int
		wantState string
	}{
		{"live", nil, "/api/v1/health/live", http.StatusOK, "success"},
		{"ready", nil, "/api/v1/health/ready", http.StatusOK, healthReady},
		{"not ready on empty catalog", empty, "/api/v1/health/ready", http.StatusServiceUnavailable, healthNotReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewHandler(newTestEngine(t, tt.cat, nil), HandlerConfig{})
			srv := NewRouter(handler, nil).SetupChi()

			rec, env := doRequest(t, srv, http.MethodGet, tt.path, "")
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if env.Status != tt.wantState {
				t.Errorf("envelope status = %q, want %q", env.Status, tt.wantState)
			}
		})
	}
}
