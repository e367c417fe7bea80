// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package llm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
)

type openAIFake struct {
	calls   atomic.Int32
	request map[string]any
	auth    string
}

func newOpenAIServer(t *testing.T, status int, body string) (*httptest.Server, *openAIFake) {
	t.Helper()
	fake := &openAIFake{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.calls.Add(1)
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fake.auth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &fake.request)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, fake
}

func newTestOpenAI(baseURL string) *OpenAIClient {
	cfg := testLLMConfig()
	cfg.Model = "gpt-test"
	cfg.BaseURL = baseURL
	return NewOpenAIClient(cfg, "sk-test")
}

func completionBody(content string) string {
	msg, _ := json.Marshal(content)
	return `{"id":"chatcmpl-1","object":"chat.completion","created":1700000000,"model":"gpt-test",` +
		`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":` + string(msg) + `}}]}`
}

func TestOpenAIClient_Complete(t *testing.T) {
	t.Parallel()

	srv, fake := newOpenAIServer(t, http.StatusOK, completionBody(`{"recommendations":[{"id":1}],"summary":"s"}`))
	client := newTestOpenAI(srv.URL)

	got, err := client.Complete(context.Background(), "rank internships")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != `{"recommendations":[{"id":1}],"summary":"s"}` {
		t.Errorf("Complete() = %q", got)
	}
	if fake.auth != "Bearer sk-test" {
		t.Errorf("Authorization = %q, want Bearer sk-test", fake.auth)
	}
	if fake.request["model"] != "gpt-test" {
		t.Errorf("model = %v, want gpt-test", fake.request["model"])
	}
	format, _ := fake.request["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Errorf("response_format = %v, want json_object", fake.request["response_format"])
	}
	messages, _ := fake.request["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("len(messages) = %d, want 2", len(messages))
	}
	user, _ := messages[1].(map[string]any)
	if user["role"] != "user" || user["content"] != "rank internships" {
		t.Errorf("user message = %v", user)
	}
}

func TestOpenAIClient_NoRetry(t *testing.T) {
	t.Parallel()

	srv, fake := newOpenAIServer(t, http.StatusInternalServerError, `{"error":{"message":"boom","type":"server_error"}}`)
	client := newTestOpenAI(srv.URL)

	if _, err := client.Complete(context.Background(), "p"); err == nil {
		t.Fatal("Complete() expected error for HTTP 500")
	}
	if got := fake.calls.Load(); got != 1 {
		t.Errorf("server calls = %d, want exactly 1", got)
	}
}

func TestOpenAIClient_EmptyResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"no choices", `{"id":"x","object":"chat.completion","created":1,"model":"gpt-test","choices":[]}`},
		{"blank content", completionBody("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv, _ := newOpenAIServer(t, http.StatusOK, tt.body)
			_, err := newTestOpenAI(srv.URL).Complete(context.Background(), "p")
			if !errors.Is(err, ErrEmptyResponse) {
				t.Errorf("Complete() error = %v, want ErrEmptyResponse", err)
			}
		})
	}
}
