// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/tomtom215/internmatch/internal/config"
)

// GeminiClient calls the Gemini generateContent API.
type GeminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

// NewGeminiClient creates a Gemini client. cfg.BaseURL, when set, replaces
// the public endpoint.
func NewGeminiClient(ctx context.Context, cfg *config.LLMConfig, apiKey string) (*GeminiClient, error) {
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:      client,
		model:       cfg.ResolvedModel(),
		temperature: float32(cfg.Temperature),
		maxTokens:   int32(cfg.MaxOutputTokens), //nolint:gosec // config.Validate caps this at MaxOutputTokensLimit
	}, nil
}

// Name returns the provider name.
func (g *GeminiClient) Name() string {
	return config.ProviderGemini
}

// Complete sends prompt as a single user turn and returns the response text.
func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(g.temperature),
		MaxOutputTokens:  g.maxTokens,
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
