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

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared/constant"

	"github.com/tomtom215/internmatch/internal/config"
)

const openAISystemPrompt = "You are an internship matching assistant. Respond with a single JSON object and no other text."

// OpenAIClient calls the chat completions API.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float64
	maxTokens   int64
}

// NewOpenAIClient creates an OpenAI client. Retries are disabled so each
// recommendation makes at most one remote call.
func NewOpenAIClient(cfg *config.LLMConfig, apiKey string) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(opts...)

	return &OpenAIClient{
		client:      &client,
		model:       cfg.ResolvedModel(),
		temperature: cfg.Temperature,
		maxTokens:   int64(cfg.MaxOutputTokens),
	}
}

// Name returns the provider name.
func (o *OpenAIClient) Name() string {
	return config.ProviderOpenAI
}

// Complete sends prompt in JSON mode and returns the first choice.
func (o *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(openAISystemPrompt),
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(o.model),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: constant.JSONObject("json_object"),
			},
		},
		Temperature: openai.Float(o.temperature),
		MaxTokens:   openai.Int(o.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	content := completion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}
