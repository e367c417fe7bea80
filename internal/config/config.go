// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package config

import (
	"strings"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional config file, .env files and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. .env File: Loaded into the process environment without overriding it
//  4. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Serving:
//     - Server: HTTP listener (port, host, timeouts)
//     - API: CORS, per-IP rate limiting, request deadlines
//
//  2. Matching:
//     - Recommend: Scoring weights, result size, optional score cap
//     - LLM: Optional remote scorer (provider, credentials, resilience)
//     - Catalog: Optional posting file replacing the bundled fixture
//
//  3. Observability:
//     - Logging: Log levels and output formats
//
// Thread Safety:
// Config is immutable after LoadWithKoanf() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Recommend RecommendConfig `koanf:"recommend"`
	LLM       LLMConfig       `koanf:"llm"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_PORT: Listen port (default: 8080)
//   - SERVER_TIMEOUT: Read/write timeout (default: 45s)
//   - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
//   - ENVIRONMENT: development, staging or production (default: development)
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// IsProduction reports whether the server runs in production mode.
func (s *ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

// APIConfig holds HTTP API behaviour.
//
// Environment Variables:
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 60)
//   - RATE_LIMIT_WINDOW: Window length (default: 1m)
//   - DISABLE_RATE_LIMIT: Turn off per-IP limiting (default: false)
//   - RECOMMEND_REQUEST_TIMEOUT: Deadline for a recommendation request (default: 40s)
type APIConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	RequestTimeout    time.Duration `koanf:"request_timeout"`
}

// RecommendConfig holds recommendation engine settings.
//
// Environment Variables:
//   - RECOMMEND_TOP_N: Local results returned (default: 5)
//   - RECOMMEND_SCORE_CAP: Clamp local scores when > 0 (default: 0, uncapped)
//   - RECOMMEND_INCLUDE_BREAKDOWN: Attach score breakdowns (default: false)
//   - RECOMMEND_REMOTE_TIMEOUT: Bound on the remote attempt (default: 30s)
//   - RECOMMEND_STATS_INTERVAL: Period of the engine statistics log, 0 disables (default: 5m)
//   - RECOMMEND_WEIGHT_EDUCATION, _SKILLS, _INTEREST, _LOCATION, _TYPE_BONUS
type RecommendConfig struct {
	TopN             int           `koanf:"top_n"`
	ScoreCap         int           `koanf:"score_cap"`
	IncludeBreakdown bool          `koanf:"include_breakdown"`
	RemoteTimeout    time.Duration `koanf:"remote_timeout"`
	StatsInterval    time.Duration `koanf:"stats_interval"`
	Weights          WeightsConfig `koanf:"weights"`
}

// WeightsConfig holds the points awarded per matching dimension.
type WeightsConfig struct {
	Education float64 `koanf:"education"`
	Skills    float64 `koanf:"skills"`
	Interest  float64 `koanf:"interest"`
	Location  float64 `koanf:"location"`
	TypeBonus float64 `koanf:"type_bonus"`
}

// Supported remote scorer providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// LLMConfig holds remote scorer settings. The remote scorer is disabled
// when no API key resolves.
//
// Environment Variables:
//   - LLM_PROVIDER: gemini or openai (default: inferred from the key present)
//   - LLM_API_KEY: Credential for the selected provider
//   - GEMINI_API_KEY: Gemini credential, used when LLM_API_KEY is empty
//   - OPENAI_API_KEY: OpenAI credential, used when LLM_API_KEY is empty
//   - LLM_MODEL: Model name (default: provider specific)
//   - LLM_BASE_URL: Override the provider endpoint (OpenAI-compatible gateways, tests)
//   - LLM_TIMEOUT: Per-call HTTP timeout (default: 30s)
//   - LLM_TEMPERATURE, LLM_MAX_OUTPUT_TOKENS: Generation settings
//   - LLM_REQUESTS_PER_MINUTE: Outbound throttle, 0 disables (default: 60)
//   - LLM_BREAKER_ENABLED: Wrap the provider in a circuit breaker (default: true)
type LLMConfig struct {
	Provider          string        `koanf:"provider"`
	APIKey            string        `koanf:"api_key"`
	GeminiAPIKey      string        `koanf:"gemini_api_key"`
	OpenAIAPIKey      string        `koanf:"openai_api_key"`
	Model             string        `koanf:"model"`
	BaseURL           string        `koanf:"base_url"`
	Timeout           time.Duration `koanf:"timeout"`
	Temperature       float64       `koanf:"temperature"`
	MaxOutputTokens   int           `koanf:"max_output_tokens"`
	RequestsPerMinute int           `koanf:"requests_per_minute"`
	RateLimitBurst    int           `koanf:"rate_limit_burst"`
	Breaker           BreakerConfig `koanf:"breaker"`
}

// BreakerConfig holds circuit breaker settings for the remote scorer.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`  // concurrent probes in half-open state
	Interval     time.Duration `koanf:"interval"`      // closed-state counting window
	Timeout      time.Duration `koanf:"timeout"`       // open-state wait before probing
	MinRequests  uint32        `koanf:"min_requests"`  // requests required before tripping
	FailureRatio float64       `koanf:"failure_ratio"` // trip threshold
}

// ResolvedProvider returns the provider to use and its credential.
// An empty provider means remote scoring is disabled.
func (l *LLMConfig) ResolvedProvider() (provider, apiKey string) {
	provider = strings.ToLower(strings.TrimSpace(l.Provider))

	switch provider {
	case ProviderGemini:
		return provider, firstNonEmpty(l.APIKey, l.GeminiAPIKey)
	case ProviderOpenAI:
		return provider, firstNonEmpty(l.APIKey, l.OpenAIAPIKey)
	case "":
		switch {
		case l.APIKey != "":
			return ProviderGemini, l.APIKey
		case l.GeminiAPIKey != "":
			return ProviderGemini, l.GeminiAPIKey
		case l.OpenAIAPIKey != "":
			return ProviderOpenAI, l.OpenAIAPIKey
		}
		return "", ""
	default:
		return provider, l.APIKey
	}
}

// Enabled reports whether a credential is configured.
func (l *LLMConfig) Enabled() bool {
	_, key := l.ResolvedProvider()
	return key != ""
}

// ResolvedModel returns the configured model or the provider default.
func (l *LLMConfig) ResolvedModel() string {
	if l.Model != "" {
		return l.Model
	}
	provider, _ := l.ResolvedProvider()
	if provider == ProviderOpenAI {
		return DefaultOpenAIModel
	}
	return DefaultGeminiModel
}

// MaxOutputTokensLimit is the largest accepted LLM_MAX_OUTPUT_TOKENS value.
const MaxOutputTokensLimit = 65536

// Default model names per provider.
const (
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// CatalogConfig holds the posting source.
//
// Environment Variables:
//   - CATALOG_PATH: YAML or JSON file with postings (default: bundled fixture)
type CatalogConfig struct {
	Path string `koanf:"path"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: Include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Adds slight performance overhead.
	// Default: false
	Caller bool `koanf:"caller"`
}
