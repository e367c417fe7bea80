// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/internmatch/config.yaml",
	"/etc/internmatch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPathEnvVar is the environment variable that can override the .env file path.
const DotEnvPathEnvVar = "ENV_FILE"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         45 * time.Second, // must exceed the remote scorer budget
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		API: APIConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     60,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			RequestTimeout:    40 * time.Second,
		},
		Recommend: RecommendConfig{
			TopN:             5,
			ScoreCap:         0, // uncapped: a full match scores 105
			IncludeBreakdown: false,
			RemoteTimeout:    30 * time.Second,
			StatsInterval:    5 * time.Minute,
			Weights: WeightsConfig{
				Education: 30,
				Skills:    40,
				Interest:  20,
				Location:  10,
				TypeBonus: 5,
			},
		},
		LLM: LLMConfig{
			Provider:          "", // inferred from whichever key is set
			Timeout:           30 * time.Second,
			Temperature:       0.2,
			MaxOutputTokens:   2048,
			RequestsPerMinute: 60,
			RateLimitBurst:    5,
			Breaker: BreakerConfig{
				Enabled:      true,
				MaxRequests:  3,               // Allow 3 concurrent requests in half-open state
				Interval:     time.Minute,     // Reset counts after 1 minute in closed state
				Timeout:      2 * time.Minute, // Wait 2 minutes before transitioning from open to half-open
				MinRequests:  10,
				FailureRatio: 0.6,
			},
		},
		Catalog: CatalogConfig{
			Path: "", // bundled fixture
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. .env File: Optional, never overrides variables already set
//  4. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Populate the environment from a .env file (optional)
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	// Layer 4: Load environment variables (highest priority)
	// Transform environment variable names to koanf paths:
	// HTTP_PORT -> server.port
	// GEMINI_API_KEY -> llm.gemini_api_key
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads ENV_FILE (or ./.env) into the process environment.
// A missing default file is not an error; a missing explicit file is.
func loadDotEnv() error {
	path := os.Getenv(DotEnvPathEnvVar)
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	// Search default paths
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"api.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// If it's already a slice (from YAML file), skip
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// API
	"cors_origins":              "api.cors_origins",
	"rate_limit_requests":       "api.rate_limit_reqs",
	"rate_limit_window":         "api.rate_limit_window",
	"disable_rate_limit":        "api.rate_limit_disabled",
	"recommend_request_timeout": "api.request_timeout",

	// Recommendation engine
	"recommend_top_n":             "recommend.top_n",
	"recommend_score_cap":         "recommend.score_cap",
	"recommend_include_breakdown": "recommend.include_breakdown",
	"recommend_remote_timeout":    "recommend.remote_timeout",
	"recommend_stats_interval":    "recommend.stats_interval",
	"recommend_weight_education":  "recommend.weights.education",
	"recommend_weight_skills":     "recommend.weights.skills",
	"recommend_weight_interest":   "recommend.weights.interest",
	"recommend_weight_location":   "recommend.weights.location",
	"recommend_weight_type_bonus": "recommend.weights.type_bonus",

	// Remote scorer
	"llm_provider":              "llm.provider",
	"llm_api_key":               "llm.api_key",
	"gemini_api_key":            "llm.gemini_api_key",
	"openai_api_key":            "llm.openai_api_key",
	"llm_model":                 "llm.model",
	"llm_base_url":              "llm.base_url",
	"llm_timeout":               "llm.timeout",
	"llm_temperature":           "llm.temperature",
	"llm_max_output_tokens":     "llm.max_output_tokens",
	"llm_requests_per_minute":   "llm.requests_per_minute",
	"llm_rate_limit_burst":      "llm.rate_limit_burst",
	"llm_breaker_enabled":       "llm.breaker.enabled",
	"llm_breaker_max_requests":  "llm.breaker.max_requests",
	"llm_breaker_interval":      "llm.breaker.interval",
	"llm_breaker_timeout":       "llm.breaker.timeout",
	"llm_breaker_min_requests":  "llm.breaker.min_requests",
	"llm_breaker_failure_ratio": "llm.breaker.failure_ratio",

	// Catalog
	"catalog_path": "catalog.path",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - GEMINI_API_KEY -> llm.gemini_api_key
//   - RECOMMEND_WEIGHT_SKILLS -> recommend.weights.skills
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}
