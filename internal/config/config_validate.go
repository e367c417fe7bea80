// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateAPI,
		c.validateRecommend,
		c.validateLLM,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateAPI validates CORS, rate limiting and request deadlines
func (c *Config) validateAPI() error {
	if len(c.API.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	if c.API.RequestTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_REQUEST_TIMEOUT must be positive")
	}
	if c.API.RequestTimeout > c.Server.Timeout {
		return fmt.Errorf("RECOMMEND_REQUEST_TIMEOUT (%v) must not exceed SERVER_TIMEOUT (%v)", c.API.RequestTimeout, c.Server.Timeout)
	}
	return c.validateRateLimits()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.API.RateLimitDisabled {
		return nil
	}
	if c.API.RateLimitReqs < minRateLimitRequests || c.API.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.API.RateLimitWindow < minRateLimitWindow || c.API.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.API.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration has concerns
// that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.HasWildcardCORS() && c.Server.IsProduction()
}

// validateRecommend validates scoring configuration
func (c *Config) validateRecommend() error {
	r := &c.Recommend
	if r.TopN < 1 || r.TopN > 50 {
		return fmt.Errorf("RECOMMEND_TOP_N must be between 1 and 50")
	}
	if r.ScoreCap < 0 {
		return fmt.Errorf("RECOMMEND_SCORE_CAP must be non-negative (0 disables the cap)")
	}
	if r.RemoteTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_REMOTE_TIMEOUT must be positive")
	}
	if r.StatsInterval < 0 {
		return fmt.Errorf("RECOMMEND_STATS_INTERVAL must be non-negative (0 disables)")
	}

	weights := []struct {
		env   string
		value float64
	}{
		{"RECOMMEND_WEIGHT_EDUCATION", r.Weights.Education},
		{"RECOMMEND_WEIGHT_SKILLS", r.Weights.Skills},
		{"RECOMMEND_WEIGHT_INTEREST", r.Weights.Interest},
		{"RECOMMEND_WEIGHT_LOCATION", r.Weights.Location},
		{"RECOMMEND_WEIGHT_TYPE_BONUS", r.Weights.TypeBonus},
	}
	for _, w := range weights {
		if w.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %v", w.env, w.value)
		}
	}
	return nil
}

// validProviders defines the supported remote scorer providers
var validProviders = map[string]bool{
	ProviderGemini: true,
	ProviderOpenAI: true,
}

// validateLLM validates remote scorer configuration. Nothing is checked
// beyond the provider name when no credential is configured.
func (c *Config) validateLLM() error {
	l := &c.LLM

	provider := strings.ToLower(strings.TrimSpace(l.Provider))
	if provider != "" && !validProviders[provider] {
		return fmt.Errorf("LLM_PROVIDER must be one of: gemini, openai")
	}
	if !l.Enabled() {
		return nil
	}

	_, key := l.ResolvedProvider()
	if containsPlaceholder(key) {
		return fmt.Errorf("LLM API key appears to be a placeholder value")
	}

	if l.BaseURL != "" {
		if err := validateEndpointURL(l.BaseURL, "LLM_BASE_URL"); err != nil {
			return err
		}
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2")
	}
	if l.MaxOutputTokens < 1 || l.MaxOutputTokens > MaxOutputTokensLimit {
		return fmt.Errorf("LLM_MAX_OUTPUT_TOKENS must be between 1 and %d", MaxOutputTokensLimit)
	}
	if l.RequestsPerMinute < 0 {
		return fmt.Errorf("LLM_REQUESTS_PER_MINUTE must be non-negative (0 disables throttling)")
	}
	if l.RequestsPerMinute > 0 && l.RateLimitBurst < 1 {
		return fmt.Errorf("LLM_RATE_LIMIT_BURST must be positive when throttling is enabled")
	}
	return c.validateBreaker()
}

// validateBreaker validates circuit breaker settings (only if enabled)
func (c *Config) validateBreaker() error {
	b := &c.LLM.Breaker
	if !b.Enabled {
		return nil
	}
	if b.MaxRequests < 1 {
		return fmt.Errorf("LLM_BREAKER_MAX_REQUESTS must be positive")
	}
	if b.Interval < 0 {
		return fmt.Errorf("LLM_BREAKER_INTERVAL must be non-negative")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("LLM_BREAKER_TIMEOUT must be positive")
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("LLM_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns defines common placeholder patterns that indicate
// the user forgot to set a real value.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_API_KEY",
	"YOUR_KEY",
	"PLACEHOLDER",
	"TODO",
	"XXX",
}

// containsPlaceholder checks if a value contains common placeholder patterns.
func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upperValue, pattern) {
			return true
		}
	}
	return false
}
