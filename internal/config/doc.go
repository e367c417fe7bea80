// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package config provides centralized configuration management for Internmatch.

Configuration is layered with Koanf v2. Each layer overrides the previous one:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, ./config.yaml, ./config.yml or
    /etc/internmatch/config.yaml
 3. Optional .env file: ENV_FILE or ./.env, loaded with godotenv without
    overriding variables that are already set
 4. Environment variables mapped through envMappings

# Configuration Structure

  - ServerConfig: HTTP listener (host, port, timeouts, environment)
  - APIConfig: CORS origins, per-IP rate limits, request deadline
  - RecommendConfig: local scoring weights, result size, optional score cap
  - LLMConfig: remote scorer provider, credential, throttling and circuit breaker
  - CatalogConfig: optional posting file replacing the bundled fixture
  - LoggingConfig: zerolog level, format and caller info

# Remote Scorer Credentials

Remote scoring is enabled only when a credential resolves. LLM_API_KEY is
used for the selected provider (Gemini when LLM_PROVIDER is empty).
Otherwise GEMINI_API_KEY selects Gemini and OPENAI_API_KEY selects OpenAI:

	export GEMINI_API_KEY=AIza...
	export LLM_MODEL=gemini-2.0-flash

Without a credential every request is answered by the local scorer.

# Usage Example

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
	provider, _ := cfg.LLM.ResolvedProvider()

# Thread Safety

Config is immutable after LoadWithKoanf returns and safe for concurrent reads.
*/
package config
