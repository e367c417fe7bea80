// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package main is the entry point for the Internmatch server application.

Internmatch recommends internship postings to candidates. A deterministic
local scorer ranks the catalog against the candidate profile; when a language
model API key is configured, a single remote scoring attempt may replace that
ranking. Every remote failure falls back to the local result.

# Application Architecture

The server runs under Suture v4 process supervision:

	RootSupervisor ("internmatch")
	├── EngineSupervisor ("engine-layer")
	│   └── Recommendation stats reporter (RECOMMEND_STATS_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: bundled postings or CATALOG_PATH
 4. Remote scorer: Gemini or OpenAI, behind a rate limiter and circuit breaker
 5. Recommendation engine with Prometheus observer
 6. Supervisor tree and HTTP server

# Configuration

Common environment variables:

	HTTP_PORT=8080
	LLM_API_KEY=...            # enables remote scoring (Gemini by default)
	LLM_PROVIDER=openai        # or gemini
	CATALOG_PATH=catalog.yaml  # optional posting catalog
	LOG_LEVEL=debug
	LOG_FORMAT=console

Without any API key the server runs in local-only mode.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests for up to SHUTDOWN_TIMEOUT before the process exits.
*/
package main
