// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

/*
Package services provides suture.Service wrappers for Internmatch components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer so suture can name it in log events.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe pattern to Serve
  - Configurable shutdown timeout for draining connections

Recommendation Stats (RecommendStatsService):
  - Logs a periodic summary of engine counters and breaker state
  - Skips intervals without new requests

# Error Handling

Serve returns ctx.Err() after a requested shutdown. Any other error tells
the supervisor the service failed and should be restarted with backoff.
*/
package services
