// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

// Package logging provides the process-wide zerolog logger for Internmatch.
//
// The global logger works before Init is called (JSON at info level on
// stderr) so package init code and tests can log safely. main calls Init
// once with the values from config.LoggingConfig.
//
//	logging.Init(logging.Config{Level: "debug", Format: "console"})
//	logging.Info().Int("postings", n).Msg("Catalog loaded")
//
// Request-scoped logging goes through Ctx, which adds the request ID stored
// by the request ID middleware:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Remote scorer failed")
//
// NewSlogLogger bridges zerolog to log/slog for libraries such as
// sutureslog that only accept an *slog.Logger.
package logging
