// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/internmatch/internal/logging"
)

// AccessLog writes one log line per request. 5xx responses log at error
// level, 4xx at warn, everything else at debug so health probes stay quiet.
func AccessLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next(rec, r)

		logger := logging.Ctx(r.Context())
		event := logger.Debug()
		switch {
		case rec.statusCode >= http.StatusInternalServerError:
			event = logger.Error()
		case rec.statusCode >= http.StatusBadRequest:
			event = logger.Warn()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.statusCode).
			Int("bytes", rec.bytes).
			Dur("duration", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP request")
	}
}
