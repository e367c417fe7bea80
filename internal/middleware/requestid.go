// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package middleware

import (
	"net/http"

	"github.com/tomtom215/internmatch/internal/logging"
)

// RequestIDHeader is the header used to propagate request IDs.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds accepted upstream IDs.
const maxRequestIDLength = 128

// RequestID assigns every request an ID. An upstream ID is reused only when
// it is short and made of safe characters, so it cannot inject into logs.
// The context also carries a logger tagged with the ID; logging.Ctx returns it.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		logger := logging.LoggerFromContext(ctx).With().Str("request_id", requestID).Logger()
		ctx = logging.ContextWithLogger(ctx, logger)

		next(w, r.WithContext(ctx))
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
