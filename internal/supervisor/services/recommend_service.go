// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/internmatch/internal/recommend"
)

// EngineStats is the part of the recommendation engine the stats service reads.
type EngineStats interface {
	GetMetrics() recommend.Metrics
}

// BreakerState reports the remote scorer circuit breaker state.
type BreakerState interface {
	BreakerState() string
}

// RecommendStatsService periodically logs a summary of engine activity.
// Intervals without new requests are skipped so idle instances stay quiet.
type RecommendStatsService struct {
	engine   EngineStats
	breaker  BreakerState
	interval time.Duration
	logger   zerolog.Logger
	name     string

	lastRequests int64
}

// NewRecommendStatsService creates a stats reporter. breaker may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRecommendStatsService(engine EngineStats, breaker BreakerState, interval time.Duration, logger zerolog.Logger) *RecommendStatsService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &RecommendStatsService{
		engine:   engine,
		breaker:  breaker,
		interval: interval,
		logger:   logger.With().Str("service", "recommend-stats").Logger(),
		name:     "recommend-stats",
	}
}

// Serve implements the suture.Service interface.
func (s *RecommendStatsService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("recommendation stats reporter starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.report()
			return ctx.Err()

		case <-ticker.C:
			s.report()
		}
	}
}

// report logs the current snapshot. It returns false when nothing changed.
func (s *RecommendStatsService) report() bool {
	m := s.engine.GetMetrics()
	if m.RequestCount == s.lastRequests {
		return false
	}
	delta := m.RequestCount - s.lastRequests
	s.lastRequests = m.RequestCount

	event := s.logger.Info().
		Int64("requests", m.RequestCount).
		Int64("requests_since_last", delta).
		Int64("remote_attempts", m.RemoteAttempts).
		Int64("remote_successes", m.RemoteSuccesses).
		Int64("transport_fallbacks", m.TransportFallbacks).
		Int64("parse_fallbacks", m.ParseFallbacks).
		Int64("empty_fallbacks", m.EmptyFallbacks).
		Float64("avg_latency_ms", m.AverageLatencyMS)
	if s.breaker != nil {
		event = event.Str("breaker_state", s.breaker.BreakerState())
	}
	event.Msg("recommendation stats")
	return true
}

// String returns the service name for logging.
func (s *RecommendStatsService) String() string {
	return s.name
}
