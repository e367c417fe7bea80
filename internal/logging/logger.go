// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error.
	Level string

	// Format is json or console.
	Format string

	// Caller adds file:line to every entry.
	Caller bool

	// Service, when set, is attached to every entry as "service".
	Service string

	// Output defaults to os.Stderr.
	Output io.Writer
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

//nolint:gochecknoinits // logging must work before Init is called
func init() {
	log = build(Config{})
}

// Init replaces the global logger. Safe to call more than once.
func Init(cfg Config) {
	l := build(cfg)
	mu.Lock()
	log = l
	mu.Unlock()
}

func build(cfg Config) zerolog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	out := cfg.Output
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	lctx := zerolog.New(out).With().Timestamp()
	if cfg.Service != "" {
		lctx = lctx.Str("service", cfg.Service)
	}
	if cfg.Caller {
		lctx = lctx.Caller()
	}
	return lctx.Logger()
}

// parseLevel maps a level name to zerolog. Unknown names mean info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger replaces the global logger, typically with NewTestLogger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	log = l
	mu.Unlock()
}

// With starts a child logger context.
func With() zerolog.Context {
	l := Logger()
	return l.With()
}

// Trace starts a trace level message.
func Trace() *zerolog.Event {
	l := Logger()
	return l.Trace()
}

// Debug starts a debug level message.
func Debug() *zerolog.Event {
	l := Logger()
	return l.Debug()
}

// Info starts an info level message.
func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

// Warn starts a warn level message.
func Warn() *zerolog.Event {
	l := Logger()
	return l.Warn()
}

// Error starts an error level message.
func Error() *zerolog.Event {
	l := Logger()
	return l.Error()
}

// Fatal starts a fatal message; the process exits after Msg.
func Fatal() *zerolog.Event {
	l := Logger()
	return l.Fatal()
}

// Err starts an error level message carrying err.
func Err(err error) *zerolog.Event {
	l := Logger()
	return l.Err(err)
}

// NewTestLogger returns a JSON logger writing to w at debug level.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
