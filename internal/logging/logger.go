// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package logging provides the zerolog-based logger shared by every MovieMatch component.
//
// The package keeps one global logger that is safe to reconfigure at startup
// and cheap to read afterwards:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("records", n).Msg("Catalog loaded")
//
// Components take a child logger tagged with their name:
//
//	log := logging.WithComponent("cluster")
//	log.Debug().Int("iteration", i).Msg("Centroids moved")
//
// Request handlers log through Ctx so the request id travels with every line:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Search failed")
//
// Always terminate event chains with .Msg() or .Send(), otherwise nothing is written.
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
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string

	// Format is the output format: json or console.
	// Default: json
	Format string

	// Caller includes caller file and line number in logs.
	Caller bool

	// Timestamp enables timestamps in log output.
	// Default: true
	Timestamp bool

	// Output is the writer for log output.
	// Default: os.Stderr
	Output io.Writer
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Caller:    false,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

var (
	mu     sync.RWMutex
	global zerolog.Logger
)

//nolint:gochecknoinits // logging must work before main calls Init
func init() {
	global = build(DefaultConfig())
}

// Init replaces the global logger. Zero fields fall back to DefaultConfig,
// except Caller and Timestamp which are taken as given.
func Init(cfg Config) {
	l := build(cfg)

	mu.Lock()
	global = l
	mu.Unlock()
}

func build(cfg Config) zerolog.Logger {
	defaults := DefaultConfig()
	if cfg.Level == "" {
		cfg.Level = defaults.Level
	}
	if cfg.Output == nil {
		cfg.Output = defaults.Output
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = cfg.Output
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// parseLevel maps a level name to zerolog. Unknown names mean info.
func parseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || l == zerolog.NoLevel {
		if strings.EqualFold(level, "warning") {
			return zerolog.WarnLevel
		}
		return zerolog.InfoLevel
	}
	return l
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Info starts an info event on the global logger.
func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

// Warn starts a warning event on the global logger.
func Warn() *zerolog.Event {
	l := Logger()
	return l.Warn()
}

// Error starts an error event on the global logger.
func Error() *zerolog.Event {
	l := Logger()
	return l.Error()
}

// Fatal starts a fatal event. The process exits after the event is written.
//
//	logging.Fatal().Err(err).Msg("Failed to build catalog")
func Fatal() *zerolog.Event {
	l := Logger()
	return l.Fatal()
}

// WithComponent returns a child of the global logger tagged with component.
func WithComponent(component string) zerolog.Logger {
	return Logger().With().Str("component", component).Logger()
}

// NewTestLogger returns a logger writing timestamped JSON lines to w.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
