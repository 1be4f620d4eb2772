// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package config loads and validates MovieMatch configuration.
//
// Configuration is layered with Koanf v2:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, or config.yaml in the working directory)
//  3. Environment variables (highest priority)
//
// Only environment variables listed in envTransformFunc are honoured, so
// unrelated variables in the process environment never leak into the config.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Cluster  ClusterConfig  `koanf:"cluster"`
	Search   SearchConfig   `koanf:"search"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// CatalogConfig selects where the movie catalog is read from.
type CatalogConfig struct {
	// Source is the loader implementation: csv or duckdb.
	Source string `koanf:"source"`

	// Path is the CSV file (source=csv), or the DuckDB database file
	// (source=duckdb). With source=duckdb and an empty Table, Path may
	// point at a CSV file that DuckDB reads with read_csv_auto.
	Path string `koanf:"path"`

	// Table is the DuckDB table holding the catalog (source=duckdb only).
	Table string `koanf:"table"`
}

// ClusterConfig holds k-means parameters. The seed must stay fixed between
// restarts for cluster labels to be reproducible.
type ClusterConfig struct {
	K             int     `koanf:"k"`
	Seed          int64   `koanf:"seed"`
	MaxIterations int     `koanf:"max_iterations"`
	Tolerance     float64 `koanf:"tolerance"`
	Restarts      int     `koanf:"restarts"`
}

// SearchConfig holds query policy settings.
type SearchConfig struct {
	// Threshold is the minimum imdb_score for a movie to be listed as similar.
	Threshold float64 `koanf:"threshold"`

	// TopN is the size of the top list.
	TopN int `koanf:"top_n"`

	// SuggestLimit is the default number of autocomplete suggestions.
	SuggestLimit int `koanf:"suggest_limit"`

	// MaxQueryLength bounds the movie, genre and q query parameters.
	MaxQueryLength int `koanf:"max_query_length"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and the
// environment, then validates it. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}
