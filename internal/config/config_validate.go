// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package config

import (
	"fmt"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateCluster(); err != nil {
		return err
	}

	if err := c.validateSearch(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

var validCatalogSources = map[string]bool{
	"csv":    true,
	"duckdb": true,
}

// validateCatalog validates the catalog source selection
func (c *Config) validateCatalog() error {
	if !validCatalogSources[c.Catalog.Source] {
		return fmt.Errorf("CATALOG_SOURCE must be one of: csv, duckdb")
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	if c.Catalog.Source == "csv" && c.Catalog.Table != "" {
		return fmt.Errorf("CATALOG_TABLE is only valid with CATALOG_SOURCE=duckdb")
	}
	return nil
}

// validateCluster validates the parameters that can be checked without the
// catalog. The upper bound on k depends on the number of distinct records
// and is enforced by the cluster package at startup.
func (c *Config) validateCluster() error {
	if c.Cluster.K < 1 {
		return fmt.Errorf("CLUSTER_K must be at least 1")
	}
	if c.Cluster.MaxIterations < 1 {
		return fmt.Errorf("CLUSTER_MAX_ITERATIONS must be at least 1")
	}
	if c.Cluster.Tolerance < 0 {
		return fmt.Errorf("CLUSTER_TOLERANCE must not be negative")
	}
	if c.Cluster.Restarts < 1 {
		return fmt.Errorf("CLUSTER_RESTARTS must be at least 1")
	}
	return nil
}

// validateSearch validates query policy settings
func (c *Config) validateSearch() error {
	if c.Search.Threshold < 0 || c.Search.Threshold > 10 {
		return fmt.Errorf("SIMILARITY_THRESHOLD must be between 0 and 10")
	}
	if c.Search.TopN < 1 {
		return fmt.Errorf("TOP_N must be at least 1")
	}
	if c.Search.SuggestLimit < 1 || c.Search.SuggestLimit > maxSuggestLimit {
		return fmt.Errorf("SUGGEST_LIMIT must be between 1 and %d", maxSuggestLimit)
	}
	if c.Search.MaxQueryLength < 1 {
		return fmt.Errorf("MAX_QUERY_LENGTH must be at least 1")
	}
	return nil
}

const maxSuggestLimit = 50

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
