// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package cluster

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig matches every *ConfigurationError.
	ErrInvalidConfig = errors.New("invalid clustering configuration")

	// ErrInvalidK matches configuration errors about the number of clusters:
	// k <= 0, or k larger than the number of distinct input vectors.
	ErrInvalidK = errors.New("invalid number of clusters")

	// ErrNoVectors is returned when Assign is called with no input.
	ErrNoVectors = errors.New("no feature vectors to cluster")
)

// ConfigurationError reports a clustering parameter that cannot be used.
// It is fatal at startup.
type ConfigurationError struct {
	Param  string
	Value  any
	Reason string

	kind error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cluster: invalid %s=%v: %s", e.Param, e.Value, e.Reason)
}

// Unwrap lets errors.Is match both ErrInvalidConfig and, for k errors, ErrInvalidK.
func (e *ConfigurationError) Unwrap() []error {
	if e.kind == nil {
		return []error{ErrInvalidConfig}
	}
	return []error{ErrInvalidConfig, e.kind}
}

// Config holds k-means parameters.
type Config struct {
	// K is the number of clusters.
	K int `json:"k"`

	// Seed drives centroid initialization. A fixed seed gives identical
	// labels for identical input.
	Seed int64 `json:"seed"`

	// MaxIterations caps Lloyd iterations per restart.
	MaxIterations int `json:"max_iterations"`

	// Tolerance stops a run once the summed squared centroid shift falls to
	// Tolerance times the mean per-dimension variance of the input.
	Tolerance float64 `json:"tolerance"`

	// Restarts is the number of independent seedings; the lowest-inertia
	// run wins.
	Restarts int `json:"restarts"`
}

// DefaultConfig returns the clustering defaults: ten clusters, seed 42.
func DefaultConfig() Config {
	return Config{
		K:             10,
		Seed:          42,
		MaxIterations: 300,
		Tolerance:     1e-4,
		Restarts:      10,
	}
}

// Validate checks the parameters that do not depend on the input.
func (c Config) Validate() error {
	if c.K <= 0 {
		return &ConfigurationError{Param: "k", Value: c.K, Reason: "must be at least 1", kind: ErrInvalidK}
	}
	if c.MaxIterations <= 0 {
		return &ConfigurationError{Param: "max_iterations", Value: c.MaxIterations, Reason: "must be at least 1"}
	}
	if c.Tolerance < 0 {
		return &ConfigurationError{Param: "tolerance", Value: c.Tolerance, Reason: "must not be negative"}
	}
	if c.Restarts <= 0 {
		return &ConfigurationError{Param: "restarts", Value: c.Restarts, Reason: "must be at least 1"}
	}
	return nil
}
