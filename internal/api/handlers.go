// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"time"

	"github.com/tomtom215/moviematch/internal/catalog"
	"github.com/tomtom215/moviematch/internal/config"
	"github.com/tomtom215/moviematch/internal/ranking"
	"github.com/tomtom215/moviematch/internal/resolve"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_search.go: search and top100
//   - handlers_catalog.go: suggest, movie detail and cluster summaries
//   - handlers_health.go: liveness and readiness checks
type Handler struct {
	store     *catalog.Store
	resolver  *resolve.Resolver
	engine    *ranking.Engine
	config    config.SearchConfig
	startTime time.Time
}

// NewHandler creates a Handler over a fully built catalog. Every dependency
// is read-only after startup, so a Handler serves requests concurrently.
func NewHandler(store *catalog.Store, resolver *resolve.Resolver, engine *ranking.Engine, cfg config.SearchConfig) *Handler {
	return &Handler{
		store:     store,
		resolver:  resolver,
		engine:    engine,
		config:    cfg,
		startTime: time.Now(),
	}
}
