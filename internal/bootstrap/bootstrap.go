// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package bootstrap runs the one-time startup pipeline: load the catalog,
// fit the normalizer, cluster the feature vectors and freeze the labelled
// store together with the query components built on it.
//
// Every step runs once, sequentially, before the HTTP server exists. Any
// error is fatal to startup.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/tomtom215/moviematch/internal/catalog"
	"github.com/tomtom215/moviematch/internal/cluster"
	"github.com/tomtom215/moviematch/internal/config"
	"github.com/tomtom215/moviematch/internal/features"
	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/metrics"
	"github.com/tomtom215/moviematch/internal/ranking"
	"github.com/tomtom215/moviematch/internal/resolve"
)

// Startup phases, as reported in logs and metrics.
const (
	PhaseLoad      = "load"
	PhaseNormalize = "normalize"
	PhaseCluster   = "cluster"
	PhaseIndex     = "index"
)

// ErrUnknownSource is returned for a catalog source other than csv or duckdb.
var ErrUnknownSource = errors.New("unknown catalog source")

// Catalog is the frozen result of startup. Every field is read-only.
type Catalog struct {
	Store    *catalog.Store
	Model    *features.Model
	Clusters *cluster.Result
	Resolver *resolve.Resolver
	Engine   *ranking.Engine
}

// NewSource returns the loader selected by cfg.Source.
func NewSource(cfg config.CatalogConfig) (catalog.Source, error) {
	switch cfg.Source {
	case "", "csv":
		return catalog.NewCSVSource(cfg.Path), nil
	case "duckdb":
		return catalog.NewDuckDBSource(cfg.Path, cfg.Table), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

// ClusterConfig converts the cluster section of the application config.
func ClusterConfig(cfg config.ClusterConfig) cluster.Config {
	return cluster.Config{
		K:             cfg.K,
		Seed:          cfg.Seed,
		MaxIterations: cfg.MaxIterations,
		Tolerance:     cfg.Tolerance,
		Restarts:      cfg.Restarts,
	}
}

// RankingConfig converts the search section of the application config.
func RankingConfig(cfg config.SearchConfig) ranking.Config {
	rc := ranking.DefaultConfig()
	rc.Threshold = cfg.Threshold
	rc.TopN = cfg.TopN
	return rc
}

// Run builds the catalog described by cfg.
func Run(ctx context.Context, cfg *config.Config) (*Catalog, error) {
	src, err := NewSource(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	return Build(ctx, src, ClusterConfig(cfg.Cluster), RankingConfig(cfg.Search))
}

// Build loads src and runs the pipeline with explicit parameters.
func Build(ctx context.Context, src catalog.Source, clusterCfg cluster.Config, rankCfg ranking.Config) (*Catalog, error) {
	log := logging.WithComponent("bootstrap")

	// Parameter errors are reported before the catalog is read.
	if err := clusterCfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	movies, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", src, err)
	}
	finishPhase(log.Info(), PhaseLoad, start).
		Str("source", src.String()).
		Int("records", len(movies)).
		Msg("Catalog loaded")

	start = time.Now()
	model, err := features.Fit(movies)
	if err != nil {
		return nil, fmt.Errorf("fit normalizer: %w", err)
	}
	normalized := model.TransformAll(movies)
	vectors := make([][]float64, len(normalized))
	for i, v := range normalized {
		vectors[i] = v
	}
	missing := make(map[string]int, catalog.NumFeatures)
	for _, f := range catalog.Features {
		missing[f.String()] = model.Missing[f]
	}
	metrics.RecordCatalogLoad(len(movies), missing)
	finishPhase(log.Info(), PhaseNormalize, start).
		Interface("missing", missing).
		Msg("Features normalized")

	start = time.Now()
	result, err := cluster.Assign(ctx, vectors, clusterCfg)
	if err != nil {
		return nil, fmt.Errorf("cluster catalog: %w", err)
	}
	sizes := result.Sizes()
	metrics.RecordClustering(result.Iterations, result.Inertia, sizes)
	finishPhase(log.Info(), PhaseCluster, start).
		Int("k", clusterCfg.K).
		Int("iterations", result.Iterations).
		Bool("converged", result.Converged).
		Float64("inertia", result.Inertia).
		Ints("sizes", sizes).
		Msg("Catalog clustered")
	if !result.Converged {
		log.Warn().Int("max_iterations", clusterCfg.MaxIterations).Msg("K-means stopped before converging")
	}

	start = time.Now()
	store, err := catalog.NewStore(movies, result.Labels, clusterCfg.K)
	if err != nil {
		return nil, fmt.Errorf("freeze catalog: %w", err)
	}
	resolver := resolve.New(store)
	engine := ranking.NewEngine(store, rankCfg)
	finishPhase(log.Info(), PhaseIndex, start).Msg("Catalog indexed")

	return &Catalog{
		Store:    store,
		Model:    model,
		Clusters: result,
		Resolver: resolver,
		Engine:   engine,
	}, nil
}

// finishPhase records the phase duration and adds it to event.
func finishPhase(event *zerolog.Event, phase string, start time.Time) *zerolog.Event {
	elapsed := time.Since(start)
	metrics.RecordStartupPhase(phase, elapsed)
	return event.Str("phase", phase).Dur("duration", elapsed)
}
