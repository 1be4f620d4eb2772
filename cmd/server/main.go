// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/moviematch/internal/api"
	"github.com/tomtom215/moviematch/internal/bootstrap"
	"github.com/tomtom215/moviematch/internal/config"
	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/supervisor"
	"github.com/tomtom215/moviematch/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)

	logging.Info().
		Str("catalog_source", cfg.Catalog.Source).
		Str("catalog_path", cfg.Catalog.Path).
		Int("k", cfg.Cluster.K).
		Int64("seed", cfg.Cluster.Seed).
		Msg("Starting MovieMatch")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Startup pipeline: load, normalize, cluster, index
	cat, err := bootstrap.Run(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build catalog")
	}

	handler := api.NewHandler(cat.Store, cat.Resolver, cat.Engine, cfg.Search)
	chiMiddleware := api.NewChiMiddlewareFromConfig(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, chiMiddleware)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), treeConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Addr(), cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", cfg.Addr()).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	// The channel receives exactly one value when the root supervisor returns.
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("MovieMatch stopped")
}
