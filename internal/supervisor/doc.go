// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package supervisor provides process supervision for MovieMatch using suture v4.

The catalog is loaded and clustered before the tree starts, so the only
long-running service is the HTTP server:

	RootSupervisor ("moviematch")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, bridged to zerolog by logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, addr, 10*time.Second))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}
*/
package supervisor
