// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package main is the entry point for the MovieMatch server.

MovieMatch loads a movie catalog once at startup, groups the movies into
clusters of similar numeric profile with k-means, and serves read-only
queries over the frozen result: find movies similar to a title, and list
the best rated or most recent movies of a genre.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("moviematch")
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog, JSON or console output
 3. Catalog: load (CSV or DuckDB), normalize, cluster, index
 4. HTTP router: Chi with CORS, rate limiting and Prometheus metrics
 5. Supervisor tree: serves until SIGINT or SIGTERM

Any failure before step 5 terminates the process. The catalog is never
reloaded while serving.

# Configuration

Common environment variables:

	HTTP_PORT              listen port (default 5000)
	CATALOG_SOURCE         csv or duckdb (default csv)
	CATALOG_PATH           catalog file (default movie_metadata.csv)
	CATALOG_TABLE          DuckDB table; empty reads CATALOG_PATH as CSV
	CLUSTER_K              number of clusters (default 10)
	CLUSTER_SEED           k-means seed (default 42)
	SIMILARITY_THRESHOLD   minimum imdb_score of similar movies (default 7.5)
	TOP_N                  size of the top list (default 100)
	LOG_LEVEL, LOG_FORMAT  logging

# Example Usage

	export CATALOG_PATH=/data/movie_metadata.csv
	./moviematch

	curl 'http://localhost:5000/api/search?movie=avatar&order=year'
	curl 'http://localhost:5000/api/top100?genre=sci-fi&order=score'

# Signal Handling

On SIGINT or SIGTERM the supervisor stops every service. The HTTP server
stops accepting connections and drains in-flight requests for at most
SHUTDOWN_TIMEOUT.
*/
package main
