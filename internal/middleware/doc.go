// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package middleware provides HTTP middleware components for the application.

Key Components:

  - Request ID: UUID-based request tracking, propagated to the logging context
  - Prometheus Metrics: request count, latency and in-flight instrumentation
  - Compression: gzip for responses of 1KB or more

All three use the plain func(http.HandlerFunc) http.HandlerFunc shape; the
api package adapts them to chi's r.Use.

Usage Example:

	handler := middleware.RequestID(
	    middleware.PrometheusMetrics(
	        middleware.Compression(apiHandler),
	    ),
	)

Thread Safety:

All middleware is stateless apart from a sync.Pool of gzip writers and is
safe for concurrent use.
*/
package middleware
