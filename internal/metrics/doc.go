// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
exposed by the HTTP API at /metrics.

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Startup Metrics:
  - catalog_records: Records in the loaded catalog (gauge)
  - catalog_missing_values: Records missing each numeric feature (gauge)
    Labels: feature
  - startup_phase_duration_seconds: Duration of each bootstrap phase (gauge)
    Labels: phase (load, normalize, cluster, index)
  - clustering_iterations: Lloyd iterations of the winning k-means run (gauge)
  - clustering_inertia: Sum of squared distances to centroids (gauge)
  - cluster_size: Members per cluster (gauge)
    Labels: cluster

Query Metrics:
  - search_outcomes_total: /api/search results (counter)
    Labels: outcome (resolved, candidates, not_found, invalid)
  - top_n_queries_total: /api/top100 queries (counter)
    Labels: order, filtered
    Labels: result (hit, miss)
  - suggestions_returned: Suggestions per /api/suggest call (histogram)

Example PromQL queries:

	# p95 search latency
	histogram_quantile(0.95, rate(api_request_duration_seconds_bucket{endpoint="/api/search"}[5m]))

	# Share of searches that needed disambiguation
	sum(rate(search_outcomes_total{outcome="candidates"}[5m])) / sum(rate(search_outcomes_total[5m]))

# Cardinality Management

Endpoint labels use the chi route pattern (for example /api/movies/{id}),
never the raw path, so the series count stays fixed. The cluster label is
bounded by the configured k.

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
