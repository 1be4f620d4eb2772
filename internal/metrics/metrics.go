// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}, // In-memory queries
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Startup Metrics
	CatalogRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_records",
			Help: "Number of records in the loaded catalog",
		},
	)

	CatalogMissingValues = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_missing_values",
			Help: "Number of records missing each numeric feature before imputation",
		},
		[]string{"feature"},
	)

	StartupPhaseDuration = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "startup_phase_duration_seconds",
			Help: "Duration of each startup phase in seconds",
		},
		[]string{"phase"},
	)

	ClusteringIterations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "clustering_iterations",
			Help: "Lloyd iterations of the winning k-means run",
		},
	)

	ClusteringInertia = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "clustering_inertia",
			Help: "Sum of squared distances from each record to its cluster centroid",
		},
	)

	ClusterSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cluster_size",
			Help: "Number of records in each cluster",
		},
		[]string{"cluster"},
	)

	// Query Metrics
	SearchOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_outcomes_total",
			Help: "Total number of movie searches by outcome",
		},
		[]string{"outcome"},
	)

	TopNQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "top_n_queries_total",
			Help: "Total number of top-N queries",
		},
		[]string{"order", "filtered"},
	)

	SuggestionsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "suggestions_returned",
			Help:    "Number of suggestions returned per autocomplete request",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)
)

// Search outcomes.
const (
	OutcomeResolved   = "resolved"
	OutcomeCandidates = "candidates"
	OutcomeNotFound   = "not_found"
	OutcomeInvalid    = "invalid"
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordCatalogLoad records the catalog size and per-feature missing counts.
func RecordCatalogLoad(records int, missing map[string]int) {
	CatalogRecords.Set(float64(records))
	for feature, n := range missing {
		CatalogMissingValues.WithLabelValues(feature).Set(float64(n))
	}
}

// RecordStartupPhase records how long a startup phase took.
func RecordStartupPhase(phase string, duration time.Duration) {
	StartupPhaseDuration.WithLabelValues(phase).Set(duration.Seconds())
}

// RecordClustering records the outcome of the k-means run.
func RecordClustering(iterations int, inertia float64, sizes []int) {
	ClusteringIterations.Set(float64(iterations))
	ClusteringInertia.Set(inertia)
	for c, n := range sizes {
		ClusterSize.WithLabelValues(strconv.Itoa(c)).Set(float64(n))
	}
}

// RecordSearchOutcome counts one /api/search result.
func RecordSearchOutcome(outcome string) {
	SearchOutcomes.WithLabelValues(outcome).Inc()
}

// RecordTopNQuery counts one top-N query.
func RecordTopNQuery(order string, filtered bool) {
	TopNQueries.WithLabelValues(order, strconv.FormatBool(filtered)).Inc()
}

// RecordSuggestions records the size of an autocomplete response.
func RecordSuggestions(n int) {
	SuggestionsReturned.Observe(float64(n))
}
