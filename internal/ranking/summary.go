// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package ranking

import "github.com/tomtom215/moviematch/internal/catalog"

// ClusterSummary describes one cluster.
type ClusterSummary struct {
	Cluster int `json:"cluster"`
	Size    int `json:"size"`

	// Qualifying counts members at or above the similarity threshold, which
	// is the size of the SimilarTo result for any member.
	Qualifying int `json:"qualifying"`

	// MeanIMDBScore averages the members that have a score.
	MeanIMDBScore OptionalFloat `json:"mean_imdb_score"`
}

// Clusters summarizes every cluster, in label order.
func (e *Engine) Clusters() []ClusterSummary {
	k := e.store.K()
	out := make([]ClusterSummary, k)
	sums := make([]float64, k)
	scored := make([]int, k)

	for m := range e.store.All() {
		s := &out[m.Cluster]
		s.Size++
		if score, ok := m.Value(catalog.IMDBScore); ok {
			sums[m.Cluster] += score
			scored[m.Cluster]++
			if score >= e.cfg.Threshold {
				s.Qualifying++
			}
		}
	}

	for c := range out {
		out[c].Cluster = c
		if scored[c] > 0 {
			out[c].MeanIMDBScore = OptionalFloat{Value: sums[c] / float64(scored[c]), Valid: true}
		}
	}
	return out
}
