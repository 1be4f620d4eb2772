// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package cluster partitions normalized feature vectors with k-means.
//
// # Algorithm
//
// Each restart seeds centroids with k-means++ and then runs Lloyd
// iterations: every vector joins its nearest centroid by Euclidean distance
// (ties go to the lower centroid index), and every centroid moves to the mean
// of its members. A run stops when no vector changes cluster, when the
// centroids stop moving (see Config.Tolerance), or at MaxIterations. A cluster
// that loses all its members is re-seeded with the vector farthest from its
// own centroid, so the result always has exactly K non-empty clusters.
//
// # Reproducibility
//
// All randomness comes from one math/rand source seeded with Config.Seed and
// consumed in a fixed order, so identical input and configuration always
// produce identical labels. Label values carry no meaning beyond identity.
package cluster

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Result is the outcome of Assign.
type Result struct {
	// Labels holds one cluster index in [0, K) per input vector.
	Labels []int

	// Centroids holds K centroids in normalized feature space.
	Centroids [][]float64

	// Inertia is the sum of squared distances to assigned centroids.
	Inertia float64

	// Iterations is the Lloyd iteration count of the winning restart.
	Iterations int

	// Converged is false when the winning restart hit MaxIterations.
	Converged bool
}

// Sizes returns the member count of every cluster.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.Centroids))
	for _, l := range r.Labels {
		sizes[l]++
	}
	return sizes
}

// Assign clusters vectors into cfg.K groups.
//
// It returns a *ConfigurationError (matching ErrInvalidK) when K exceeds the
// number of distinct vectors; that input is rejected rather than clustered.
func Assign(ctx context.Context, vectors [][]float64, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, ErrNoVectors
	}

	dims := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dims {
			return nil, fmt.Errorf("cluster: vector %d has %d dimensions, want %d", i, len(v), dims)
		}
	}

	if distinct := countDistinct(vectors); cfg.K > distinct {
		return nil, &ConfigurationError{
			Param:  "k",
			Value:  cfg.K,
			Reason: fmt.Sprintf("exceeds the %d distinct records", distinct),
			kind:   ErrInvalidK,
		}
	}

	threshold := cfg.Tolerance * meanVariance(vectors)
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic clustering, not security

	var best *Result
	for restart := 0; restart < cfg.Restarts; restart++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		run, err := lloyd(ctx, vectors, seedPlusPlus(vectors, cfg.K, rng), cfg.MaxIterations, threshold)
		if err != nil {
			return nil, err
		}
		if best == nil || run.Inertia < best.Inertia {
			best = run
		}
	}

	return best, nil
}

// seedPlusPlus picks k initial centroids with k-means++: the first uniformly,
// each next one with probability proportional to its squared distance from
// the nearest centroid chosen so far.
func seedPlusPlus(vectors [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(vectors)
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clone(vectors[rng.Intn(n)]))

	minDist := make([]float64, n)
	for i, v := range vectors {
		minDist[i] = squaredDistance(v, centroids[0])
	}

	for len(centroids) < k {
		total := floats.Sum(minDist)
		target := rng.Float64() * total

		// Strictly greater skips zero-weight vectors, which are duplicates
		// of an existing centroid.
		chosen := -1
		cum := 0.0
		for i, d := range minDist {
			cum += d
			if cum > target && d > 0 {
				chosen = i
				break
			}
		}
		if chosen < 0 {
			chosen = farthest(minDist)
		}

		c := clone(vectors[chosen])
		centroids = append(centroids, c)
		for i, v := range vectors {
			if d := squaredDistance(v, c); d < minDist[i] {
				minDist[i] = d
			}
		}
	}

	return centroids
}

// lloyd runs assignment/update iterations from the given centroids.
func lloyd(ctx context.Context, vectors, centroids [][]float64, maxIter int, threshold float64) (*Result, error) {
	labels := make([]int, len(vectors))
	for i := range labels {
		labels[i] = -1
	}
	dist := make([]float64, len(vectors))

	res := &Result{Centroids: centroids}
	for iter := 1; iter <= maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		changed := assignNearest(vectors, centroids, labels, dist)
		reseedEmpty(vectors, centroids, labels, dist)
		shift := updateCentroids(vectors, centroids, labels)
		res.Iterations = iter

		if changed == 0 || shift <= threshold {
			res.Converged = true
			break
		}
	}

	// Final assignment against the last centroids so labels and centroids agree.
	assignNearest(vectors, centroids, labels, dist)
	reseedEmpty(vectors, centroids, labels, dist)

	res.Labels = labels
	for i := range vectors {
		res.Inertia += squaredDistance(vectors[i], centroids[labels[i]])
	}
	return res, nil
}

// assignNearest moves every vector to its nearest centroid and records the
// distance. It returns how many labels changed.
func assignNearest(vectors, centroids [][]float64, labels []int, dist []float64) int {
	changed := 0
	for i, v := range vectors {
		bestC, bestD := 0, math.Inf(1)
		for c, centroid := range centroids {
			if d := floats.Distance(v, centroid, 2); d < bestD {
				bestC, bestD = c, d
			}
		}
		if labels[i] != bestC {
			labels[i] = bestC
			changed++
		}
		dist[i] = bestD
	}
	return changed
}

// reseedEmpty gives every empty cluster the vector farthest from its current
// centroid, taken from a cluster that keeps at least one member.
func reseedEmpty(vectors, centroids [][]float64, labels []int, dist []float64) {
	counts := make([]int, len(centroids))
	for _, l := range labels {
		counts[l]++
	}

	for c := range centroids {
		if counts[c] > 0 {
			continue
		}
		donor, donorDist := -1, -1.0
		for i := range vectors {
			if counts[labels[i]] > 1 && dist[i] > donorDist {
				donor, donorDist = i, dist[i]
			}
		}
		if donor < 0 {
			return
		}
		counts[labels[donor]]--
		counts[c]++
		labels[donor] = c
		dist[donor] = 0
		centroids[c] = clone(vectors[donor])
	}
}

// updateCentroids moves each centroid to the mean of its members and returns
// the summed squared shift.
func updateCentroids(vectors, centroids [][]float64, labels []int) float64 {
	dims := len(vectors[0])
	sums := make([][]float64, len(centroids))
	for c := range sums {
		sums[c] = make([]float64, dims)
	}
	counts := make([]int, len(centroids))
	for i, v := range vectors {
		floats.Add(sums[labels[i]], v)
		counts[labels[i]]++
	}

	shift := 0.0
	for c := range centroids {
		if counts[c] == 0 {
			continue
		}
		floats.Scale(1/float64(counts[c]), sums[c])
		shift += squaredDistance(sums[c], centroids[c])
		centroids[c] = sums[c]
	}
	return shift
}

func squaredDistance(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

func farthest(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}

// meanVariance returns the mean over dimensions of the per-dimension variance.
func meanVariance(vectors [][]float64) float64 {
	n := float64(len(vectors))
	dims := len(vectors[0])
	total := 0.0
	for j := 0; j < dims; j++ {
		mean := 0.0
		for _, v := range vectors {
			mean += v[j]
		}
		mean /= n
		for _, v := range vectors {
			total += (v[j] - mean) * (v[j] - mean)
		}
	}
	return total / n / float64(dims)
}

// countDistinct returns the number of distinct vectors, comparing exact bits.
func countDistinct(vectors [][]float64) int {
	seen := make(map[string]struct{}, len(vectors))
	buf := make([]byte, 8*len(vectors[0]))
	for _, v := range vectors {
		for j, x := range v {
			if x == 0 {
				x = 0 // fold -0 into +0
			}
			binary.LittleEndian.PutUint64(buf[j*8:], math.Float64bits(x))
		}
		seen[string(buf)] = struct{}{}
	}
	return len(seen)
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
