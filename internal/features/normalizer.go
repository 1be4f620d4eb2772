// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package features turns catalog records into clustering input.
//
// Fit computes, once over the whole catalog, the median of every numeric
// feature (used to fill missing values) and the population mean and standard
// deviation of each filled column (used for z-score scaling). The resulting
// Model is frozen: Transform never updates it, so the same record always maps
// to the same vector.
//
// A feature whose filled column has zero variance carries no information for
// clustering; its scaled value is 0 for every record.
package features

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/moviematch/internal/catalog"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyCatalog is returned by Fit when there are no records.
var ErrEmptyCatalog = errors.New("cannot fit normalization model on an empty catalog")

// Vector is a scaled feature vector in catalog.Features order.
type Vector []float64

// Model holds the frozen imputation and scaling statistics.
type Model struct {
	Medians [catalog.NumFeatures]float64
	Means   [catalog.NumFeatures]float64
	StdDevs [catalog.NumFeatures]float64

	// Missing counts how many records lacked each feature at fit time.
	Missing [catalog.NumFeatures]int
}

// Fit computes the normalization model over movies.
func Fit(movies []catalog.Movie) (*Model, error) {
	n := len(movies)
	if n == 0 {
		return nil, ErrEmptyCatalog
	}

	model := &Model{}
	for j, f := range catalog.Features {
		present := make([]float64, 0, n)
		for i := range movies {
			if v, ok := movies[i].Value(f); ok {
				present = append(present, v)
			}
		}
		model.Missing[j] = n - len(present)
		model.Medians[j] = median(present)
	}

	filled := mat.NewDense(n, catalog.NumFeatures, nil)
	for i := range movies {
		filled.SetRow(i, model.impute(&movies[i]))
	}

	col := make([]float64, n)
	for j, f := range catalog.Features {
		mat.Col(col, j, filled)
		mean, std := popMeanStdDev(col)
		if math.IsNaN(mean) || math.IsInf(mean, 0) {
			return nil, fmt.Errorf("feature %s has a non-finite mean", f)
		}
		model.Means[j] = mean
		model.StdDevs[j] = std
	}

	return model, nil
}

// Transform returns the scaled feature vector of m.
func (model *Model) Transform(m *catalog.Movie) Vector {
	v := Vector(model.impute(m))
	for j := range v {
		if model.StdDevs[j] == 0 {
			v[j] = 0
			continue
		}
		v[j] = (v[j] - model.Means[j]) / model.StdDevs[j]
	}
	return v
}

// TransformAll returns one vector per movie, in order.
func (model *Model) TransformAll(movies []catalog.Movie) []Vector {
	out := make([]Vector, len(movies))
	for i := range movies {
		out[i] = model.Transform(&movies[i])
	}
	return out
}

// impute returns the raw feature values of m with missing entries replaced
// by the fitted medians.
func (model *Model) impute(m *catalog.Movie) []float64 {
	row := make([]float64, catalog.NumFeatures)
	for j, f := range catalog.Features {
		if v, ok := m.Value(f); ok {
			row[j] = v
		} else {
			row[j] = model.Medians[j]
		}
	}
	return row
}

// median returns the middle value of xs, averaging the two middle values
// when the count is even. It returns 0 for an empty slice.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// popMeanStdDev returns the mean and population (ddof=0) standard deviation.
func popMeanStdDev(xs []float64) (mean, std float64) {
	n := float64(len(xs))
	mean, variance := stat.MeanVariance(xs, nil)
	if len(xs) < 2 {
		return mean, 0
	}
	// stat.MeanVariance is the unbiased estimator; rescale to population.
	variance *= (n - 1) / n
	std = math.Sqrt(math.Max(variance, 0))
	// Rounding in the mean leaves a residue on constant columns.
	if std <= zeroVarianceTolerance*math.Max(1, math.Abs(mean)) {
		return mean, 0
	}
	return mean, std
}

const zeroVarianceTolerance = 1e-12
