// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package ranking answers the two catalog queries: movies similar to a
// resolved record, and the top movies overall or within a genre.
//
// # Ordering
//
// Every sort is stable and descending, and records missing the sort key go
// last. Records that tie keep catalog order. "year" orders by title_year;
// any other order value orders by imdb_score.
//
// # Top-N
//
// TopN always selects by score first and only then reorders. Asking for
// order=year returns the best-scored N movies sorted by year, not the N most
// recent movies.
package ranking

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/tomtom215/moviematch/internal/catalog"
)

// OrderYear selects ordering by title year. Any other value orders by score.
const OrderYear = "year"

// Config holds ranking parameters.
type Config struct {
	// Threshold is the minimum imdb_score for a similar movie.
	Threshold float64

	// TopN caps the TopN result before the optional year reorder.
	TopN int
}

// DefaultConfig returns a 7.5 similarity threshold and a top 100.
func DefaultConfig() Config {
	return Config{Threshold: 7.5, TopN: 100}
}

// withDefaults replaces values no query could use: a non-positive TopN and
// a non-finite threshold fall back to DefaultConfig.
func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.TopN <= 0 {
		c.TopN = defaults.TopN
	}
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) {
		c.Threshold = defaults.Threshold
	}
	return c
}

// SimilarResult is the answer to SimilarTo.
type SimilarResult struct {
	Selected catalog.Movie
	Cluster  int
	Order    string
	Movies   []catalog.Movie
}

// Engine ranks records of a frozen Store. It holds no state besides what
// NewEngine derives from the store, so it is safe for concurrent use.
type Engine struct {
	store *catalog.Store
	cfg   Config

	// genres[id] is the lowercased genre text of record id.
	genres []string
}

// NewEngine creates an Engine over store. Unusable Config values are
// replaced by their defaults, see Config.withDefaults.
func NewEngine(store *catalog.Store, cfg Config) *Engine {
	e := &Engine{
		store:  store,
		cfg:    cfg.withDefaults(),
		genres: make([]string, 0, store.Len()),
	}
	for m := range store.All() {
		e.genres = append(e.genres, strings.ToLower(m.Genres))
	}
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// SimilarTo returns every record in m's cluster scoring at least the
// threshold, m included when it qualifies. Order is echoed unchanged.
func (e *Engine) SimilarTo(m *catalog.Movie, order string) SimilarResult {
	var similar []catalog.Movie
	for other := range e.store.All() {
		if other.Cluster == m.Cluster && e.qualifies(&other) {
			similar = append(similar, other)
		}
	}

	if order == OrderYear {
		slices.SortStableFunc(similar, descending(catalog.TitleYear))
	} else {
		slices.SortStableFunc(similar, descending(catalog.IMDBScore))
	}

	return SimilarResult{
		Selected: *m,
		Cluster:  m.Cluster,
		Order:    order,
		Movies:   similar,
	}
}

// TopN returns the highest-scored records, optionally restricted to those
// whose genres contain genre (case-insensitive, literal). Records without
// genres never pass a non-empty filter.
//
// The filtered set is sorted by score and cut to Config.TopN; with order
// "year" that cut is then re-sorted by year.
func (e *Engine) TopN(genre, order string) []catalog.Movie {
	needle := strings.ToLower(genre)

	var movies []catalog.Movie
	for m := range e.store.All() {
		if needle != "" && (!m.HasGenres() || !strings.Contains(e.genres[m.ID], needle)) {
			continue
		}
		movies = append(movies, m)
	}

	slices.SortStableFunc(movies, descending(catalog.IMDBScore))
	if len(movies) > e.cfg.TopN {
		movies = movies[:e.cfg.TopN]
	}
	if order == OrderYear {
		slices.SortStableFunc(movies, descending(catalog.TitleYear))
	}
	return movies
}

func (e *Engine) qualifies(m *catalog.Movie) bool {
	score, ok := m.Value(catalog.IMDBScore)
	return ok && score >= e.cfg.Threshold
}

// descending orders by feature f, largest first, missing values last.
func descending(f catalog.Feature) func(a, b catalog.Movie) int {
	return func(a, b catalog.Movie) int {
		av, aok := a.Value(f)
		bv, bok := b.Value(f)
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return 1
		case !bok:
			return -1
		}
		return cmp.Compare(bv, av)
	}
}
