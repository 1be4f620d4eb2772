// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package catalog

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrEmptyCatalog is returned when a source yields no records.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrLabelMismatch is returned when labels do not line up with records.
	ErrLabelMismatch = errors.New("cluster labels do not match catalog")
)

// Store is the frozen, labelled catalog. All methods are safe for
// concurrent use because nothing mutates a Store after NewStore returns.
type Store struct {
	movies []Movie
	k      int
	sizes  []int
}

// NewStore copies movies, attaches labels[i] to movies[i] and freezes the result.
// Every label must be in [0, k) and every movie's ID must equal its position.
func NewStore(movies []Movie, labels []int, k int) (*Store, error) {
	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrLabelMismatch, k)
	}
	if len(labels) != len(movies) {
		return nil, fmt.Errorf("%w: %d labels for %d records", ErrLabelMismatch, len(labels), len(movies))
	}

	frozen := make([]Movie, len(movies))
	sizes := make([]int, k)
	for i := range movies {
		if movies[i].ID != i {
			return nil, fmt.Errorf("%w: record at position %d has id %d", ErrLabelMismatch, i, movies[i].ID)
		}
		if labels[i] < 0 || labels[i] >= k {
			return nil, fmt.Errorf("%w: label %d for record %d outside [0, %d)", ErrLabelMismatch, labels[i], i, k)
		}
		frozen[i] = movies[i]
		frozen[i].Cluster = labels[i]
		sizes[labels[i]]++
	}

	return &Store{movies: frozen, k: k, sizes: sizes}, nil
}

// Len returns the number of records.
func (s *Store) Len() int { return len(s.movies) }

// K returns the number of clusters.
func (s *Store) K() int { return s.k }

// Movie returns the record with the given ID.
func (s *Store) Movie(id int) (Movie, bool) {
	if id < 0 || id >= len(s.movies) {
		return Movie{}, false
	}
	return s.movies[id], true
}

// All yields every record in catalog order.
func (s *Store) All() iter.Seq[Movie] {
	return func(yield func(Movie) bool) {
		for i := range s.movies {
			if !yield(s.movies[i]) {
				return
			}
		}
	}
}

// ClusterSize returns the number of records carrying label c.
func (s *Store) ClusterSize(c int) int {
	if c < 0 || c >= s.k {
		return 0
	}
	return s.sizes[c]
}
