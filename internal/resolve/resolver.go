// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package resolve maps free-text movie queries onto catalog records.
//
// A query resolves in one of three ways. An exact title match (ignoring case
// and surrounding whitespace) resolves to the first such record in catalog
// order. Otherwise every title containing the query becomes a candidate, and
// the caller asks the user to pick one by ID. When nothing contains the query
// the result is a not-found error.
//
// Matching is literal: characters such as '.' or '(' in a query have no
// special meaning.
package resolve

import (
	"strconv"
	"strings"

	"github.com/tomtom215/moviematch/internal/cache"
	"github.com/tomtom215/moviematch/internal/catalog"
)

// Kind tags a successful Resolution.
type Kind int

const (
	// KindResolved means Movie holds the matched record.
	KindResolved Kind = iota + 1

	// KindCandidates means Candidates holds the titles containing the query.
	KindCandidates
)

func (k Kind) String() string {
	switch k {
	case KindResolved:
		return "resolved"
	case KindCandidates:
		return "candidates"
	default:
		return "unknown"
	}
}

// Candidate is one disambiguation option. ID is the token a client sends
// back as the selection.
type Candidate struct {
	ID    int
	Title string
	Year  *float64
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	Kind       Kind
	Movie      *catalog.Movie
	Candidates []Candidate
}

// Resolver answers title queries against a frozen Store. It is safe for
// concurrent use.
type Resolver struct {
	store *catalog.Store

	// titles[id] is the trimmed, lowercased title of record id.
	titles []string

	// index holds the same keys for prefix suggestions.
	index *cache.Trie
}

// New builds a Resolver over store, normalizing every title once.
func New(store *catalog.Store) *Resolver {
	r := &Resolver{
		store:  store,
		titles: make([]string, 0, store.Len()),
		index:  cache.NewTrie(),
	}
	for m := range store.All() {
		key := cache.Normalize(m.Title)
		r.titles = append(r.titles, key)
		r.index.Insert(key, m.ID)
	}
	return r
}

// Resolve maps query, and an optional selection token, to a record or a
// candidate list.
//
// When selection is non-nil it must parse as an integer ID that appears in
// the candidate set for query; the exact-match step is skipped.
func (r *Resolver) Resolve(query string, selection *string) (*Resolution, error) {
	needle := cache.Normalize(query)
	if needle == "" {
		return nil, validationError(MsgMovieRequired)
	}

	if selection != nil {
		id, err := strconv.Atoi(strings.TrimSpace(*selection))
		if err != nil {
			return nil, validationError(MsgSelectionNotInt)
		}
		for _, c := range r.candidates(needle) {
			if c.ID == id {
				return r.resolved(id), nil
			}
		}
		return nil, validationError(MsgInvalidSelection)
	}

	for id, title := range r.titles {
		if title == needle {
			return r.resolved(id), nil
		}
	}

	candidates := r.candidates(needle)
	if len(candidates) == 0 {
		return nil, notFoundError(MsgNoMovieFound)
	}
	return &Resolution{Kind: KindCandidates, Candidates: candidates}, nil
}

// candidates returns every record whose normalized title contains needle,
// in catalog order.
func (r *Resolver) candidates(needle string) []Candidate {
	var out []Candidate
	for id, title := range r.titles {
		if strings.Contains(title, needle) {
			out = append(out, r.candidate(id))
		}
	}
	return out
}

func (r *Resolver) candidate(id int) Candidate {
	m, _ := r.store.Movie(id)
	return Candidate{ID: m.ID, Title: m.Title, Year: m.TitleYear}
}

func (r *Resolver) resolved(id int) *Resolution {
	m, _ := r.store.Movie(id)
	return &Resolution{Kind: KindResolved, Movie: &m}
}
