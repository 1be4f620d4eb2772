// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package resolve

import (
	"cmp"
	"slices"
	"sort"

	"github.com/hbollon/go-edlib"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/tomtom215/moviematch/internal/cache"
)

// MinSimilarity is the Jaro-Winkler score a title needs to be offered as a
// "did you mean" suggestion.
const MinSimilarity float32 = 0.8

// Suggestion source, best first.
const (
	SourcePrefix  = "prefix"
	SourceFuzzy   = "fuzzy"
	SourceSimilar = "similar"
)

// Suggestion is one autocomplete entry.
type Suggestion struct {
	Candidate
	Source string
}

// Suggest returns up to limit titles for a partially typed query.
//
// Strategies run in order until limit is reached:
//  1. prefix: titles starting with the query, shortest first
//  2. fuzzy: titles containing the query's characters in order
//  3. similar: titles within MinSimilarity Jaro-Winkler similarity, for typos
//
// A title is listed once, under the first strategy that found it.
func (r *Resolver) Suggest(query string, limit int) []Suggestion {
	needle := cache.Normalize(query)
	if needle == "" || limit <= 0 {
		return nil
	}

	s := suggester{r: r, limit: limit, seen: make(map[int]struct{})}

	for _, match := range r.index.PrefixMatches(needle, limit) {
		for _, id := range match.IDs {
			s.add(id, SourcePrefix)
		}
	}
	if s.full() {
		return s.out
	}

	ranks := fuzzy.RankFindFold(needle, r.titles)
	sort.Stable(ranks)
	for _, rank := range ranks {
		s.add(rank.OriginalIndex, SourceFuzzy)
	}
	if s.full() {
		return s.out
	}

	type scored struct {
		id    int
		score float32
	}
	var similar []scored
	for id, title := range r.titles {
		if _, ok := s.seen[id]; ok {
			continue
		}
		if score := edlib.JaroWinklerSimilarity(needle, title); score >= MinSimilarity {
			similar = append(similar, scored{id: id, score: score})
		}
	}
	slices.SortStableFunc(similar, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})
	for _, sc := range similar {
		s.add(sc.id, SourceSimilar)
	}

	return s.out
}

type suggester struct {
	r     *Resolver
	limit int
	seen  map[int]struct{}
	out   []Suggestion
}

func (s *suggester) full() bool { return len(s.out) >= s.limit }

func (s *suggester) add(id int, source string) {
	if s.full() {
		return
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.out = append(s.out, Suggestion{Candidate: s.r.candidate(id), Source: source})
}
