// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package cache

import (
	"slices"
	"sync"
	"testing"
)

func TestTrie_InsertAndLookup(t *testing.T) {
	t.Parallel()

	trie := NewTrie()
	trie.Insert("Inception ", 0)
	trie.Insert("inception", 3)
	trie.Insert("Avatar", 1)
	trie.Insert("   ", 2)

	if trie.Size() != 2 {
		t.Errorf("Size() = %d, want 2", trie.Size())
	}
	if got := trie.Lookup("INCEPTION"); !slices.Equal(got, []int{0, 3}) {
		t.Errorf("Lookup(INCEPTION) = %v, want [0 3]", got)
	}
	if got := trie.Lookup("incep"); got != nil {
		t.Errorf("Lookup(incep) = %v, want nil", got)
	}
	if got := trie.Lookup(""); got != nil {
		t.Errorf("Lookup(\"\") = %v, want nil", got)
	}
}

func TestTrie_PrefixMatches(t *testing.T) {
	t.Parallel()

	trie := NewTrie()
	for i, title := range []string{"The Dark Knight", "The Dark Knight Rises", "The Departed", "Titanic", "Up"} {
		trie.Insert(title, i)
	}

	tests := []struct {
		name   string
		prefix string
		limit  int
		want   []string
	}{
		{"shortest first", "the d", 10, []string{"the departed", "the dark knight", "the dark knight rises"}},
		{"limit", "the d", 2, []string{"the departed", "the dark knight"}},
		{"case and space insensitive", "  TIT", 10, []string{"titanic"}},
		{"exact key included", "up", 10, []string{"up"}},
		{"no match", "zz", 10, nil},
		{"empty prefix", " ", 10, nil},
		{"zero limit", "t", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []string
			for _, m := range trie.PrefixMatches(tt.prefix, tt.limit) {
				got = append(got, m.Key)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("PrefixMatches(%q, %d) = %v, want %v", tt.prefix, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTrie_PrefixMatchesReturnsCopies(t *testing.T) {
	t.Parallel()

	trie := NewTrie()
	trie.Insert("Heat", 7)

	matches := trie.PrefixMatches("he", 1)
	matches[0].IDs[0] = 99

	if got := trie.Lookup("heat"); !slices.Equal(got, []int{7}) {
		t.Errorf("Lookup after caller mutation = %v, want [7]", got)
	}
}

func TestTrie_ConcurrentReads(t *testing.T) {
	t.Parallel()

	trie := NewTrie()
	for i, title := range []string{"Alien", "Aliens", "Alien 3", "Amadeus"} {
		trie.Insert(title, i)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if len(trie.PrefixMatches("ali", 10)) != 3 {
					t.Error("concurrent PrefixMatches returned wrong count")
					return
				}
			}
		}()
	}
	wg.Wait()
}
