// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package cache

import (
	"slices"
	"strings"
	"sync"
)

type trieNode struct {
	children map[rune]*trieNode
	key      string // normalized key ending at this node, if any
	ids      []int  // record IDs stored under key, in insertion order
}

// Trie is a case-insensitive prefix tree mapping normalized strings to record IDs.
// Several IDs may share one key, which happens when the catalog lists the
// same title twice.
//
// It is safe for concurrent use. In practice it is filled once during
// startup and only read afterwards.
type Trie struct {
	mu   sync.RWMutex
	root *trieNode
	size int
}

// TrieMatch is one key found under a prefix.
type TrieMatch struct {
	Key string
	IDs []int
}

// NewTrie creates an empty Trie.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Normalize is the key form used by the Trie: trimmed and lowercased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Insert stores id under the normalized form of value.
// Empty values are ignored.
func (t *Trie) Insert(value string, id int) {
	key := Normalize(value)
	if key == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, ch := range key {
		next := node.children[ch]
		if next == nil {
			next = newTrieNode()
			node.children[ch] = next
		}
		node = next
	}

	if len(node.ids) == 0 {
		t.size++
	}
	node.key = key
	node.ids = append(node.ids, id)
}

// Lookup returns the IDs stored under exactly value.
func (t *Trie) Lookup(value string) []int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(Normalize(value))
	if node == nil || len(node.ids) == 0 {
		return nil
	}
	return slices.Clone(node.ids)
}

// PrefixMatches returns up to limit keys starting with prefix, shortest key
// first, then alphabetically. An empty prefix matches nothing.
func (t *Trie) PrefixMatches(prefix string, limit int) []TrieMatch {
	key := Normalize(prefix)
	if key == "" || limit <= 0 {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.find(key)
	if node == nil {
		return nil
	}

	var matches []TrieMatch
	collect(node, &matches)

	slices.SortFunc(matches, func(a, b TrieMatch) int {
		if la, lb := len(a.Key), len(b.Key); la != lb {
			return la - lb
		}
		return strings.Compare(a.Key, b.Key)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Size returns the number of distinct keys.
func (t *Trie) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// find walks to the node for key (must be called with mu held).
func (t *Trie) find(key string) *trieNode {
	node := t.root
	for _, ch := range key {
		node = node.children[ch]
		if node == nil {
			return nil
		}
	}
	return node
}

func collect(node *trieNode, out *[]TrieMatch) {
	if len(node.ids) > 0 {
		*out = append(*out, TrieMatch{Key: node.key, IDs: slices.Clone(node.ids)})
	}
	for _, child := range node.children {
		collect(child, out)
	}
}
