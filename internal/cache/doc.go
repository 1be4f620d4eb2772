// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package cache provides the title index behind catalog lookups.

# Overview

Trie maps normalized titles (trimmed, lowercased) to record IDs and supports
exact lookup and prefix enumeration. Entries never expire: the index is
derived from the catalog, which is frozen after startup.

# Usage Example

	idx := cache.NewTrie()
	idx.Insert("Avatar ", 0)
	ids := idx.Lookup("avatar") // [0]
	matches := idx.PrefixMatches("ava", 10)

# Thread Safety

Trie is safe for concurrent use. It is filled during startup and only read
afterwards.
*/
package cache
