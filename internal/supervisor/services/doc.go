// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package services provides suture.Service wrappers for MovieMatch components.
//
// HTTPServerService translates an *http.Server lifecycle into suture's
// Serve(ctx) error pattern, with graceful shutdown on cancellation. It
// implements fmt.Stringer so supervisor events name it.
package services
