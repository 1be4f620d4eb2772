// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package api provides the HTTP JSON API for MovieMatch.

Routes:

	GET /api/search?movie=&selection=&order=   similar movies, or a candidate list
	GET /api/top100?genre=&order=              best-scored movies
	GET /api/suggest?q=&limit=                 title autocomplete
	GET /api/movies/{id}                       one record with its cluster
	GET /api/clusters                          per-cluster summary
	GET /health/live, /health/ready            health checks
	GET /metrics                               Prometheus exposition

Responses are flat JSON objects. Errors are {"error": "..."} with 400 for bad
parameters, 404 for unknown movies and 429 when rate limited. Missing
attributes render as "N/D".

Middleware, outermost first: request ID, real IP, request logging, panic
recovery and CORS on every route; then rate limiting, security headers,
Prometheus metrics and gzip on /api.

Usage:

	handler := api.NewHandler(store, resolver, engine, cfg.Search)
	mw := api.NewChiMiddlewareFromConfig(cfg.Security.CORSOrigins,
	    cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow, cfg.Security.RateLimitDisabled)
	http.ListenAndServe(cfg.Addr(), api.NewRouter(handler, mw).Setup())
*/
package api
