// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/resolve"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// sanitizeLogValue escapes control characters so user input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondResolveError maps resolver errors onto HTTP status codes:
// validation is 400, not found is 404, anything else is 500.
func respondResolveError(w http.ResponseWriter, r *http.Request, err error) {
	var rerr *resolve.Error
	if !errors.As(err, &rerr) {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Search failed")
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	status := http.StatusBadRequest
	if rerr.Kind == resolve.KindNotFound {
		status = http.StatusNotFound
	}

	logging.Ctx(r.Context()).Debug().
		Str("kind", rerr.Kind.String()).
		Str("movie", sanitizeLogValue(r.URL.Query().Get("movie"))).
		Msg(rerr.Message)
	respondError(w, status, rerr.Message)
}
