// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/tomtom215/moviematch/internal/metrics"
	"github.com/tomtom215/moviematch/internal/ranking"
	"github.com/tomtom215/moviematch/internal/resolve"
	"github.com/tomtom215/moviematch/internal/validation"
)

// SuggestionView is one autocomplete entry.
type SuggestionView struct {
	ID     int                 `json:"id"`
	Title  string              `json:"movie_title"`
	Year   ranking.OptionalInt `json:"title_year"`
	Source string              `json:"source"`
}

// SuggestResponse is the body of /api/suggest.
type SuggestResponse struct {
	Query       string           `json:"query"`
	Suggestions []SuggestionView `json:"suggestions"`
}

// ClustersResponse is the body of /api/clusters.
type ClustersResponse struct {
	K        int                      `json:"k"`
	Clusters []ranking.ClusterSummary `json:"clusters"`
}

// Suggest returns autocomplete titles for a partial query.
//
// Query parameters:
//   - q: required partial title
//   - limit: 1-50, default from config
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	limit, verr := intParam(r, "limit", h.config.SuggestLimit)
	if verr != nil {
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}

	req := SuggestRequest{
		Query: strings.TrimSpace(r.URL.Query().Get("q")),
		Limit: limit,
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}
	if verr := h.validateLength("q", req.Query); verr != nil {
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}

	suggestions := h.resolver.Suggest(req.Query, req.Limit)
	metrics.RecordSuggestions(len(suggestions))

	views := make([]SuggestionView, len(suggestions))
	for i, s := range suggestions {
		views[i] = SuggestionView{ID: s.ID, Title: s.Title, Year: ranking.YearOf(s.Year), Source: s.Source}
	}

	respondJSON(w, http.StatusOK, SuggestResponse{Query: req.Query, Suggestions: views})
}

// Movie returns one record by ID, with its cluster and every attribute.
func (h *Handler) Movie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "parameter 'id' must be an integer")
		return
	}

	m, ok := h.store.Movie(id)
	if !ok {
		respondError(w, http.StatusNotFound, resolve.MsgNoMovieFound)
		return
	}

	respondJSON(w, http.StatusOK, ranking.RenderDetail(&m))
}

// Clusters summarizes every cluster.
func (h *Handler) Clusters(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, ClustersResponse{
		K:        h.store.K(),
		Clusters: h.engine.Clusters(),
	})
}
