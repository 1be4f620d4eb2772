// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/metrics"
	"github.com/tomtom215/moviematch/internal/ranking"
	"github.com/tomtom215/moviematch/internal/resolve"
)

// Default order values echoed back when the client sends none.
const (
	defaultSearchOrder = "imdb"
	defaultTopOrder    = "score"
)

// CandidateView is one disambiguation option.
type CandidateView struct {
	ID    int                 `json:"id"`
	Title string              `json:"movie_title"`
	Year  ranking.OptionalInt `json:"title_year"`
}

// CandidatesResponse asks the client to pick one of several titles.
type CandidatesResponse struct {
	Message    string          `json:"message"`
	Candidates []CandidateView `json:"candidates"`
}

// SimilarResponse lists the movies similar to the resolved title.
type SimilarResponse struct {
	SelectedMovie string              `json:"selected_movie"`
	Cluster       int                 `json:"cluster"`
	Order         string              `json:"order"`
	SimilarMovies []ranking.MovieView `json:"similar_movies"`
}

// TopResponse is the body of /api/top100.
type TopResponse struct {
	Order  string              `json:"order"`
	Genre  string              `json:"genre"`
	Movies []ranking.MovieView `json:"movies"`
}

// orderParam returns the lowercased order parameter, or fallback when the
// parameter is absent. A present but empty value stays empty.
func orderParam(r *http.Request, fallback string) string {
	q := r.URL.Query()
	if !q.Has("order") {
		return fallback
	}
	return strings.ToLower(q.Get("order"))
}

// orderLabel bounds metric cardinality to the two orderings that exist.
func orderLabel(order string) string {
	if order == ranking.OrderYear {
		return ranking.OrderYear
	}
	return defaultTopOrder
}

// Search resolves a title and lists similar movies from its cluster.
//
// Query parameters:
//   - movie: required title or title fragment
//   - selection: optional candidate ID from a previous disambiguation
//   - order: "year" or anything else for score (default "imdb")
//
// An ambiguous title answers 200 with a candidate list instead.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	movie := strings.TrimSpace(q.Get("movie"))
	order := orderParam(r, defaultSearchOrder)

	var selection *string
	if q.Has("selection") {
		s := q.Get("selection")
		selection = &s
	}

	if verr := h.validateLength("movie", movie); verr != nil {
		metrics.RecordSearchOutcome(metrics.OutcomeInvalid)
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}

	res, err := h.resolver.Resolve(movie, selection)
	if err != nil {
		if errors.Is(err, resolve.ErrNotFound) {
			metrics.RecordSearchOutcome(metrics.OutcomeNotFound)
		} else {
			metrics.RecordSearchOutcome(metrics.OutcomeInvalid)
		}
		respondResolveError(w, r, err)
		return
	}

	if res.Kind == resolve.KindCandidates {
		metrics.RecordSearchOutcome(metrics.OutcomeCandidates)
		candidates := make([]CandidateView, len(res.Candidates))
		for i, c := range res.Candidates {
			candidates[i] = CandidateView{ID: c.ID, Title: c.Title, Year: ranking.YearOf(c.Year)}
		}
		respondJSON(w, http.StatusOK, CandidatesResponse{
			Message:    resolve.MsgSelectCandidate,
			Candidates: candidates,
		})
		return
	}

	metrics.RecordSearchOutcome(metrics.OutcomeResolved)
	similar := h.engine.SimilarTo(res.Movie, order)

	logging.Ctx(r.Context()).Debug().
		Int("movie_id", res.Movie.ID).
		Int("cluster", similar.Cluster).
		Int("similar", len(similar.Movies)).
		Msg("Search resolved")

	respondJSON(w, http.StatusOK, SimilarResponse{
		SelectedMovie: similar.Selected.Title,
		Cluster:       similar.Cluster,
		Order:         similar.Order,
		SimilarMovies: ranking.RenderAll(similar.Movies),
	})
}

// Top100 lists the best-scored movies, optionally within a genre.
//
// Query parameters:
//   - genre: optional case-insensitive genre fragment
//   - order: "year" or anything else for score (default "score")
//
// It always answers 200; a genre that matches nothing yields an empty list.
func (h *Handler) Top100(w http.ResponseWriter, r *http.Request) {
	genre := strings.TrimSpace(r.URL.Query().Get("genre"))
	order := orderParam(r, defaultTopOrder)

	if verr := h.validateLength("genre", genre); verr != nil {
		respondError(w, http.StatusBadRequest, verr.Error())
		return
	}

	movies := h.engine.TopN(genre, order)
	metrics.RecordTopNQuery(orderLabel(order), genre != "")

	respondJSON(w, http.StatusOK, TopResponse{
		Order:  order,
		Genre:  genre,
		Movies: ranking.RenderAll(movies),
	})
}
