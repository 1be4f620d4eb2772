// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package ranking

import (
	"strconv"

	"github.com/goccy/go-json"
	"github.com/tomtom215/moviematch/internal/catalog"
)

// Missing is the wire value for an absent field.
const Missing = "N/D"

var missingJSON = []byte(`"` + Missing + `"`)

// OptionalInt renders as a JSON integer, or "N/D" when not Valid.
type OptionalInt struct {
	Value int
	Valid bool
}

// MarshalJSON implements json.Marshaler.
func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return missingJSON, nil
	}
	return strconv.AppendInt(nil, int64(o.Value), 10), nil
}

// OptionalFloat renders as a JSON number, or "N/D" when not Valid.
type OptionalFloat struct {
	Value float64
	Valid bool
}

// MarshalJSON implements json.Marshaler.
func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return missingJSON, nil
	}
	return json.Marshal(o.Value)
}

// OptionalString renders as a JSON string, or "N/D" when empty.
type OptionalString string

// MarshalJSON implements json.Marshaler.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o == "" {
		return missingJSON, nil
	}
	return json.Marshal(string(o))
}

// YearOf converts a raw year to its wire form, truncated to an integer.
func YearOf(year *float64) OptionalInt {
	if year == nil {
		return OptionalInt{}
	}
	return OptionalInt{Value: int(*year), Valid: true}
}

func floatOf(v *float64) OptionalFloat {
	if v == nil {
		return OptionalFloat{}
	}
	return OptionalFloat{Value: *v, Valid: true}
}

// MovieView is the wire form of a ranked movie.
type MovieView struct {
	Title     string         `json:"movie_title"`
	Year      OptionalInt    `json:"title_year"`
	Director  OptionalString `json:"director_name"`
	Genres    OptionalString `json:"genres"`
	IMDBScore OptionalFloat  `json:"imdb_score"`
}

// Render converts m to its wire form.
func Render(m *catalog.Movie) MovieView {
	return MovieView{
		Title:     m.Title,
		Year:      YearOf(m.TitleYear),
		Director:  OptionalString(m.Director),
		Genres:    OptionalString(m.Genres),
		IMDBScore: floatOf(m.IMDBScore),
	}
}

// RenderAll converts movies to wire form, preserving order. It never
// returns nil, so an empty result encodes as [].
func RenderAll(movies []catalog.Movie) []MovieView {
	out := make([]MovieView, len(movies))
	for i := range movies {
		out[i] = Render(&movies[i])
	}
	return out
}

// DetailView is the wire form of a single record with every attribute.
type DetailView struct {
	ID      int `json:"id"`
	Cluster int `json:"cluster"`
	MovieView
	Duration OptionalFloat `json:"duration"`
	Budget   OptionalFloat `json:"budget"`
	Gross    OptionalFloat `json:"gross"`
}

// RenderDetail converts m to its detailed wire form.
func RenderDetail(m *catalog.Movie) DetailView {
	return DetailView{
		ID:        m.ID,
		Cluster:   m.Cluster,
		MovieView: Render(m),
		Duration:  floatOf(m.Duration),
		Budget:    floatOf(m.Budget),
		Gross:     floatOf(m.Gross),
	}
}
