// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Source loads raw catalog records. Implementations assign ID = position.
type Source interface {
	Load(ctx context.Context) ([]Movie, error)
	String() string
}

// Column names expected in the tabular input.
const (
	ColumnTitle     = "movie_title"
	ColumnDuration  = "duration"
	ColumnBudget    = "budget"
	ColumnIMDBScore = "imdb_score"
	ColumnTitleYear = "title_year"
	ColumnGross     = "gross"
	ColumnDirector  = "director_name"
	ColumnGenres    = "genres"
)

// Columns lists every column a source must provide.
var Columns = []string{
	ColumnTitle,
	ColumnDuration,
	ColumnBudget,
	ColumnIMDBScore,
	ColumnTitleYear,
	ColumnGross,
	ColumnDirector,
	ColumnGenres,
}

var (
	// ErrMissingColumn is returned when the input lacks a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrNonFinite is returned for a numeric cell holding an infinity.
	ErrNonFinite = errors.New("value is not finite")
)

// ParseError reports a cell that could not be parsed.
type ParseError struct {
	Row    int // 1-based data row, header excluded
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d column %s: cannot parse %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// missingTokens are cell values treated as empty, compared case-insensitively.
// The list follows the NA markers pandas recognizes by default.
var missingTokens = map[string]bool{
	"":         true,
	"#n/a":     true,
	"#n/a n/a": true,
	"#na":      true,
	"-1.#ind":  true,
	"-1.#qnan": true,
	"-nan":     true,
	"+nan":     true,
	"1.#ind":   true,
	"1.#qnan":  true,
	"<na>":     true,
	"n/a":      true,
	"na":       true,
	"nan":      true,
	"none":     true,
	"null":     true,
}

func isMissing(v string) bool {
	return missingTokens[strings.ToLower(strings.TrimSpace(v))]
}

// parseOptionalFloat parses a numeric cell, returning nil for missing values.
// Infinities are rejected with ErrNonFinite.
func parseOptionalFloat(v string) (*float64, error) {
	if isMissing(v) {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f) {
		return nil, nil
	}
	if math.IsInf(f, 0) {
		return nil, ErrNonFinite
	}
	return &f, nil
}

// checkFinite rejects a record whose numeric fields hold an infinity.
func checkFinite(m *Movie, row int) error {
	for _, f := range Features {
		if v, ok := m.Value(f); ok && math.IsInf(v, 0) {
			return &ParseError{Row: row, Column: f.String(), Value: strconv.FormatFloat(v, 'g', -1, 64), Err: ErrNonFinite}
		}
	}
	return nil
}

// optionalText returns "" for missing text cells and the raw value otherwise.
func optionalText(v string) string {
	if isMissing(v) {
		return ""
	}
	return v
}
