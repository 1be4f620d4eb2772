// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package resolve

import (
	"errors"
	"testing"

	"github.com/tomtom215/moviematch/internal/catalog"
)

func newTestResolver(t *testing.T, titles ...string) *Resolver {
	t.Helper()

	movies := make([]catalog.Movie, len(titles))
	labels := make([]int, len(titles))
	for i, title := range titles {
		movies[i] = catalog.Movie{ID: i, Title: title, TitleYear: catalog.Float(float64(2000 + i))}
	}
	store, err := catalog.NewStore(movies, labels, 1)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return New(store)
}

func ptr(s string) *string { return &s }

func TestResolve_ExactMatch(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, "Avatar\u00a0", "Inception ", "Inception 2 ", "inception")

	tests := []struct {
		name   string
		query  string
		wantID int
	}{
		{"case insensitive", "INCEPTION", 1},
		{"surrounding whitespace", "  inception\t", 1},
		{"nbsp in catalog title", "avatar", 0},
		{"nbsp in query", "\u00a0Avatar\u00a0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := r.Resolve(tt.query, nil)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.query, err)
			}
			if res.Kind != KindResolved {
				t.Fatalf("Resolve(%q) kind = %v, want resolved", tt.query, res.Kind)
			}
			if res.Movie.ID != tt.wantID {
				t.Errorf("Resolve(%q) id = %d, want %d (first match in catalog order)", tt.query, res.Movie.ID, tt.wantID)
			}
		})
	}
}

func TestResolve_Candidates(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, "The Matrix", "Avatar", "The Matrix Reloaded", "Matrix of Leadership")

	res, err := r.Resolve("matrix", nil)
	if err != nil {
		t.Fatalf("Resolve(matrix) error = %v", err)
	}
	if res.Kind != KindCandidates {
		t.Fatalf("Resolve(matrix) kind = %v, want candidates", res.Kind)
	}

	want := []int{0, 2, 3}
	if len(res.Candidates) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(res.Candidates), len(want))
	}
	for i, c := range res.Candidates {
		if c.ID != want[i] {
			t.Errorf("candidate %d id = %d, want %d", i, c.ID, want[i])
		}
	}
	if res.Candidates[0].Title != "The Matrix" || *res.Candidates[0].Year != 2000 {
		t.Errorf("candidate 0 = %+v", res.Candidates[0])
	}
}

func TestResolve_InceptionScenario(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, "Avatar", "Inception ", "Inception 2 ")

	// The exact title wins over the longer title that also contains it.
	res, err := r.Resolve("Inception", nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Kind != KindResolved || res.Movie.ID != 1 {
		t.Fatalf("Resolve(Inception) = %+v, want record 1", res)
	}

	// A partial query lists both, and selecting one resolves it.
	res, err = r.Resolve("incep", nil)
	if err != nil || res.Kind != KindCandidates || len(res.Candidates) != 2 {
		t.Fatalf("Resolve(incep) = %+v, %v, want two candidates", res, err)
	}

	res, err = r.Resolve("incep", ptr(" 2 "))
	if err != nil {
		t.Fatalf("Resolve(incep, 2) error = %v", err)
	}
	if res.Kind != KindResolved || res.Movie.Title != "Inception 2 " {
		t.Errorf("Resolve(incep, 2) = %+v, want Inception 2", res)
	}
}

func TestResolve_SelectionSkipsExactMatch(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, "Alien", "Aliens")

	res, err := r.Resolve("alien", ptr("1"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if res.Movie.ID != 1 {
		t.Errorf("selection resolved to %d, want 1", res.Movie.ID)
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, "Avatar", "Inception ", "Inception 2 ")

	tests := []struct {
		name      string
		query     string
		selection *string
		wantKind  ErrorKind
		wantMsg   string
		sentinel  error
	}{
		{"empty query", "", nil, KindValidation, MsgMovieRequired, ErrValidation},
		{"whitespace query", " \u00a0\t", nil, KindValidation, MsgMovieRequired, ErrValidation},
		{"empty query with selection", "", ptr("1"), KindValidation, MsgMovieRequired, ErrValidation},
		{"no match", "Zzyzx", nil, KindNotFound, MsgNoMovieFound, ErrNotFound},
		{"non-integer selection", "incep", ptr("first"), KindValidation, MsgSelectionNotInt, ErrValidation},
		{"float selection", "incep", ptr("1.0"), KindValidation, MsgSelectionNotInt, ErrValidation},
		{"selection outside candidates", "incep", ptr("0"), KindValidation, MsgInvalidSelection, ErrValidation},
		{"selection out of range", "incep", ptr("99"), KindValidation, MsgInvalidSelection, ErrValidation},
		{"selection without candidates", "Zzyzx", ptr("0"), KindValidation, MsgInvalidSelection, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := r.Resolve(tt.query, tt.selection)
			var rerr *Error
			if !errors.As(err, &rerr) {
				t.Fatalf("Resolve() error = %v, want *Error", err)
			}
			if rerr.Kind != tt.wantKind || rerr.Message != tt.wantMsg {
				t.Errorf("Resolve() error = {%v %q}, want {%v %q}", rerr.Kind, rerr.Message, tt.wantKind, tt.wantMsg)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(err, %v) = false", tt.sentinel)
			}
		})
	}
}

func TestResolve_LiteralSubstring(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, "Mr. Smith", "Mrs Smith", "Se7en (1995)")

	res, err := r.Resolve("mr.", nil)
	if err != nil {
		t.Fatalf("Resolve(mr.) error = %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0].ID != 0 {
		t.Errorf("'.' should match literally, got %+v", res.Candidates)
	}

	res, err = r.Resolve("(1995", nil)
	if err != nil {
		t.Fatalf("Resolve((1995) error = %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0].ID != 2 {
		t.Errorf("'(' should match literally, got %+v", res.Candidates)
	}
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	if KindValidation.String() != "validation" || KindNotFound.String() != "not_found" {
		t.Errorf("unexpected kind strings %q %q", KindValidation, KindNotFound)
	}
	if KindResolved.String() != "resolved" || KindCandidates.String() != "candidates" {
		t.Errorf("unexpected resolution kind strings %q %q", KindResolved, KindCandidates)
	}
}
