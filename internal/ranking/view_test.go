// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package ranking

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/tomtom215/moviematch/internal/catalog"
)

func TestRender_MissingSentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		movie catalog.Movie
		want  string
	}{
		{
			name:  "all present",
			movie: catalog.Movie{Title: "Heat", TitleYear: f(1995), Director: "Michael Mann", Genres: "Crime|Drama", IMDBScore: f(8.2)},
			want:  `{"movie_title":"Heat","title_year":1995,"director_name":"Michael Mann","genres":"Crime|Drama","imdb_score":8.2}`,
		},
		{
			name:  "all missing",
			movie: catalog.Movie{Title: "Untitled"},
			want:  `{"movie_title":"Untitled","title_year":"N/D","director_name":"N/D","genres":"N/D","imdb_score":"N/D"}`,
		},
		{
			name:  "year is truncated to an integer",
			movie: catalog.Movie{Title: "Odd", TitleYear: f(2009.0), Director: "X", Genres: "Y", IMDBScore: f(7.5)},
			want:  `{"movie_title":"Odd","title_year":2009,"director_name":"X","genres":"Y","imdb_score":7.5}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(Render(&tt.movie))
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Render() JSON =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderAll_EmptyIsArray(t *testing.T) {
	t.Parallel()

	got, err := json.Marshal(RenderAll(nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("RenderAll(nil) JSON = %s, want []", got)
	}
}

func TestOptionalInt(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		in   *float64
		want string
	}{
		{nil, `"N/D"`},
		{f(2001), `2001`},
		{f(0), `0`},
	} {
		got, err := json.Marshal(YearOf(tt.in))
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(got) != tt.want {
			t.Errorf("YearOf() JSON = %s, want %s", got, tt.want)
		}
	}
}

func TestRenderDetail(t *testing.T) {
	t.Parallel()

	m := catalog.Movie{ID: 7, Cluster: 3, Title: "Heat", TitleYear: f(1995), IMDBScore: f(8.2), Duration: f(170), Gross: f(67.5)}

	data, err := json.Marshal(RenderDetail(&m))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"id":7,"cluster":3,"movie_title":"Heat","title_year":1995,"director_name":"N/D","genres":"N/D",` +
		`"imdb_score":8.2,"duration":170,"budget":"N/D","gross":67.5}`
	if string(data) != want {
		t.Errorf("RenderDetail() =\n%s\nwant\n%s", data, want)
	}
}
