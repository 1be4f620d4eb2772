// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package ranking

import (
	"math"
	"slices"
	"testing"

	"github.com/tomtom215/moviematch/internal/catalog"
)

var f = catalog.Float

type rec struct {
	title   string
	genres  string
	score   *float64
	year    *float64
	cluster int
}

func newTestEngine(t *testing.T, k int, cfg Config, recs ...rec) *Engine {
	t.Helper()

	movies := make([]catalog.Movie, len(recs))
	labels := make([]int, len(recs))
	for i, r := range recs {
		movies[i] = catalog.Movie{ID: i, Title: r.title, Genres: r.genres, IMDBScore: r.score, TitleYear: r.year}
		labels[i] = r.cluster
	}
	store, err := catalog.NewStore(movies, labels, k)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return NewEngine(store, cfg)
}

func ids(movies []catalog.Movie) []int {
	out := make([]int, len(movies))
	for i := range movies {
		out[i] = movies[i].ID
	}
	return out
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Threshold != 7.5 || cfg.TopN != 100 {
		t.Errorf("DefaultConfig() = %+v, want threshold 7.5, top 100", cfg)
	}
}

func TestSimilarTo_Threshold(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 2, DefaultConfig(),
		rec{title: "selected", score: f(5), cluster: 0},
		rec{title: "at threshold", score: f(7.5), cluster: 0},
		rec{title: "below", score: f(7.49), cluster: 0},
		rec{title: "no score", cluster: 0},
		rec{title: "best", score: f(9), cluster: 0},
		rec{title: "other cluster", score: f(9.5), cluster: 1},
	)

	selected, _ := e.store.Movie(0)
	res := e.SimilarTo(&selected, "imdb")

	if got, want := ids(res.Movies), []int{4, 1}; !slices.Equal(got, want) {
		t.Errorf("SimilarTo() ids = %v, want %v", got, want)
	}
	if res.Cluster != 0 || res.Order != "imdb" || res.Selected.ID != 0 {
		t.Errorf("SimilarTo() header = {%d %q %d}", res.Cluster, res.Order, res.Selected.ID)
	}
	for _, m := range res.Movies {
		if *m.IMDBScore < 7.5 {
			t.Errorf("movie %q below threshold", m.Title)
		}
	}
}

func TestSimilarTo_IncludesSelectedWhenQualifying(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 1, DefaultConfig(),
		rec{title: "a", score: f(8)},
		rec{title: "b", score: f(6)},
	)

	m, _ := e.store.Movie(0)
	res := e.SimilarTo(&m, "")
	if got := ids(res.Movies); !slices.Equal(got, []int{0}) {
		t.Errorf("SimilarTo() ids = %v, want [0]", got)
	}
}

func TestSimilarTo_YearOrderStableTies(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 1, DefaultConfig(),
		rec{title: "2010 first", score: f(8), year: f(2010)},
		rec{title: "no year", score: f(9)},
		rec{title: "2015", score: f(7.6), year: f(2015)},
		rec{title: "2010 second", score: f(9.1), year: f(2010)},
	)

	m, _ := e.store.Movie(0)
	res := e.SimilarTo(&m, "year")
	if got, want := ids(res.Movies), []int{2, 0, 3, 1}; !slices.Equal(got, want) {
		t.Errorf("SimilarTo(year) ids = %v, want %v", got, want)
	}
	if res.Order != "year" {
		t.Errorf("Order = %q, want year", res.Order)
	}
}

func TestTopN_TwoPhaseTruncation(t *testing.T) {
	t.Parallel()

	// Score rises with the ID while the year falls, so sorting by year
	// before truncating would keep the wrong hundred.
	recs := make([]rec, 150)
	for i := range recs {
		recs[i] = rec{score: f(float64(i) / 20), year: f(float64(3000 - i))}
	}
	e := newTestEngine(t, 1, DefaultConfig(), recs...)

	byScore := e.TopN("", "score")
	if len(byScore) != 100 {
		t.Fatalf("TopN(score) len = %d, want 100", len(byScore))
	}
	if byScore[0].ID != 149 || byScore[99].ID != 50 {
		t.Errorf("TopN(score) = %d..%d, want 149..50", byScore[0].ID, byScore[99].ID)
	}

	byYear := e.TopN("", "year")
	if len(byYear) != 100 {
		t.Fatalf("TopN(year) len = %d, want 100", len(byYear))
	}
	if byYear[0].ID != 50 || byYear[99].ID != 149 {
		t.Errorf("TopN(year) = %d..%d, want 50..149", byYear[0].ID, byYear[99].ID)
	}
	for _, m := range byYear {
		if m.ID < 50 {
			t.Fatalf("TopN(year) contains %d, which is outside the top 100 by score", m.ID)
		}
	}
}

func TestTopN_MissingScoreLast(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 1, DefaultConfig(),
		rec{title: "none"},
		rec{title: "low", score: f(3)},
		rec{title: "high", score: f(9)},
		rec{title: "tie high", score: f(9)},
	)

	if got, want := ids(e.TopN("", "")), []int{2, 3, 1, 0}; !slices.Equal(got, want) {
		t.Errorf("TopN() ids = %v, want %v", got, want)
	}
}

func TestTopN_GenreFilter(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 1, DefaultConfig(),
		rec{title: "crime drama", genres: "Crime|Drama", score: f(8)},
		rec{title: "no genres", score: f(9)},
		rec{title: "comedy", genres: "Comedy", score: f(7)},
		rec{title: "scifi", genres: "Action|Sci-Fi", score: f(6)},
		rec{title: "lower drama", genres: "drama|Romance", score: f(5)},
	)

	tests := []struct {
		name  string
		genre string
		want  []int
	}{
		{"no filter keeps all", "", []int{1, 0, 2, 3, 4}},
		{"case insensitive", "DRAMA", []int{0, 4}},
		{"substring", "edy", []int{2}},
		{"literal hyphen", "sci-fi", []int{3}},
		{"regex metacharacters are literal", "sci.fi", nil},
		{"no match", "Western", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ids(e.TopN(tt.genre, "score"))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("TopN(%q) ids = %v, want %v", tt.genre, got, tt.want)
			}
		})
	}
}

func TestTopN_QueriesAreIndependent(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 1, DefaultConfig(),
		rec{title: "a", genres: "Drama", score: f(8), year: f(2001)},
		rec{title: "b", genres: "Comedy", score: f(9), year: f(1999)},
	)

	first := e.TopN("", "score")
	first[0].Title = "mutated"

	if second := e.TopN("", "score"); second[0].Title != "b" {
		t.Errorf("TopN() returned mutated record %q", second[0].Title)
	}

	// A filtered or reordered query does not affect the next unfiltered one.
	if got := ids(e.TopN("drama", "year")); !slices.Equal(got, []int{0}) {
		t.Errorf("TopN(drama, year) ids = %v, want [0]", got)
	}
	if got := ids(e.TopN("", "year")); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("TopN(\"\", year) ids = %v, want [0 1]", got)
	}
	if got := ids(e.TopN("", "score")); !slices.Equal(got, []int{1, 0}) {
		t.Errorf("TopN(\"\", score) ids = %v, want [1 0]", got)
	}
}

func TestNewEngine_UnusableConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want Config
	}{
		{"negative top n", Config{Threshold: 8, TopN: -1}, Config{Threshold: 8, TopN: 100}},
		{"zero top n", Config{Threshold: 8}, Config{Threshold: 8, TopN: 100}},
		{"nan threshold", Config{Threshold: math.NaN(), TopN: 2}, Config{Threshold: 7.5, TopN: 2}},
		{"infinite threshold", Config{Threshold: math.Inf(1), TopN: 2}, Config{Threshold: 7.5, TopN: 2}},
		{"valid", Config{Threshold: 6, TopN: 1}, Config{Threshold: 6, TopN: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newTestEngine(t, 1, tt.cfg,
				rec{title: "a", score: f(8)},
				rec{title: "b", score: f(9)},
			)
			if got := e.Config(); got != tt.want {
				t.Errorf("Config() = %+v, want %+v", got, tt.want)
			}
			// Must not panic on the truncation.
			if got := len(e.TopN("", "score")); got != min(2, tt.want.TopN) {
				t.Errorf("len(TopN()) = %d, want %d", got, min(2, tt.want.TopN))
			}
		})
	}
}

func TestClusters(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3, DefaultConfig(),
		rec{score: f(8), cluster: 0},
		rec{score: f(6), cluster: 0},
		rec{cluster: 0},
		rec{score: f(9), cluster: 1},
		rec{cluster: 2},
	)

	got := e.Clusters()
	if len(got) != 3 {
		t.Fatalf("Clusters() len = %d, want 3", len(got))
	}

	want := []ClusterSummary{
		{Cluster: 0, Size: 3, Qualifying: 1, MeanIMDBScore: OptionalFloat{Value: 7, Valid: true}},
		{Cluster: 1, Size: 1, Qualifying: 1, MeanIMDBScore: OptionalFloat{Value: 9, Valid: true}},
		{Cluster: 2, Size: 1},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Clusters()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
