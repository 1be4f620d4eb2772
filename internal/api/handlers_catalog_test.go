// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"net/http"
	"testing"

	"github.com/tomtom215/moviematch/internal/resolve"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	router := setupTestRouter(t)

	rec := doGet(t, router, "/api/suggest?q=INC")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["query"] != "INC" {
		t.Errorf("query = %v, want INC", body["query"])
	}

	// Both Inception titles start with the query; Titanic contains i, n, c in order.
	suggestions := body["suggestions"].([]any)
	if len(suggestions) != 3 {
		t.Fatalf("got %d suggestions, want 3: %v", len(suggestions), suggestions)
	}
	first := suggestions[0].(map[string]any)
	if first["id"] != float64(1) || first["title_year"] != float64(2010) || first["source"] != resolve.SourcePrefix {
		t.Errorf("first suggestion = %v", first)
	}
	third := suggestions[2].(map[string]any)
	if third["id"] != float64(5) || third["source"] != resolve.SourceFuzzy {
		t.Errorf("third suggestion = %v", third)
	}

	rec = doGet(t, router, "/api/suggest?q=inc&limit=1")
	if got := decodeBody(t, rec)["suggestions"].([]any); len(got) != 1 {
		t.Errorf("limit=1 returned %d suggestions", len(got))
	}
}

func TestSuggest_NoMatchIsEmptyList(t *testing.T) {
	t.Parallel()

	rec := doGet(t, setupTestRouter(t), "/api/suggest?q=qqqqqqqq")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decodeBody(t, rec)["suggestions"].([]any); len(got) != 0 {
		t.Errorf("suggestions = %v, want []", got)
	}
}

func TestSuggest_Validation(t *testing.T) {
	t.Parallel()

	router := setupTestRouter(t)

	tests := []struct {
		name      string
		target    string
		wantError string
	}{
		{"missing q", "/api/suggest", "parameter 'q' is required"},
		{"blank q", "/api/suggest?q=%20", "parameter 'q' is required"},
		{"non-integer limit", "/api/suggest?q=inc&limit=ten", "parameter 'limit' must be an integer"},
		{"fractional limit", "/api/suggest?q=inc&limit=2.5", "parameter 'limit' must be an integer"},
		{"zero limit", "/api/suggest?q=inc&limit=0", "parameter 'limit' must be at least 1"},
		{"negative limit", "/api/suggest?q=inc&limit=-3", "parameter 'limit' must be at least 1"},
		{"limit too large", "/api/suggest?q=inc&limit=51", "parameter 'limit' must be at most 50"},
		{"limit overflow", "/api/suggest?q=inc&limit=99999999999999999999999", "parameter 'limit' must be at most 50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := doGet(t, router, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
			}
			if got := decodeBody(t, rec)["error"]; got != tt.wantError {
				t.Errorf("error = %v, want %q", got, tt.wantError)
			}
		})
	}
}

func TestMovie(t *testing.T) {
	t.Parallel()

	router := setupTestRouter(t)

	rec := doGet(t, router, "/api/movies/3")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["id"] != float64(3) || body["cluster"] != float64(1) || body["movie_title"] != "Interstellar" {
		t.Errorf("body = %v", body)
	}
	if body["budget"] != "N/D" {
		t.Errorf("budget = %v, want N/D", body["budget"])
	}

	tests := []struct {
		target     string
		wantStatus int
	}{
		{"/api/movies/99", http.StatusNotFound},
		{"/api/movies/-1", http.StatusNotFound},
		{"/api/movies/abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		if rec := doGet(t, router, tt.target); rec.Code != tt.wantStatus {
			t.Errorf("GET %s status = %d, want %d", tt.target, rec.Code, tt.wantStatus)
		}
	}
}

func TestClusters(t *testing.T) {
	t.Parallel()

	rec := doGet(t, setupTestRouter(t), "/api/clusters")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["k"] != float64(2) {
		t.Errorf("k = %v, want 2", body["k"])
	}

	clusters := body["clusters"].([]any)
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(clusters))
	}

	want := []struct{ size, qualifying float64 }{{3, 2}, {4, 3}}
	for i, c := range clusters {
		summary := c.(map[string]any)
		if summary["cluster"] != float64(i) || summary["size"] != want[i].size || summary["qualifying"] != want[i].qualifying {
			t.Errorf("cluster %d = %v", i, summary)
		}
	}
}
