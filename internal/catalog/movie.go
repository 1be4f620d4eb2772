// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package catalog holds the movie catalog: the record type, the immutable
// Store that query handlers read from, and the Sources that load raw records
// at startup.
//
// # Lifecycle
//
// A Source produces []Movie with IDs equal to their load position. The
// bootstrap phase derives cluster labels from those records and hands both
// to NewStore, which is the only way to obtain a Store. A Store therefore
// always carries one label per record and never changes afterwards, so it can
// be shared by concurrent requests without locking.
//
// # Missing values
//
// Numeric fields are pointers; nil means the cell was empty in the input.
// Director and Genres use the empty string for missing.
package catalog

// Feature identifies one of the numeric attributes used for clustering.
type Feature int

// Numeric features in the fixed order used by feature vectors.
const (
	Duration Feature = iota
	Budget
	IMDBScore
	TitleYear
	Gross
)

// NumFeatures is the length of a feature vector.
const NumFeatures = 5

// Features lists every numeric feature in vector order.
var Features = [NumFeatures]Feature{Duration, Budget, IMDBScore, TitleYear, Gross}

var featureNames = [NumFeatures]string{"duration", "budget", "imdb_score", "title_year", "gross"}

// String returns the column name of the feature.
func (f Feature) String() string {
	if f < 0 || int(f) >= NumFeatures {
		return "unknown"
	}
	return featureNames[f]
}

// Movie is one catalog record.
type Movie struct {
	// ID is the 0-based load position. It is stable for the life of the
	// process and is the token clients send back to pick a candidate.
	ID int

	Title    string
	Director string
	Genres   string

	Duration  *float64
	Budget    *float64
	IMDBScore *float64
	TitleYear *float64
	Gross     *float64

	// Cluster is assigned by NewStore and never changes afterwards.
	Cluster int
}

// Value returns the raw value of a numeric feature and whether it is present.
func (m *Movie) Value(f Feature) (float64, bool) {
	var p *float64
	switch f {
	case Duration:
		p = m.Duration
	case Budget:
		p = m.Budget
	case IMDBScore:
		p = m.IMDBScore
	case TitleYear:
		p = m.TitleYear
	case Gross:
		p = m.Gross
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// HasDirector reports whether the director is known.
func (m *Movie) HasDirector() bool { return m.Director != "" }

// HasGenres reports whether the genre text is known.
func (m *Movie) HasGenres() bool { return m.Genres != "" }

// Float returns a pointer to v. It is a convenience for building records.
func Float(v float64) *float64 { return &v }
