// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
)

// DuckDBSource loads the catalog through DuckDB.
//
// With Table set, Path is a DuckDB database file opened read-only and the
// records come from that table in rowid order. With Table empty, Path is a
// CSV file scanned by read_csv_auto in an in-memory database, which gives
// DuckDB's type sniffing instead of the strict parser in CSVSource.
type DuckDBSource struct {
	Path  string
	Table string
}

// NewDuckDBSource creates a DuckDBSource.
func NewDuckDBSource(path, table string) *DuckDBSource {
	return &DuckDBSource{Path: path, Table: table}
}

func (s *DuckDBSource) String() string {
	if s.Table != "" {
		return "duckdb:" + s.Path + "#" + s.Table
	}
	return "duckdb:read_csv_auto(" + s.Path + ")"
}

// Load runs the catalog query and maps NULLs to missing values.
func (s *DuckDBSource) Load(ctx context.Context) ([]Movie, error) {
	connStr := ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false"
	if s.Table != "" {
		connStr = s.Path + "?access_mode=READ_ONLY"
	}

	db, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("open duckdb %s: %w", s.Path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, s.query())
	if err != nil {
		return nil, fmt.Errorf("query catalog from %s: %w", s, err)
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		var title, director, genres sql.NullString
		var duration, budget, score, year, gross sql.NullFloat64
		if err := rows.Scan(&title, &duration, &budget, &score, &year, &gross, &director, &genres); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(movies)+1, err)
		}
		m := Movie{
			ID:        len(movies),
			Title:     title.String,
			Director:  optionalText(director.String),
			Genres:    optionalText(genres.String),
			Duration:  nullFloat(duration),
			Budget:    nullFloat(budget),
			IMDBScore: nullFloat(score),
			TitleYear: nullFloat(year),
			Gross:     nullFloat(gross),
		}
		if err := checkFinite(&m, len(movies)+1); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog rows: %w", err)
	}

	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}
	return movies, nil
}

// query builds the SELECT. Identifiers and the file path cannot be bound as
// parameters, so they are quoted here.
func (s *DuckDBSource) query() string {
	from := "read_csv_auto(" + quoteLiteral(s.Path) + ", header = true)"
	order := ""
	if s.Table != "" {
		from = quoteIdent(s.Table)
		order = " ORDER BY rowid"
	}

	return fmt.Sprintf(`SELECT
	CAST(%s AS VARCHAR),
	TRY_CAST(%s AS DOUBLE),
	TRY_CAST(%s AS DOUBLE),
	TRY_CAST(%s AS DOUBLE),
	TRY_CAST(%s AS DOUBLE),
	TRY_CAST(%s AS DOUBLE),
	CAST(%s AS VARCHAR),
	CAST(%s AS VARCHAR)
FROM %s%s`,
		quoteIdent(ColumnTitle),
		quoteIdent(ColumnDuration),
		quoteIdent(ColumnBudget),
		quoteIdent(ColumnIMDBScore),
		quoteIdent(ColumnTitleYear),
		quoteIdent(ColumnGross),
		quoteIdent(ColumnDirector),
		quoteIdent(ColumnGenres),
		from, order)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// nullFloat maps NULL and NaN to a missing value.
func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid || math.IsNaN(v.Float64) {
		return nil
	}
	return Float(v.Float64)
}
