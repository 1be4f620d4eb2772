// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVSource reads the catalog from a movie_metadata.csv style file.
// Columns are located by header name, so extra columns and any column
// order are accepted.
type CSVSource struct {
	Path string
}

// NewCSVSource creates a CSVSource for path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) String() string { return "csv:" + s.Path }

// Load opens the file and parses every row.
func (s *CSVSource) Load(ctx context.Context) ([]Movie, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", s.Path, err)
	}
	defer f.Close()

	movies, err := ReadCSV(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.Path, err)
	}
	return movies, nil
}

// ReadCSV parses catalog rows from r. The first row must be the header.
func ReadCSV(ctx context.Context, r io.Reader) ([]Movie, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyCatalog
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var movies []Movie
	for row := 1; ; row++ {
		if row%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}

		m, err := movieFromRecord(record, index, row, len(movies))
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}

	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}
	return movies, nil
}

func movieFromRecord(record []string, index map[string]int, row, id int) (Movie, error) {
	cell := func(col string) string { return record[index[col]] }

	m := Movie{
		ID:       id,
		Title:    cell(ColumnTitle),
		Director: optionalText(cell(ColumnDirector)),
		Genres:   optionalText(cell(ColumnGenres)),
	}

	numeric := []struct {
		col string
		dst **float64
	}{
		{ColumnDuration, &m.Duration},
		{ColumnBudget, &m.Budget},
		{ColumnIMDBScore, &m.IMDBScore},
		{ColumnTitleYear, &m.TitleYear},
		{ColumnGross, &m.Gross},
	}
	for _, n := range numeric {
		v, err := parseOptionalFloat(cell(n.col))
		if err != nil {
			return Movie{}, &ParseError{Row: row, Column: n.col, Value: cell(n.col), Err: err}
		}
		*n.dst = v
	}

	return m, nil
}
