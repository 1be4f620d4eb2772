// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/moviematch/internal/validation"
)

// SuggestRequest represents the validated query parameters for /api/suggest.
//
// Fields:
//   - Query: the partially typed title (required)
//   - Limit: suggestions to return (1-50, default from config)
type SuggestRequest struct {
	Query string `query:"q" validate:"required"`
	Limit int    `query:"limit" validate:"min=1,max=50"`
}

// validateLength rejects query parameters longer than the configured
// maximum, counted in characters.
func (h *Handler) validateLength(name, value string) *validation.RequestValidationError {
	if h.config.MaxQueryLength <= 0 {
		return nil
	}
	return validation.ValidateVar(name, value, "max="+strconv.Itoa(h.config.MaxQueryLength))
}

// intParam parses an optional integer query parameter. An absent or blank
// parameter yields fallback. Values too large for int are clamped so that
// range validation reports them.
func intParam(r *http.Request, name string, fallback int) (int, *validation.RequestValidationError) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		if verr := validation.ValidateVar(name, raw, "number"); verr != nil {
			return 0, verr
		}
	}
	return n, nil
}
