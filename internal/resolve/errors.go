// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package resolve

import "errors"

var (
	// ErrValidation matches every *Error of kind KindValidation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound matches every *Error of kind KindNotFound.
	ErrNotFound = errors.New("not found")
)

// ErrorKind classifies a resolution failure.
type ErrorKind int

const (
	// KindValidation means the request itself is unusable: an empty query,
	// a selection that is not an integer, or a selection outside the
	// candidate set.
	KindValidation ErrorKind = iota + 1

	// KindNotFound means no title matched the query.
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is a per-request resolution failure. Message is safe to show to clients.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrNotFound:
		return e.Kind == KindNotFound
	}
	return false
}

// Messages returned to clients.
const (
	MsgMovieRequired    = "parameter 'movie' is required"
	MsgSelectionNotInt  = "parameter 'selection' must be an integer"
	MsgInvalidSelection = "invalid selection"
	MsgNoMovieFound     = "no movie found"
	MsgSelectCandidate  = "Movie not found exactly. Select one of the options."
)

func validationError(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

func notFoundError(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }
