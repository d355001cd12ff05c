// Package apperr declares the error kinds shared by every handler and the
// HTTP status each of them maps to.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrNotFound        = errors.New("not found")
	ErrInternal        = errors.New("internal error")
)

// Kind is the resolved classification of an error.
type Kind struct {
	Status int
	Code   string
}

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrUnauthenticated, Kind{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED"}},
	{ErrForbidden, Kind{Status: http.StatusForbidden, Code: "FORBIDDEN"}},
	{ErrInvalidRequest, Kind{Status: http.StatusBadRequest, Code: "VALIDATION_ERROR"}},
	{ErrNotFound, Kind{Status: http.StatusNotFound, Code: "NOT_FOUND"}},
}

var internal = Kind{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR"}

// Classify returns the kind err wraps. Anything unrecognised is internal.
func Classify(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return internal
}

// IsInternal reports whether err would be surfaced as a 500.
func IsInternal(err error) bool {
	return Classify(err).Status == http.StatusInternalServerError
}
