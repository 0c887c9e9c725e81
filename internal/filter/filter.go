// Package filter derives the visible subset of a record collection from a
// filter configuration.
package filter

import "strings"

const (
	// SearchKey holds the free-text query.
	SearchKey = "search"
	// All is the wildcard value of a categorical filter.
	All = "all"
)

// Spec describes how one entity kind is filtered.
type Spec[T any] struct {
	// Search returns the fields matched by the free-text query.
	Search func(T) []string
	// Fields maps each categorical filter key to the record value it compares against.
	Fields map[string]func(T) string
}

// Defaults returns the initial configuration for spec: an empty search and
// every categorical key set to All.
func (s Spec[T]) Defaults() map[string]string {
	out := map[string]string{SearchKey: ""}
	for k := range s.Fields {
		out[k] = All
	}
	return out
}

// Apply returns the records matching every predicate in filters, in their
// original order. Keys unknown to spec, or absent from filters, do not
// constrain the result. records is never modified.
func Apply[T any](records []T, filters map[string]string, spec Spec[T]) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if Match(r, filters, spec) {
			out = append(out, r)
		}
	}
	return out
}

// Match reports whether r passes the search predicate and every categorical
// predicate.
func Match[T any](r T, filters map[string]string, spec Spec[T]) bool {
	if !matchSearch(r, filters[SearchKey], spec.Search) {
		return false
	}
	for key, field := range spec.Fields {
		want, ok := filters[key]
		if !ok || want == All {
			continue
		}
		if field(r) != want {
			return false
		}
	}
	return true
}

func matchSearch[T any](r T, query string, fields func(T) []string) bool {
	if query == "" || fields == nil {
		return true
	}
	needle := strings.ToLower(query)
	for _, f := range fields(r) {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
