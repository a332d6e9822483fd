// Package apperr defines the error shapes shared by all services: a
// per-field validation map (rendered inline next to each input) and plain
// sentinel errors for everything else.
package apperr

import (
	"errors"
	"sort"
	"strings"
)

// FieldErrors reports validation failures keyed by field name.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsFieldErrors extracts a FieldErrors from err, if present.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var f FieldErrors
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
