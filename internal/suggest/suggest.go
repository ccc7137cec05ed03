package suggest

import (
	"strings"

	"github.com/gravitrone/tagfield/internal/slug"
)

const createPrefix = `Create "`

// Candidates derives the suggestion list for a draft query against an option
// pool, excluding tags already selected. Membership and substring matching
// compare normalized forms; returned entries keep the pool's raw text. When
// the normalized query is non-empty and absent from both pool and selection,
// a synthetic creation entry is placed first.
func Candidates(query string, options, selected []string) []string {
	q := slug.Normalize(query)

	chosen := map[string]struct{}{}
	for _, s := range selected {
		chosen[slug.Normalize(s)] = struct{}{}
	}

	out := make([]string, 0, len(options)+1)
	exact := false
	for _, opt := range options {
		norm := slug.Normalize(opt)
		if norm == q {
			exact = true
		}
		if _, ok := chosen[norm]; ok {
			continue
		}
		if q != "" && !strings.Contains(norm, q) {
			continue
		}
		out = append(out, opt)
	}

	if q == "" || exact {
		return out
	}
	if _, ok := chosen[q]; ok {
		return out
	}
	return append([]string{CreateLabel(q)}, out...)
}

// CreateLabel wraps a query as the creation entry shown at the top of the
// menu.
func CreateLabel(query string) string {
	return createPrefix + query + `"`
}

// IsCreate reports whether a candidate is a creation entry.
func IsCreate(candidate string) bool {
	return strings.HasPrefix(candidate, createPrefix) && strings.HasSuffix(candidate, `"`)
}

// CreateValue unwraps the query from a creation entry. Other candidates pass
// through unchanged.
func CreateValue(candidate string) string {
	if !IsCreate(candidate) {
		return candidate
	}
	return strings.TrimSuffix(strings.TrimPrefix(candidate, createPrefix), `"`)
}
