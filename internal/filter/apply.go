package filter

import (
	"strings"

	"github.com/Damoblinkz2/hnc-task-0/internal/analysis"
)

// Apply filters records by the intersection of all present criteria.
// The filter is stable: matching records keep their original relative
// order. Empty criteria return the input unchanged. The input slice is
// never mutated.
func Apply(records []analysis.Record, c Criteria) []analysis.Record {
	if c.IsEmpty() {
		return records
	}

	matched := make([]analysis.Record, 0, len(records))
	for _, rec := range records {
		if Matches(rec, c) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Matches reports whether a single record satisfies every present criterion.
func Matches(rec analysis.Record, c Criteria) bool {
	p := rec.Properties

	if c.WordCount != nil && p.WordCount != *c.WordCount {
		return false
	}
	if c.IsPalindrome != nil && p.IsPalindrome != *c.IsPalindrome {
		return false
	}
	if c.MinLength != nil && p.Length < *c.MinLength {
		return false
	}
	if c.MaxLength != nil && p.Length > *c.MaxLength {
		return false
	}
	// Exact code-point containment, case-sensitive
	if c.ContainsCharacter != nil && !strings.Contains(rec.Value, *c.ContainsCharacter) {
		return false
	}
	return true
}
