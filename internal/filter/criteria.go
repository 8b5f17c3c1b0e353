package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
)

// Criteria is a sparse set of optional filter predicates over analyzed
// string properties. A nil field means "no constraint". Criteria are
// transient: built per request, never persisted.
type Criteria struct {
	WordCount         *int    `json:"word_count,omitempty"`
	IsPalindrome      *bool   `json:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty"` // exactly one code point
}

// IsEmpty reports whether no predicate is set.
func (c Criteria) IsEmpty() bool {
	return c.WordCount == nil && c.IsPalindrome == nil &&
		c.MinLength == nil && c.MaxLength == nil && c.ContainsCharacter == nil
}

// Conflicts reports whether the criteria are semantically contradictory.
// Currently the only rule is min_length > max_length; more rules slot in
// here as criteria grow.
func (c Criteria) Conflicts() bool {
	if c.MinLength != nil && c.MaxLength != nil && *c.MinLength > *c.MaxLength {
		return true
	}
	return false
}

// paramNames lists the recognized structured query parameter names.
var paramNames = []string{"is_palindrome", "min_length", "max_length", "word_count", "contains_character"}

// FromQueryParams builds Criteria from structured query parameters.
//
// A request carrying parameters where none is recognized is rejected.
// A mix of recognized and unknown names is accepted, unknown names
// ignored (matches the source's permissive validation).
func FromQueryParams(values url.Values) (Criteria, error) {
	var c Criteria

	if raw := values.Get("is_palindrome"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Criteria{}, errors.NewInvalidInput(fmt.Sprintf("is_palindrome must be a boolean, got %q", raw))
		}
		c.IsPalindrome = &b
	}

	for _, name := range []string{"min_length", "max_length", "word_count"} {
		raw := values.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Criteria{}, errors.NewInvalidInput(fmt.Sprintf("%s must be an integer, got %q", name, raw))
		}
		switch name {
		case "min_length":
			c.MinLength = &n
		case "max_length":
			c.MaxLength = &n
		case "word_count":
			c.WordCount = &n
		}
	}

	if raw := values.Get("contains_character"); raw != "" {
		if utf8.RuneCountInString(raw) != 1 {
			return Criteria{}, errors.NewInvalidInput(fmt.Sprintf("contains_character must be a single character, got %q", raw))
		}
		c.ContainsCharacter = &raw
	}

	if len(values) > 0 && !anyRecognized(values) {
		return Criteria{}, errors.NewInvalidInput("no recognized filter parameters; expected one of: is_palindrome, min_length, max_length, word_count, contains_character")
	}

	return c, nil
}

// anyRecognized reports whether at least one recognized parameter name is present.
func anyRecognized(values url.Values) bool {
	for _, name := range paramNames {
		if values.Has(name) {
			return true
		}
	}
	return false
}
