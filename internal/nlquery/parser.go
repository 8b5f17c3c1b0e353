// Package nlquery translates a constrained natural-language query into
// filter criteria. It is a fixed phrase grammar, not a general NLP
// component: an ordered set of independent pattern-predicate rules.
package nlquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Damoblinkz2/hnc-task-0/internal/filter"
)

// rule pairs a phrase pattern with the criterion it sets. Rules are
// independent: each one that matches contributes its criterion, so
// phrases combine freely within a single query.
type rule struct {
	name    string
	pattern *regexp.Regexp
	apply   func(match []string, c *filter.Criteria)
}

// Patterns match against the lower-cased query, so letter captures come
// out lower-cased too.
var rules = []rule{
	{
		name:    "single_word",
		pattern: regexp.MustCompile(`\bsingle\s+word\b`),
		apply: func(_ []string, c *filter.Criteria) {
			one := 1
			c.WordCount = &one
		},
	},
	{
		name:    "palindromic",
		pattern: regexp.MustCompile(`\bpalindromic\b`),
		apply: func(_ []string, c *filter.Criteria) {
			yes := true
			c.IsPalindrome = &yes
		},
	},
	{
		name:    "longer_than",
		pattern: regexp.MustCompile(`\blonger\s+than\s+(\d+)\s+characters?\b`),
		apply: func(match []string, c *filter.Criteria) {
			if n, err := strconv.Atoi(match[1]); err == nil {
				min := n + 1
				c.MinLength = &min
			}
		},
	},
	{
		name:    "shorter_than",
		pattern: regexp.MustCompile(`\bshorter\s+than\s+(\d+)\s+characters?\b`),
		apply: func(match []string, c *filter.Criteria) {
			if n, err := strconv.Atoi(match[1]); err == nil {
				max := n - 1
				c.MaxLength = &max
			}
		},
	},
	{
		name:    "containing_letter",
		pattern: regexp.MustCompile(`\bcontaining\s+the\s+letter\s+(\p{L})`),
		apply: func(match []string, c *filter.Criteria) {
			letter := match[1]
			c.ContainsCharacter = &letter
		},
	},
	{
		name:    "first_vowel",
		pattern: regexp.MustCompile(`\bcontain\s+the\s+first\s+vowel\b`),
		apply: func(_ []string, c *filter.Criteria) {
			a := "a"
			c.ContainsCharacter = &a
		},
	},
}

// Parse matches the query against the phrase grammar and returns the
// combined criteria. Unmatched text contributes nothing. An empty result
// means no phrase matched; the caller must treat that as unparseable
// rather than an always-true filter.
func Parse(query string) filter.Criteria {
	lowered := strings.ToLower(query)

	var c filter.Criteria
	for _, r := range rules {
		if match := r.pattern.FindStringSubmatch(lowered); match != nil {
			r.apply(match, &c)
		}
	}
	return c
}
