package filter

import (
	"testing"

	"github.com/Damoblinkz2/hnc-task-0/internal/analysis"
)

func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

// recordFor builds a record with properties derived from the value.
func recordFor(value string) analysis.Record {
	return analysis.Record{
		ID:         "test-" + value,
		Value:      value,
		Properties: analysis.Derive(value),
	}
}

func values(records []analysis.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Value
	}
	return out
}

func TestApply_LengthIntersection(t *testing.T) {
	// Lengths 3, 5, 7, 9
	records := []analysis.Record{
		recordFor("abc"),
		recordFor("abcde"),
		recordFor("abcdefg"),
		recordFor("abcdefghi"),
	}

	got := Apply(records, Criteria{MinLength: intPtr(5), MaxLength: intPtr(7)})

	if len(got) != 2 {
		t.Fatalf("got %d records, want 2: %v", len(got), values(got))
	}
	if got[0].Value != "abcde" || got[1].Value != "abcdefg" {
		t.Errorf("order not preserved: %v", values(got))
	}
}

func TestApply_EmptyCriteriaIsIdentity(t *testing.T) {
	records := []analysis.Record{recordFor("one"), recordFor("two"), recordFor("three")}

	got := Apply(records, Criteria{})

	if len(got) != len(records) {
		t.Fatalf("got %d records, want %d", len(got), len(records))
	}
	for i := range records {
		if got[i].Value != records[i].Value {
			t.Errorf("record %d = %q, want %q", i, got[i].Value, records[i].Value)
		}
	}
}

func TestApply_CombinedPredicates(t *testing.T) {
	records := []analysis.Record{
		recordFor("racecar"),
		recordFor("race car"),
		recordFor("level"),
		recordFor("hello"),
	}

	// Single-word palindromes only
	got := Apply(records, Criteria{WordCount: intPtr(1), IsPalindrome: boolPtr(true)})

	if len(got) != 2 {
		t.Fatalf("got %v, want [racecar level]", values(got))
	}
	if got[0].Value != "racecar" || got[1].Value != "level" {
		t.Errorf("got %v, want [racecar level]", values(got))
	}
}

func TestApply_ContainsCharacter(t *testing.T) {
	records := []analysis.Record{
		recordFor("apple"),
		recordFor("Apple"),
		recordFor("berry"),
	}

	got := Apply(records, Criteria{ContainsCharacter: strPtr("a")})

	// Case-sensitive: "Apple" contains 'A', not 'a'
	if len(got) != 1 || got[0].Value != "apple" {
		t.Errorf("got %v, want [apple]", values(got))
	}
}

func TestApply_NoMatches(t *testing.T) {
	records := []analysis.Record{recordFor("ab"), recordFor("cd")}

	got := Apply(records, Criteria{MinLength: intPtr(100)})

	if len(got) != 0 {
		t.Errorf("got %v, want empty", values(got))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	records := []analysis.Record{recordFor("abc"), recordFor("abcdef")}

	_ = Apply(records, Criteria{MinLength: intPtr(5)})

	if records[0].Value != "abc" || records[1].Value != "abcdef" {
		t.Errorf("input mutated: %v", values(records))
	}
}

func TestMatches_Palindrome(t *testing.T) {
	rec := recordFor("A man, a plan, a canal: Panama")

	if !Matches(rec, Criteria{IsPalindrome: boolPtr(true)}) {
		t.Error("should match is_palindrome=true")
	}
	if Matches(rec, Criteria{IsPalindrome: boolPtr(false)}) {
		t.Error("should not match is_palindrome=false")
	}
}
