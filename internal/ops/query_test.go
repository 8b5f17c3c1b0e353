package ops

import (
	"context"
	"testing"

	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
)

func TestQuery(t *testing.T) {
	st := setupStore(t)
	seed(t, st, "racecar", "race car", "hello", "level")

	out, err := Query(context.Background(), st, QueryInput{Query: "all single word palindromic strings"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if out.Count != 2 {
		t.Fatalf("Count = %d, want 2", out.Count)
	}
	if out.Data[0].Value != "racecar" || out.Data[1].Value != "level" {
		t.Errorf("got %q and %q, want racecar and level", out.Data[0].Value, out.Data[1].Value)
	}
	if out.Parsed.WordCount == nil || *out.Parsed.WordCount != 1 {
		t.Errorf("Parsed.WordCount = %v, want 1", out.Parsed.WordCount)
	}
	if out.Query != "all single word palindromic strings" {
		t.Errorf("Query echo = %q", out.Query)
	}
}

func TestQuery_LongerThan(t *testing.T) {
	st := setupStore(t)
	seed(t, st, "ab", "abcdef", "abcdefgh")

	out, err := Query(context.Background(), st, QueryInput{Query: "strings longer than 5 characters"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
	if out.Parsed.MinLength == nil || *out.Parsed.MinLength != 6 {
		t.Errorf("Parsed.MinLength = %v, want 6", out.Parsed.MinLength)
	}
}

func TestQuery_Unparseable(t *testing.T) {
	st := setupStore(t)
	seed(t, st, "hello")

	_, err := Query(context.Background(), st, QueryInput{Query: "banana"})
	if !errors.Is(err, errors.ErrUnparseableQuery) {
		t.Errorf("error = %v, want UNPARSEABLE_QUERY", err)
	}
}

func TestQuery_EmptyQuery(t *testing.T) {
	st := setupStore(t)

	_, err := Query(context.Background(), st, QueryInput{Query: "  "})
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestQuery_ConflictingPhrases(t *testing.T) {
	st := setupStore(t)
	seed(t, st, "hello")

	_, err := Query(context.Background(), st, QueryInput{
		Query: "strings longer than 10 characters shorter than 5 characters",
	})
	if !errors.Is(err, errors.ErrConflictingCriteria) {
		t.Errorf("error = %v, want CONFLICTING_CRITERIA", err)
	}
}

func TestQuery_FirstVowel(t *testing.T) {
	st := setupStore(t)
	seed(t, st, "apple", "berry")

	out, err := Query(context.Background(), st, QueryInput{Query: "strings that contain the first vowel"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if out.Count != 1 || out.Data[0].Value != "apple" {
		t.Errorf("got %d results, want only apple", out.Count)
	}
}
