package ops

import (
	"context"
	"strings"
	"testing"

	"github.com/Damoblinkz2/hnc-task-0/internal/config"
	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
)

func TestCreate(t *testing.T) {
	st := setupStore(t)
	cfg := config.DefaultConfig()

	out, err := Create(context.Background(), st, cfg, CreateInput{Value: "A man, a plan, a canal: Panama"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if out.ID == "" {
		t.Error("ID should be assigned")
	}
	if out.Value != "A man, a plan, a canal: Panama" {
		t.Errorf("Value = %q", out.Value)
	}
	if !out.Properties.IsPalindrome {
		t.Error("expected palindrome")
	}
	if out.Properties.WordCount != 7 {
		t.Errorf("WordCount = %d, want 7", out.Properties.WordCount)
	}
	if out.CreatedAt == 0 {
		t.Error("CreatedAt should be set")
	}

	// Persisted
	records, err := st.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestCreate_EmptyValue(t *testing.T) {
	st := setupStore(t)
	cfg := config.DefaultConfig()

	for _, value := range []string{"", "   ", "\t\n"} {
		_, err := Create(context.Background(), st, cfg, CreateInput{Value: value})
		if !errors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("Create(%q) error = %v, want INVALID_INPUT", value, err)
		}
	}
}

func TestCreate_DuplicateValueRejected(t *testing.T) {
	st := setupStore(t)
	cfg := config.DefaultConfig()
	seed(t, st, "hello")

	_, err := Create(context.Background(), st, cfg, CreateInput{Value: "hello"})
	if !errors.Is(err, errors.ErrDuplicateValue) {
		t.Fatalf("error = %v, want DUPLICATE_VALUE", err)
	}

	// Collection unchanged
	records, err := st.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}

func TestCreate_ValueTooLong(t *testing.T) {
	st := setupStore(t)
	cfg := config.DefaultConfig()
	cfg.MaxValueChars = 10

	_, err := Create(context.Background(), st, cfg, CreateInput{Value: strings.Repeat("x", 11)})
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestCreate_NearDuplicatesAccepted(t *testing.T) {
	st := setupStore(t)
	cfg := config.DefaultConfig()
	seed(t, st, "hello")

	// Exact match only: case and whitespace variants are distinct values
	for _, value := range []string{"Hello", "hello ", " hello"} {
		if _, err := Create(context.Background(), st, cfg, CreateInput{Value: value}); err != nil {
			t.Errorf("Create(%q) failed: %v", value, err)
		}
	}
}
