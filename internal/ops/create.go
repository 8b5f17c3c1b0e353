package ops

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Damoblinkz2/hnc-task-0/internal/analysis"
	"github.com/Damoblinkz2/hnc-task-0/internal/config"
	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
	"github.com/Damoblinkz2/hnc-task-0/internal/store"
)

// CreateInput contains parameters for the Create operation.
type CreateInput struct {
	Value string // required, must be non-empty after trimming
}

// CreateOutput contains the result of the Create operation.
type CreateOutput struct {
	analysis.Record
}

// Create analyzes a string and appends it to the collection. The value
// must be unique across the collection by exact match.
func Create(ctx context.Context, st store.Store, cfg *config.Config, input CreateInput) (*CreateOutput, error) {
	if strings.TrimSpace(input.Value) == "" {
		return nil, errors.NewInvalidInput("value must be a non-empty string")
	}

	if cfg.MaxValueChars > 0 {
		if n := utf8.RuneCountInString(input.Value); n > cfg.MaxValueChars {
			return nil, errors.NewInvalidInput(fmt.Sprintf("value exceeds maximum length: %d chars (max %d)", n, cfg.MaxValueChars))
		}
	}

	rec, err := analysis.Analyze(input.Value)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	err = st.Update(ctx, func(records []analysis.Record) ([]analysis.Record, error) {
		if findByValue(records, input.Value) >= 0 {
			return nil, errors.NewDuplicateValue(input.Value)
		}
		return append(records, rec), nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateOutput{Record: rec}, nil
}
