package ops

import (
	"context"

	"github.com/Damoblinkz2/hnc-task-0/internal/analysis"
	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
	"github.com/Damoblinkz2/hnc-task-0/internal/store"
)

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	Value string // exact match
}

// FetchOutput contains the result of the Fetch operation.
type FetchOutput struct {
	analysis.Record
}

// Fetch retrieves a record by its exact string value.
func Fetch(ctx context.Context, st store.Store, input FetchInput) (*FetchOutput, error) {
	records, err := st.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := findByValue(records, input.Value)
	if idx < 0 {
		return nil, errors.NewNotFound(input.Value)
	}

	return &FetchOutput{Record: records[idx]}, nil
}
