package ops

import (
	"context"

	"github.com/Damoblinkz2/hnc-task-0/internal/analysis"
	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
	"github.com/Damoblinkz2/hnc-task-0/internal/store"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	Value string // exact match
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool   `json:"deleted"`
	Value   string `json:"value"`
}

// Delete removes a record by its exact string value. A missing value
// leaves the collection unchanged and signals not found.
func Delete(ctx context.Context, st store.Store, input DeleteInput) (*DeleteOutput, error) {
	err := st.Update(ctx, func(records []analysis.Record) ([]analysis.Record, error) {
		idx := findByValue(records, input.Value)
		if idx < 0 {
			return nil, errors.NewNotFound(input.Value)
		}
		return append(records[:idx:idx], records[idx+1:]...), nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteOutput{Deleted: true, Value: input.Value}, nil
}
