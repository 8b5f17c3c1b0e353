package ops

import (
	"context"
	"fmt"

	"github.com/Damoblinkz2/hnc-task-0/internal/analysis"
	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
	"github.com/Damoblinkz2/hnc-task-0/internal/filter"
	"github.com/Damoblinkz2/hnc-task-0/internal/store"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Criteria filter.Criteria // may be empty (no constraint)
}

// ListOutput contains the result of the List operation. The applied
// criteria are echoed back so callers can see how the request was
// interpreted.
type ListOutput struct {
	Data    []analysis.Record `json:"data"`
	Count   int               `json:"count"`
	Filters filter.Criteria   `json:"filters,omitempty"`
}

// List returns the collection filtered by the given criteria, preserving
// insertion order. Conflicting criteria are rejected before application.
func List(ctx context.Context, st store.Store, input ListInput) (*ListOutput, error) {
	if input.Criteria.Conflicts() {
		return nil, errors.NewConflictingCriteria(conflictMessage(input.Criteria))
	}

	records, err := st.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := filter.Apply(records, input.Criteria)
	if matched == nil {
		matched = []analysis.Record{}
	}

	return &ListOutput{
		Data:    matched,
		Count:   len(matched),
		Filters: input.Criteria,
	}, nil
}

// conflictMessage describes why criteria contradict each other.
func conflictMessage(c filter.Criteria) string {
	if c.MinLength != nil && c.MaxLength != nil && *c.MinLength > *c.MaxLength {
		return fmt.Sprintf("min_length %d exceeds max_length %d", *c.MinLength, *c.MaxLength)
	}
	return "conflicting filter criteria"
}
