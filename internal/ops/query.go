package ops

import (
	"context"
	"strings"

	"github.com/Damoblinkz2/hnc-task-0/internal/analysis"
	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
	"github.com/Damoblinkz2/hnc-task-0/internal/filter"
	"github.com/Damoblinkz2/hnc-task-0/internal/nlquery"
	"github.com/Damoblinkz2/hnc-task-0/internal/store"
)

// QueryInput contains parameters for the Query operation.
type QueryInput struct {
	Query string // natural-language filter query, required
}

// QueryOutput contains the result of the Query operation, echoing the
// original query and the criteria it parsed into.
type QueryOutput struct {
	Query  string            `json:"query"`
	Parsed filter.Criteria   `json:"parsed_filters"`
	Data   []analysis.Record `json:"data"`
	Count  int               `json:"count"`
}

// Query filters the collection by a natural-language query. A query that
// matches no recognized phrase is unparseable; the parser cannot tell
// "matched nothing" from "matched an always-true filter", so an empty
// parse is rejected rather than returning everything.
func Query(ctx context.Context, st store.Store, input QueryInput) (*QueryOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, errors.NewInvalidInput("query is required")
	}

	criteria := nlquery.Parse(input.Query)
	if criteria.IsEmpty() {
		return nil, errors.NewUnparseableQuery(input.Query)
	}
	if criteria.Conflicts() {
		return nil, errors.NewConflictingCriteria(conflictMessage(criteria))
	}

	records, err := st.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := filter.Apply(records, criteria)
	if matched == nil {
		matched = []analysis.Record{}
	}

	return &QueryOutput{
		Query:  input.Query,
		Parsed: criteria,
		Data:   matched,
		Count:  len(matched),
	}, nil
}
