// Package ops implements the service operations over the analyzed string
// collection. Each operation takes its dependencies explicitly and
// returns either a valid output or a structured service error; nothing
// is caught or retried here.
package ops

import (
	"github.com/Damoblinkz2/hnc-task-0/internal/analysis"
)

// findByValue returns the index of the record with the exact value, or -1.
func findByValue(records []analysis.Record, value string) int {
	for i, rec := range records {
		if rec.Value == value {
			return i
		}
	}
	return -1
}
