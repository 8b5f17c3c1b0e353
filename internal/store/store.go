// Package store provides the persistence collaborator for analyzed string
// records. Backends hold an ordered collection keyed by unique value; the
// core always sees a consistent snapshot and hands back the full
// collection for a single write.
package store

import (
	"context"

	"github.com/Damoblinkz2/hnc-task-0/internal/analysis"
	"github.com/Damoblinkz2/hnc-task-0/internal/config"
	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
)

// UpdateFunc receives the current snapshot and returns the collection to
// persist. Returning an error aborts the update without writing.
type UpdateFunc func(records []analysis.Record) ([]analysis.Record, error)

// Store is the narrow persistence contract used by the operations layer.
type Store interface {
	// LoadAll returns the full ordered collection. A store with no prior
	// data returns an empty collection, never an error.
	LoadAll(ctx context.Context) ([]analysis.Record, error)

	// Update runs a serialized read-modify-write: fn sees a consistent
	// snapshot and its result replaces the persisted collection
	// atomically. Concurrent updates never interleave.
	Update(ctx context.Context, fn UpdateFunc) error

	// Close releases backend resources.
	Close() error
}

// Open creates the store selected by cfg.Backend, rooted at baseDir.
func Open(baseDir string, cfg *config.Config) (Store, error) {
	switch cfg.Backend {
	case "", config.BackendJSON:
		return NewJSONFile(baseDir)
	case config.BackendSQLite:
		return NewSQLite(baseDir)
	default:
		return nil, errors.NewInvalidInput("backend must be one of: json, sqlite")
	}
}
