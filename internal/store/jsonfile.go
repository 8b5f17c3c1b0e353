package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/Damoblinkz2/hnc-task-0/internal/analysis"
	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
)

// document is the persisted shape: a self-describing wrapper around the
// ordered record array.
type document struct {
	Version int               `json:"version"`
	Strings []analysis.Record `json:"strings"`
}

// JSONFile stores the collection as a single JSON document. A mutex
// serializes read-modify-write so concurrent updates never lose writes;
// saves go through a temp file plus rename so readers never see a
// partial document.
type JSONFile struct {
	path string
	mu   sync.RWMutex
}

// NewJSONFile creates a JSON file store at baseDir/strings.json.
func NewJSONFile(baseDir string) (*JSONFile, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, errors.NewPersistenceFailure(err)
	}
	return &JSONFile{path: filepath.Join(baseDir, "strings.json")}, nil
}

// LoadAll returns the persisted collection. A missing or corrupt file
// loads as an empty collection.
func (s *JSONFile) LoadAll(ctx context.Context) ([]analysis.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

// Update applies fn to the current snapshot and persists its result.
func (s *JSONFile) Update(ctx context.Context, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return s.save(updated)
}

// Close is a no-op for the file backend.
func (s *JSONFile) Close() error { return nil }

// load reads the document. Caller holds the lock.
func (s *JSONFile) load() ([]analysis.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []analysis.Record{}, nil
		}
		return nil, errors.NewPersistenceFailure(err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		// Corrupt previous state is recovered as empty, not surfaced
		return []analysis.Record{}, nil
	}
	if doc.Strings == nil {
		return []analysis.Record{}, nil
	}
	return doc.Strings, nil
}

// save writes the document atomically via temp file + rename.
// Caller holds the lock.
func (s *JSONFile) save(records []analysis.Record) error {
	data, err := json.MarshalIndent(document{Version: 1, Strings: records}, "", "  ")
	if err != nil {
		return errors.NewInternal(err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".strings-*.json")
	if err != nil {
		return errors.NewPersistenceFailure(err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewPersistenceFailure(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewPersistenceFailure(err)
	}
	_ = os.Chmod(tmpName, 0600)

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.NewPersistenceFailure(err)
	}
	return nil
}
