package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/Damoblinkz2/hnc-task-0/internal/analysis"
	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
)

// currentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const currentSchemaVersion = 1

// SQLite stores the collection in a SQLite database. Insertion order is
// preserved through an explicit position column; the Update mutex gives
// the same single-writer discipline as the JSON backend.
type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLite initializes the SQLite store at baseDir/strings.db.
func NewSQLite(baseDir string) (*SQLite, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, errors.NewPersistenceFailure(err)
	}

	// Pragmas in the connection string apply to all connections
	dbPath := filepath.Join(baseDir, "strings.db")
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewPersistenceFailure(err)
	}

	if err := verifyWALMode(db); err != nil {
		db.Close()
		return nil, errors.NewPersistenceFailure(err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, errors.NewPersistenceFailure(err)
	}

	_ = os.Chmod(dbPath, 0600)

	return &SQLite{db: db}, nil
}

// migrate applies schema migrations based on user_version.
func migrate(db *sql.DB) error {
	version, err := getUserVersion(db)
	if err != nil {
		return err
	}

	// Migration 0 -> 1: Initial schema (v1)
	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS strings (
		  id             TEXT PRIMARY KEY,
		  value          TEXT NOT NULL UNIQUE,
		  length         INTEGER NOT NULL,
		  is_palindrome  INTEGER NOT NULL,
		  unique_chars   INTEGER NOT NULL,
		  word_count     INTEGER NOT NULL,
		  content_hash   TEXT NOT NULL,
		  char_freq_json TEXT NOT NULL,
		  created_at     INTEGER NOT NULL,
		  position       INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_strings_position ON strings(position);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err := setUserVersion(db, 1); err != nil {
			return err
		}
	}

	// Future migrations go here:
	// if version < 2 { ... }

	return nil
}

// verifyWALMode checks that WAL mode is active (set via connection string).
func verifyWALMode(db *sql.DB) error {
	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		return fmt.Errorf("failed to verify journal mode: %w", err)
	}
	if journalMode != "wal" {
		return fmt.Errorf("expected WAL mode, got %s", journalMode)
	}
	return nil
}

// getUserVersion returns the current schema version (user_version pragma).
func getUserVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get user_version: %w", err)
	}
	return version, nil
}

// setUserVersion sets the schema version (user_version pragma).
func setUserVersion(db *sql.DB, version int) error {
	_, err := db.Exec(fmt.Sprintf("PRAGMA user_version=%d", version))
	if err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}

// LoadAll returns all records in insertion order.
func (s *SQLite) LoadAll(ctx context.Context) ([]analysis.Record, error) {
	return loadAll(ctx, s.db)
}

// Update applies fn to the current snapshot and replaces the persisted
// collection in a single transaction.
func (s *SQLite) Update(ctx context.Context, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := loadAll(ctx, s.db)
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewPersistenceFailure(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM strings"); err != nil {
		return errors.NewPersistenceFailure(err)
	}

	insert := `
		INSERT INTO strings (
			id, value, length, is_palindrome, unique_chars,
			word_count, content_hash, char_freq_json, created_at, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i, rec := range updated {
		freqJSON, err := json.Marshal(rec.Properties.CharacterFrequencyMap)
		if err != nil {
			return errors.NewInternal(err)
		}
		_, err = tx.ExecContext(ctx, insert,
			rec.ID, rec.Value, rec.Properties.Length, boolToInt(rec.Properties.IsPalindrome),
			rec.Properties.UniqueCharacters, rec.Properties.WordCount,
			rec.Properties.ContentHash, string(freqJSON), rec.CreatedAt, i,
		)
		if err != nil {
			return errors.NewPersistenceFailure(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewPersistenceFailure(err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func loadAll(ctx context.Context, db *sql.DB) ([]analysis.Record, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, value, length, is_palindrome, unique_chars,
		       word_count, content_hash, char_freq_json, created_at
		FROM strings
		ORDER BY position
	`)
	if err != nil {
		return nil, errors.NewPersistenceFailure(err)
	}
	defer rows.Close()

	records := []analysis.Record{}
	for rows.Next() {
		var rec analysis.Record
		var palindrome int
		var freqJSON string
		err := rows.Scan(
			&rec.ID, &rec.Value, &rec.Properties.Length, &palindrome,
			&rec.Properties.UniqueCharacters, &rec.Properties.WordCount,
			&rec.Properties.ContentHash, &freqJSON, &rec.CreatedAt,
		)
		if err != nil {
			return nil, errors.NewPersistenceFailure(err)
		}
		rec.Properties.IsPalindrome = palindrome != 0
		if err := json.Unmarshal([]byte(freqJSON), &rec.Properties.CharacterFrequencyMap); err != nil {
			return nil, errors.NewPersistenceFailure(err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewPersistenceFailure(err)
	}
	return records, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
