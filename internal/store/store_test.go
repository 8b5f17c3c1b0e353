package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Damoblinkz2/hnc-task-0/internal/analysis"
	"github.com/Damoblinkz2/hnc-task-0/internal/config"
)

// backends returns one store of each backend, rooted in fresh temp dirs.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	jsonStore, err := NewJSONFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONFile failed: %v", err)
	}
	sqliteStore, err := NewSQLite(t.TempDir())
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() {
		jsonStore.Close()
		sqliteStore.Close()
	})

	return map[string]Store{"json": jsonStore, "sqlite": sqliteStore}
}

func testRecord(t *testing.T, value string) analysis.Record {
	t.Helper()
	rec, err := analysis.Analyze(value)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	return rec
}

func TestStore_EmptyOnFirstLoad(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			records, err := st.LoadAll(context.Background())
			if err != nil {
				t.Fatalf("LoadAll failed: %v", err)
			}
			if len(records) != 0 {
				t.Errorf("got %d records, want 0", len(records))
			}
		})
	}
}

func TestStore_UpdateRoundTrip(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := testRecord(t, "first")
			second := testRecord(t, "second")

			err := st.Update(ctx, func(records []analysis.Record) ([]analysis.Record, error) {
				return append(records, first, second), nil
			})
			if err != nil {
				t.Fatalf("Update failed: %v", err)
			}

			loaded, err := st.LoadAll(ctx)
			if err != nil {
				t.Fatalf("LoadAll failed: %v", err)
			}
			if len(loaded) != 2 {
				t.Fatalf("got %d records, want 2", len(loaded))
			}
			// Insertion order preserved
			if loaded[0].Value != "first" || loaded[1].Value != "second" {
				t.Errorf("order = [%s %s], want [first second]", loaded[0].Value, loaded[1].Value)
			}
			// Properties survive the round trip
			if loaded[0].Properties.ContentHash != first.Properties.ContentHash {
				t.Errorf("ContentHash = %q, want %q", loaded[0].Properties.ContentHash, first.Properties.ContentHash)
			}
			if loaded[0].Properties.CharacterFrequencyMap["f"] != 1 {
				t.Errorf("CharacterFrequencyMap = %v", loaded[0].Properties.CharacterFrequencyMap)
			}
		})
	}
}

func TestStore_UpdateErrorAbortsWrite(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			rec := testRecord(t, "keep")

			if err := st.Update(ctx, func(records []analysis.Record) ([]analysis.Record, error) {
				return append(records, rec), nil
			}); err != nil {
				t.Fatalf("seed Update failed: %v", err)
			}

			sentinel := os.ErrInvalid
			err := st.Update(ctx, func(records []analysis.Record) ([]analysis.Record, error) {
				return nil, sentinel
			})
			if err != sentinel {
				t.Fatalf("Update error = %v, want sentinel", err)
			}

			loaded, err := st.LoadAll(ctx)
			if err != nil {
				t.Fatalf("LoadAll failed: %v", err)
			}
			if len(loaded) != 1 || loaded[0].Value != "keep" {
				t.Errorf("collection changed after aborted update: %v", loaded)
			}
		})
	}
}

func TestStore_ConcurrentUpdatesDoNotLoseWrites(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			const writers = 10

			var wg sync.WaitGroup
			for i := 0; i < writers; i++ {
				wg.Add(1)
				go func(n int) {
					defer wg.Done()
					rec := analysis.Record{
						ID:         string(rune('a' + n)),
						Value:      string(rune('a' + n)),
						Properties: analysis.Derive(string(rune('a' + n))),
					}
					_ = st.Update(ctx, func(records []analysis.Record) ([]analysis.Record, error) {
						return append(records, rec), nil
					})
				}(i)
			}
			wg.Wait()

			loaded, err := st.LoadAll(ctx)
			if err != nil {
				t.Fatalf("LoadAll failed: %v", err)
			}
			if len(loaded) != writers {
				t.Errorf("got %d records, want %d (lost update)", len(loaded), writers)
			}
		})
	}
}

func TestJSONFile_CorruptFileLoadsAsEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	st, err := NewJSONFile(tmpDir)
	if err != nil {
		t.Fatalf("NewJSONFile failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "strings.json"), []byte("{corrupt"), 0600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	records, err := st.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll should recover corrupt state, got: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestJSONFile_DocumentIsSelfDescribing(t *testing.T) {
	tmpDir := t.TempDir()
	st, err := NewJSONFile(tmpDir)
	if err != nil {
		t.Fatalf("NewJSONFile failed: %v", err)
	}

	rec := testRecord(t, "hello")
	if err := st.Update(context.Background(), func(records []analysis.Record) ([]analysis.Record, error) {
		return append(records, rec), nil
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "strings.json"))
	if err != nil {
		t.Fatalf("read store file: %v", err)
	}
	for _, want := range []string{`"version"`, `"strings"`, `"content_hash"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("store document missing %s", want)
		}
	}
}

func TestOpen_BackendSelection(t *testing.T) {
	tests := []struct {
		backend string
		wantErr bool
	}{
		{backend: "json"},
		{backend: "sqlite"},
		{backend: ""},
		{backend: "postgres", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Backend = tt.backend
			st, err := Open(t.TempDir(), cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unknown backend")
				}
				return
			}
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			st.Close()
		})
	}
}
