package ops

import (
	"context"
	"testing"

	"github.com/Damoblinkz2/hnc-task-0/internal/config"
	"github.com/Damoblinkz2/hnc-task-0/internal/store"
)

// setupStore creates a JSON file store in a temp dir.
func setupStore(t *testing.T) store.Store {
	t.Helper()
	st, err := store.NewJSONFile(t.TempDir())
	if err != nil {
		t.Fatalf("store setup failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// seed creates records for each value, in order.
func seed(t *testing.T, st store.Store, values ...string) {
	t.Helper()
	cfg := config.DefaultConfig()
	for _, v := range values {
		if _, err := Create(context.Background(), st, cfg, CreateInput{Value: v}); err != nil {
			t.Fatalf("seed %q failed: %v", v, err)
		}
	}
}

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }
