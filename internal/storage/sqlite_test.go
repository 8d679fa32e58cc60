//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreLandscapeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "fitscape.db"))
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer store.Close()

	input := testRecord("ls-1", "2026-08-01T00:00:00Z", 1)
	if err := store.SaveLandscape(ctx, input); err != nil {
		t.Fatalf("save: %v", err)
	}

	output, ok, err := store.GetLandscape(ctx, "ls-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected landscape to exist")
	}
	if output.ID != input.ID || output.Seed != input.Seed || len(output.Terms) != 1 {
		t.Fatalf("round trip mismatch: %+v", output)
	}

	// Upsert keeps a single row per ID.
	input.Seed = 99
	if err := store.SaveLandscape(ctx, input); err != nil {
		t.Fatalf("resave: %v", err)
	}
	listed, err := store.ListLandscapes(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].Seed != 99 {
		t.Fatalf("upsert mismatch: %+v", listed)
	}
}

func TestSQLiteStoreListAndReset(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "fitscape.db"))
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer store.Close()

	for _, record := range []struct {
		id string
		at string
	}{
		{"ls-a", "2026-08-01T00:00:00Z"},
		{"ls-b", "2026-08-03T00:00:00Z"},
		{"ls-c", "2026-08-02T00:00:00Z"},
	} {
		if err := store.SaveLandscape(ctx, testRecord(record.id, record.at, 0)); err != nil {
			t.Fatalf("save %s: %v", record.id, err)
		}
	}

	listed, err := store.ListLandscapes(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 || listed[0].ID != "ls-b" || listed[1].ID != "ls-c" {
		t.Fatalf("order mismatch: %+v", listed)
	}

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	listed, err = store.ListLandscapes(ctx, 0)
	if err != nil {
		t.Fatalf("list after reset: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty store, got %d records", len(listed))
	}
}
