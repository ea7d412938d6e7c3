package store

import (
	"context"
	"errors"
	"testing"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:", nil)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestSQLiteStoreStats(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()

	stats, err := store.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	want := DefaultFixtures().Stats
	if *stats != want {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestSQLiteStoreRunMatchesMemory(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	defer store.Close()
	mem := NewMemoryStore(nil)

	got, err := store.GetRun(ctx, DefaultActiveRunID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	want, _ := mem.GetRun(ctx, DefaultActiveRunID)

	if got.ID != want.ID || got.Status != want.Status || got.Progress != want.Progress || got.SLAMinutes != want.SLAMinutes {
		t.Fatalf("run mismatch: got %+v want %+v", got, want)
	}
	if !got.StartedAt.Equal(want.StartedAt) || !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Fatalf("timestamp mismatch: got %v/%v want %v/%v", got.StartedAt, got.UpdatedAt, want.StartedAt, want.UpdatedAt)
	}
	if len(got.Workers) != len(want.Workers) {
		t.Fatalf("expected %d workers, got %d", len(want.Workers), len(got.Workers))
	}
	for i := range want.Workers {
		g, w := got.Workers[i], want.Workers[i]
		if g.ID != w.ID || g.Label != w.Label || g.Status != w.Status || g.ETA != w.ETA {
			t.Fatalf("worker %d mismatch: got %+v want %+v", i, g, w)
		}
		if (g.Progress == nil) != (w.Progress == nil) {
			t.Fatalf("worker %d progress presence mismatch", i)
		}
		if g.Progress != nil && *g.Progress != *w.Progress {
			t.Fatalf("worker %d progress: got %v want %v", i, *g.Progress, *w.Progress)
		}
	}
}

func TestSQLiteStoreRunNotFound(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	_, err := store.GetRun(context.Background(), "run-0000")
	if !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
}

func TestSQLiteStoreConsistency(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	if err := CheckConsistency(context.Background(), store); err != nil {
		t.Fatalf("CheckConsistency failed: %v", err)
	}
}
