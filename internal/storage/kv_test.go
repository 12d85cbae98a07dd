package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/clipforge/clipforge/internal/db"
)

func setupTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	tmpDir := t.TempDir()

	database, err := db.New(filepath.Join(tmpDir, "test.db"), nil)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	return NewSQLiteKV(database.Conn())
}

func TestSQLiteKV_RoundTrip(t *testing.T) {
	kv := setupTestKV(t)
	ctx := context.Background()

	if err := kv.Store(ctx, "history", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	got, err := kv.Load(ctx, "history")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != `[{"id":"a"}]` {
		t.Errorf("Load() = %q, want %q", got, `[{"id":"a"}]`)
	}
}

func TestSQLiteKV_LoadAbsent(t *testing.T) {
	kv := setupTestKV(t)

	got, err := kv.Load(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Errorf("Load() = %q, want nil for absent key", got)
	}
}

func TestSQLiteKV_StoreOverwrites(t *testing.T) {
	kv := setupTestKV(t)
	ctx := context.Background()

	if err := kv.Store(ctx, "k", []byte("old")); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if err := kv.Store(ctx, "k", []byte("new")); err != nil {
		t.Fatalf("Store() overwrite error = %v", err)
	}

	got, err := kv.Load(ctx, "k")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != "new" {
		t.Errorf("Load() = %q, want %q", got, "new")
	}
}

func TestSQLiteKV_Remove(t *testing.T) {
	kv := setupTestKV(t)
	ctx := context.Background()

	if err := kv.Store(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if err := kv.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := kv.Remove(ctx, "k"); err != nil {
		t.Fatalf("Remove() of absent key error = %v", err)
	}

	got, err := kv.Load(ctx, "k")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Errorf("Load() after Remove() = %q, want nil", got)
	}
}

func TestMemoryKV_RoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	if err := kv.Store(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	got, err := kv.Load(ctx, "k")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Load() = %q, want %q", got, "v")
	}

	// Mutating the returned slice must not affect the stored value.
	got[0] = 'x'
	again, _ := kv.Load(ctx, "k")
	if string(again) != "v" {
		t.Errorf("stored value mutated through returned slice: %q", again)
	}
}
