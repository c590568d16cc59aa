package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	kv, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, ok, err := kv.Get(ctx, "theme"); err != nil || ok {
		t.Fatalf("get on empty store = %t, %v", ok, err)
	}

	if err := kv.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "users", `[{"id":1}]`); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, ok, err := kv.Get(ctx, "theme")
	if err != nil || !ok || value != "dark" {
		t.Fatalf("get theme = %q, %t, %v", value, ok, err)
	}

	if err := kv.Delete(ctx, "theme"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "theme"); ok {
		t.Fatal("theme still present after delete")
	}
	// Deleting an absent key is a no-op.
	if err := kv.Delete(ctx, "theme"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestFileKVPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	first, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Set(ctx, "isLoggedIn", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}

	second, err := NewFileKV(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	value, ok, err := second.Get(ctx, "isLoggedIn")
	if err != nil || !ok || value != "true" {
		t.Fatalf("get after reopen = %q, %t, %v", value, ok, err)
	}
}

func TestFileKVRejectsCorruptState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := NewFileKV(path); err == nil {
		t.Fatal("expected error for corrupt state file")
	}
}

func TestMemoryKVKeys(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	if err := kv.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "b", "2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := len(kv.Keys()); got != 2 {
		t.Fatalf("keys = %d, want 2", got)
	}
}
