package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStore_StoreAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	ref, err := store.Store(context.Background(), "selfie.PNG", []byte("img"))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !strings.HasSuffix(ref, ".png") {
		t.Fatalf("extension must survive in lowercase, got %q", ref)
	}
	if ref != filepath.Base(ref) {
		t.Fatalf("references must be bare file names, got %q", ref)
	}

	data, err := os.ReadFile(filepath.Join(dir, ref))
	if err != nil || string(data) != "img" {
		t.Fatalf("stored bytes do not round-trip: %v", err)
	}

	if err := store.Delete(context.Background(), ref); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ref)); !os.IsNotExist(err) {
		t.Fatalf("file should be gone, stat err: %v", err)
	}
}

func TestDiskStore_StoreGeneratesUniqueNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	a, err := store.Store(context.Background(), "photo.jpg", []byte("a"))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	b, err := store.Store(context.Background(), "photo.jpg", []byte("b"))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if a == b {
		t.Fatalf("two uploads of the same name must not collide: %q", a)
	}
}

func TestDiskStore_DeleteMissingIsNoOp(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	if err := store.Delete(context.Background(), "already-gone.png"); err != nil {
		t.Fatalf("deleting a missing reference must not fail: %v", err)
	}
}

func TestDiskStore_DeleteRejectsPaths(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	for _, ref := range []string{"", "../etc/passwd", "sub/dir.png"} {
		if err := store.Delete(context.Background(), ref); err == nil {
			t.Fatalf("reference %q must be rejected", ref)
		}
	}
}
