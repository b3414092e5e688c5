package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListByExtSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.tif", "a.tif", "c.TIF", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.tif"), 0o755); err != nil {
		t.Fatal(err)
	}

	paths, err := ListByExt(dir, ".tif")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 tif files, got %d: %v", len(paths), paths)
	}
	for i := 1; i < len(paths); i++ {
		if paths[i-1] >= paths[i] {
			t.Fatalf("listing not sorted: %v", paths)
		}
	}
	for _, p := range paths {
		if filepath.Base(p) == "notes.txt" || filepath.Base(p) == "sub.tif" {
			t.Fatalf("unexpected entry %s", p)
		}
	}
}

func TestListByExtMissingDir(t *testing.T) {
	if _, err := ListByExt(filepath.Join(t.TempDir(), "absent"), ".tif"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestDirSize(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "r.0.0.mca"), make([]byte, 100), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "r.0.1.mca"), make([]byte, 50), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), make([]byte, 999), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := DirSize(dir, ".mca"); got != 150 {
		t.Fatalf("expected 150 bytes, got %d", got)
	}
	if got := DirSize(filepath.Join(dir, "absent"), ".mca"); got != 0 {
		t.Fatalf("missing dir should be zero, got %d", got)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	if Exists(path) {
		t.Fatal("file should not exist yet")
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if !Exists(path) {
		t.Fatal("file should exist")
	}
}
