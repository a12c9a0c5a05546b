package vaultfs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "note.md")

	if err := WriteFile(path, "content\n"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "content\n" {
		t.Errorf("content = %q", got)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")

	if err := WriteFile(path, "first"); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, "second"); err != nil {
		t.Fatal(err)
	}

	got, _ := ReadFile(path)
	if got != "second" {
		t.Errorf("content = %q", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.md"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false for %v", err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")

	if Exists(path) {
		t.Error("Exists = true for missing file")
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !Exists(path) {
		t.Error("Exists = false for present file")
	}
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.md")
	newPath := filepath.Join(dir, ".imported-old.md")

	if err := os.WriteFile(oldPath, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Rename(oldPath, newPath); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if Exists(oldPath) || !Exists(newPath) {
		t.Error("rename did not move the file")
	}

	if err := Rename(filepath.Join(dir, "ghost.md"), newPath); err == nil {
		t.Error("expected error renaming a missing file")
	}
}
