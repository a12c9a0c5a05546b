// Package vaultfs implements the primitive file operations every vault
// feature composes: ensure-directory, whole-file read/write, existence
// checks, and renames.
//
// Writes are whole-file overwrites (via atomicfile); callers needing append
// semantics must read-modify-write. There is no file locking: concurrent
// external edits race and the last writer wins.
package vaultfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aidanlsb/muninn/internal/atomicfile"
)

// EnsureDir creates dir and all missing ancestors. It is a no-op if the
// directory already exists.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// WriteFile writes content to path, fully overwriting any prior content.
// The parent directory is created if missing.
func WriteFile(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := atomicfile.WriteFile(path, []byte(content), 0); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadFile returns the content of path. A missing file surfaces as an
// error matching fs.ErrNotExist.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Exists reports whether path exists. It never returns an error: any stat
// failure is treated as absent.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Rename renames old to new. The target's parent must already exist.
func Rename(oldPath, newPath string) error {
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("rename %s: %w", oldPath, err)
	}
	return nil
}

// IsNotFound reports whether err represents a missing file.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
