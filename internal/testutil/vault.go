// Package testutil provides reusable test utilities for Muninn tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aidanlsb/muninn/internal/config"
)

// TestVault represents a temporary vault for testing.
type TestVault struct {
	Path  string
	t     *testing.T
	files map[string]string
}

// NewTestVault creates a new test vault builder.
// Call Build() to create the actual vault directory.
func NewTestVault(t *testing.T) *TestVault {
	t.Helper()
	return &TestVault{
		t:     t,
		files: make(map[string]string),
	}
}

// WithFile adds a file to the vault.
// The path is relative to the vault root.
func (v *TestVault) WithFile(path, content string) *TestVault {
	v.files[path] = content
	return v
}

// WithConfig sets the muninn.yaml content for the vault.
func (v *TestVault) WithConfig(yaml string) *TestVault {
	v.files[config.VaultConfigFile] = yaml
	return v
}

// Build creates the vault directory and all configured files.
func (v *TestVault) Build() *TestVault {
	v.t.Helper()

	v.Path = v.t.TempDir()

	for path, content := range v.files {
		v.WriteFile(path, content)
	}

	return v
}

// Resolve returns the resolved Vault for this test vault, loading any
// muninn.yaml written into it.
func (v *TestVault) Resolve() *config.Vault {
	v.t.Helper()
	vc, err := config.LoadVaultConfig(v.Path)
	if err != nil {
		v.t.Fatalf("failed to load vault config: %v", err)
	}
	resolved, err := config.ResolveVault(v.Path, vc)
	if err != nil {
		v.t.Fatalf("failed to resolve vault: %v", err)
	}
	return resolved
}

// WriteFile writes a file to the vault, creating directories as needed.
func (v *TestVault) WriteFile(relPath, content string) {
	v.t.Helper()
	fullPath := filepath.Join(v.Path, relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		v.t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		v.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// ReadFile reads a file from the vault.
func (v *TestVault) ReadFile(relPath string) string {
	v.t.Helper()
	data, err := os.ReadFile(filepath.Join(v.Path, relPath))
	if err != nil {
		v.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(data)
}

// Touch sets a file's modification time, for tests that depend on
// recency ordering.
func (v *TestVault) Touch(relPath string, mtime time.Time) {
	v.t.Helper()
	fullPath := filepath.Join(v.Path, relPath)
	if err := os.Chtimes(fullPath, mtime, mtime); err != nil {
		v.t.Fatalf("failed to set mtime on %s: %v", relPath, err)
	}
}
