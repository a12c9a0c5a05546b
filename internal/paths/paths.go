// Package paths provides canonical helpers for resolving and normalizing
// vault paths:
// - expanding a user-supplied vault root ("~/notes") to an absolute path
// - deriving a display name for a vault
// - converting between OS paths and vault-relative slash paths
//
// It centralizes path handling so that config resolution, the CLI, and the
// search index stay consistent.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultVaultName is the display name used when a vault path has no
// usable segments.
const DefaultVaultName = "vault"

// Expand resolves a user-supplied path to an absolute path.
//
// A leading "~" or "~/" is replaced with the current user's home directory.
// Relative paths are resolved against the process working directory.
// Expand never fails: if the home directory or working directory cannot be
// determined, the input is cleaned and returned as-is.
func Expand(raw string) string {
	p := strings.TrimSpace(raw)

	if p == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Clean(home)
		}
	} else if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}

	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// VaultName returns the display name for a vault: the last non-empty path
// segment, or DefaultVaultName when the path has no segments.
func VaultName(absPath string) string {
	trimmed := strings.TrimRight(filepath.ToSlash(absPath), "/")
	if trimmed == "" {
		return DefaultVaultName
	}
	name := trimmed[strings.LastIndex(trimmed, "/")+1:]
	if name == "" || name == "." {
		return DefaultVaultName
	}
	return name
}

// NormalizeDirRoot normalizes a vault-relative directory to have no leading
// or trailing slashes. Empty input stays empty.
//
// Examples:
// - "/daily/" -> "daily"
// - "daily"   -> "daily"
// - ""        -> ""
func NormalizeDirRoot(root string) string {
	root = filepath.ToSlash(root)
	return strings.Trim(root, "/")
}

// NormalizeRelPath normalizes a vault-relative path-like value:
// - converts OS separators to '/'
// - trims leading "./" and leading "/"
// - collapses repeated '/'
func NormalizeRelPath(p string) string {
	p = filepath.ToSlash(p)
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}
