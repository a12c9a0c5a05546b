// Package search builds and queries the in-memory fuzzy index over a
// vault's notes. The index is session-scoped: rebuilt wholesale on demand
// (see Cache), never incrementally maintained or persisted.
package search

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// PreviewLimit is how much of each note's content the index keeps.
const PreviewLimit = 500

// noteExt is the file extension of indexable notes.
const noteExt = ".md"

// Entry is one indexed note.
type Entry struct {
	Path    string // absolute path
	Name    string // filename without extension
	Preview string // first PreviewLimit characters of content
}

// Index is the full working set of entries for one vault. Order follows
// directory traversal and is only meaningful for stable iteration.
type Index []Entry

// Build walks vaultRoot and indexes every note, skipping any path segment
// that begins with a dot. A note that cannot be read still gets an entry,
// with an empty preview, rather than aborting the build.
func Build(vaultRoot string) (Index, error) {
	index := Index{}

	err := filepath.WalkDir(vaultRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != vaultRoot && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, noteExt) {
			return nil
		}

		preview := ""
		if data, err := os.ReadFile(path); err == nil {
			preview = truncate(string(data), PreviewLimit)
		}

		index = append(index, Entry{
			Path:    path,
			Name:    strings.TrimSuffix(name, noteExt),
			Preview: preview,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return index, nil
}

// truncate limits s to n characters without splitting a multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
