// Package section implements exact-location content insertion below a
// literal section marker inside a note.
package section

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aidanlsb/muninn/internal/vaultfs"
)

// ErrSectionNotFound indicates the requested marker is absent from the
// target file. This is always a hard failure; skipping it silently would
// hide content loss.
var ErrSectionNotFound = errors.New("section not found")

// InsertionPoint returns the offset in raw at which content belonging to
// marker is spliced: the first newline after the first literal occurrence
// of marker, or len(raw) when the marker is the last line with no trailing
// newline. A second return of false means the marker is absent.
//
// Only the first occurrence anchors the insertion; duplicate markers are
// ignored.
func InsertionPoint(raw, marker string) (int, bool) {
	idx := strings.Index(raw, marker)
	if idx < 0 {
		return 0, false
	}
	end := idx + len(marker)
	if nl := strings.IndexByte(raw[end:], '\n'); nl >= 0 {
		return end + nl, true
	}
	return len(raw), true
}

// Splice returns raw with a newline plus content inserted at the marker's
// insertion point, everything before and after unchanged.
func Splice(raw, marker, content string) (string, error) {
	pos, ok := InsertionPoint(raw, marker)
	if !ok {
		return "", fmt.Errorf("marker %q: %w", marker, ErrSectionNotFound)
	}
	return raw[:pos] + "\n" + content + raw[pos:], nil
}

// AppendBelow inserts content directly below the first occurrence of
// marker in the file at path and rewrites the whole file.
//
// The file is left untouched when the marker is missing: the splice is
// computed in memory before any write happens. The rewrite itself is a
// whole-file overwrite; concurrent writers to the same file race and the
// last writer wins.
func AppendBelow(path, marker, content string) error {
	raw, err := vaultfs.ReadFile(path)
	if err != nil {
		return err
	}
	updated, err := Splice(raw, marker, content)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return vaultfs.WriteFile(path, updated)
}
