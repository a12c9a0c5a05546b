// Package capture creates timestamped, backlinked atomic notes in the
// vault's inbox directory, one file per capture event.
package capture

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/aidanlsb/muninn/internal/config"
	"github.com/aidanlsb/muninn/internal/daily"
	"github.com/aidanlsb/muninn/internal/dates"
	"github.com/aidanlsb/muninn/internal/vaultfs"
)

// filenameLayout yields capture-YYYY-MM-DD-HHmmss names. Resolution is one
// second: two captures inside the same second collide and the later write
// wins. Collisions are deliberately not guarded against; backlink
// construction elsewhere relies on the naming scheme.
const filenameLayout = "2006-01-02-150405"

// Note describes a capture note after it has been written. Captures are
// never mutated; every capture is a new file.
type Note struct {
	Filename string
	Path     string
	Content  string
	Backlink string
	Time     string // human-readable, e.g. "2:35pm"
}

// Filename returns the capture filename for a timestamp.
func Filename(v *config.Vault, t time.Time) string {
	return "capture-" + t.Format(filenameLayout) + v.Ext
}

// Create writes a capture note into the inbox and returns its descriptor.
//
// The content is "{backlink} - {time}" followed by a blank line and the raw
// text. The backlink targets the day's daily note but Create never ensures
// that note exists; daily note creation is a separate, lazy operation.
func Create(v *config.Vault, rawContent string, t time.Time) (*Note, error) {
	backlink := daily.Backlink(v, t)
	clock := dates.Clock(t)

	note := &Note{
		Filename: Filename(v, t),
		Backlink: backlink,
		Time:     clock,
		Content:  fmt.Sprintf("%s - %s\n\n%s\n", backlink, clock, rawContent),
	}
	note.Path = filepath.Join(v.InboxPath(), note.Filename)

	if err := vaultfs.WriteFile(note.Path, note.Content); err != nil {
		return nil, err
	}
	return note, nil
}
