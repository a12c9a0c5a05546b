package capture

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/aidanlsb/muninn/internal/testutil"
)

var captureTime = time.Date(2026, 1, 15, 14, 35, 42, 0, time.UTC) // Thursday

func TestFilename(t *testing.T) {
	tv := testutil.NewTestVault(t).Build()
	v := tv.Resolve()

	if got := Filename(v, captureTime); got != "capture-2026-01-15-143542.md" {
		t.Errorf("Filename = %q", got)
	}
}

func TestCreate(t *testing.T) {
	tv := testutil.NewTestVault(t).Build()
	v := tv.Resolve()

	note, err := Create(v, "call the plumber", captureTime)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if note.Filename != "capture-2026-01-15-143542.md" {
		t.Errorf("Filename = %q", note.Filename)
	}
	if note.Path != filepath.Join(tv.Path, "inbox", note.Filename) {
		t.Errorf("Path = %q", note.Path)
	}
	if note.Backlink != "[[2026-01-15-Thu]]" {
		t.Errorf("Backlink = %q", note.Backlink)
	}
	if note.Time != "2:35pm" {
		t.Errorf("Time = %q", note.Time)
	}

	tv.AssertFileEquals("inbox/"+note.Filename, "[[2026-01-15-Thu]] - 2:35pm\n\ncall the plumber\n")
}

func TestCreateDoesNotTouchDailyNote(t *testing.T) {
	tv := testutil.NewTestVault(t).Build()
	v := tv.Resolve()

	if _, err := Create(v, "anything", captureTime); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tv.AssertFileNotExists("daily/2026-01-15-Thu.md")
}

func TestCreateCustomInbox(t *testing.T) {
	tv := testutil.NewTestVault(t).
		WithConfig("inbox_directory: capture\n").
		Build()
	v := tv.Resolve()

	note, err := Create(v, "note content", captureTime)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if filepath.Dir(note.Path) != filepath.Join(tv.Path, "capture") {
		t.Errorf("Path = %q", note.Path)
	}
	tv.AssertFileExists("capture/" + note.Filename)
}
