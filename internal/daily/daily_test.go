package daily

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/aidanlsb/muninn/internal/testutil"
)

var testDate = time.Date(2026, 1, 15, 14, 35, 0, 0, time.UTC) // Thursday

func TestPath(t *testing.T) {
	tv := testutil.NewTestVault(t).Build()
	v := tv.Resolve()

	want := filepath.Join(tv.Path, "daily", "2026-01-15-Thu.md")
	if got := Path(v, testDate); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestPathCustomFormat(t *testing.T) {
	tv := testutil.NewTestVault(t).
		WithConfig("daily_directory: journal\ndate_format: yyyy-MM-dd\n").
		Build()
	v := tv.Resolve()

	want := filepath.Join(tv.Path, "journal", "2026-01-15.md")
	if got := Path(v, testDate); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestTemplate(t *testing.T) {
	tv := testutil.NewTestVault(t).Build()
	v := tv.Resolve()

	want := "## Tasks\n\n## Schedule\n\n## Meetings\n\n## Notes\n\n## Voice Notes\n\n## Ideas\n\n## Review\n\n"
	if got := Template(v); got != want {
		t.Errorf("Template =\n%q\nwant:\n%q", got, want)
	}
}

func TestEnsureExistsCreates(t *testing.T) {
	tv := testutil.NewTestVault(t).Build()
	v := tv.Resolve()

	path, err := EnsureExists(v, testDate)
	if err != nil {
		t.Fatalf("EnsureExists: %v", err)
	}

	tv.AssertFileExists("daily/2026-01-15-Thu.md")
	tv.AssertFileEquals("daily/2026-01-15-Thu.md", Template(v))
	if path != Path(v, testDate) {
		t.Errorf("path = %q", path)
	}
}

func TestEnsureExistsNeverOverwrites(t *testing.T) {
	tv := testutil.NewTestVault(t).
		WithFile("daily/2026-01-15-Thu.md", "## Tasks\n\n- [ ] existing work\n").
		Build()
	v := tv.Resolve()

	if _, err := EnsureExists(v, testDate); err != nil {
		t.Fatalf("EnsureExists: %v", err)
	}

	tv.AssertFileContains("daily/2026-01-15-Thu.md", "existing work")
	tv.AssertFileNotContains("daily/2026-01-15-Thu.md", "## Schedule")
}

func TestDescribe(t *testing.T) {
	tv := testutil.NewTestVault(t).Build()
	v := tv.Resolve()

	desc := Describe(v, testDate)
	if desc.Existed {
		t.Error("note should not exist yet")
	}
	if desc.Date != "2026-01-15-Thu" {
		t.Errorf("Date = %q", desc.Date)
	}

	if _, err := EnsureExists(v, testDate); err != nil {
		t.Fatal(err)
	}
	if !Describe(v, testDate).Existed {
		t.Error("note should exist after EnsureExists")
	}
}

func TestBacklink(t *testing.T) {
	tv := testutil.NewTestVault(t).Build()
	v := tv.Resolve()

	if got := Backlink(v, testDate); got != "[[2026-01-15-Thu]]" {
		t.Errorf("Backlink = %q", got)
	}
}

func TestRelativeForOpen(t *testing.T) {
	tv := testutil.NewTestVault(t).Build()
	v := tv.Resolve()

	if got := RelativeForOpen(v, testDate); got != "daily/2026-01-15-Thu" {
		t.Errorf("RelativeForOpen = %q", got)
	}
}
