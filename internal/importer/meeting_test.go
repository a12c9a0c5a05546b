package importer

import (
	"strings"
	"testing"
	"time"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		filename string
		want     string
	}{
		{
			name:     "leading heading",
			content:  "# Q3 Planning\n\nAgenda items.",
			filename: "notes.md",
			want:     "Q3 Planning",
		},
		{
			name:     "heading after blank lines",
			content:  "\n\n## Weekly Sync\n\nbody",
			filename: "notes.md",
			want:     "Weekly Sync",
		},
		{
			name:     "heading not at top is ignored",
			content:  "intro line\n# Late Heading\n",
			filename: "notes.md",
			want:     "intro line",
		},
		{
			name:     "first non-empty line",
			content:  "\nStandup with the platform team\n\nmore content",
			filename: "notes.md",
			want:     "Standup with the platform team",
		},
		{
			name:     "long first line falls back to filename stem",
			content:  strings.Repeat("x", 150) + "\nrest",
			filename: "2026-01-15-board-meeting.md",
			want:     "2026-01-15-board-meeting",
		},
		{
			name:     "empty content falls back to filename stem",
			content:  "",
			filename: "retro.txt",
			want:     "retro",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTitle(tt.content, tt.filename); got != tt.want {
				t.Errorf("ExtractTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatMeeting(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 5, 0, 0, time.UTC)
	src := Source{
		Name:    "standup.md",
		Content: "  # Standup\n\nDiscussed blockers.  \n",
		Title:   "Standup",
	}

	got := formatMeeting(nil, src, now)
	want := "### Standup (9:05am)\n\n# Standup\n\nDiscussed blockers.\n"
	if got != want {
		t.Errorf("formatMeeting =\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatMeetingDerivesTitle(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 5, 0, 0, time.UTC)
	src := Source{Name: "retro.md", Content: "# Retro\n\nnotes"}

	got := formatMeeting(nil, src, now)
	if !strings.HasPrefix(got, "### Retro (9:05am)\n") {
		t.Errorf("formatMeeting = %q", got)
	}
}
