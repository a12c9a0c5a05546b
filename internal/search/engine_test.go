package search

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aidanlsb/muninn/internal/testutil"
)

func TestQueryRanksNameAboveContent(t *testing.T) {
	index := Index{
		{Path: "/v/typescript-migration.md", Name: "typescript-migration", Preview: "plan for the move"},
		{Path: "/v/meeting.md", Name: "meeting", Preview: "we talked about typescript a lot"},
		{Path: "/v/groceries.md", Name: "groceries", Preview: "milk, eggs"},
	}

	results := Query(index, "typescript")
	if len(results) != 2 {
		t.Fatalf("got %d results: %+v", len(results), results)
	}
	if results[0].Name != "typescript-migration" {
		t.Errorf("first result = %q, want filename match first", results[0].Name)
	}
	if results[1].Name != "meeting" {
		t.Errorf("second result = %q", results[1].Name)
	}
	if results[0].Score >= results[1].Score {
		t.Errorf("scores not ascending: %v >= %v", results[0].Score, results[1].Score)
	}
	for _, r := range results {
		if r.Score <= 0 || r.Score >= 1 {
			t.Errorf("score %v outside (0,1)", r.Score)
		}
	}
}

func TestQueryNameAndPreviewBeatsNameOnly(t *testing.T) {
	index := Index{
		{Path: "/v/a.md", Name: "roadmap", Preview: "nothing relevant"},
		{Path: "/v/b.md", Name: "roadmap-q3", Preview: "the roadmap for q3"},
	}

	results := Query(index, "roadmap")
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Name != "roadmap-q3" {
		t.Errorf("first = %q, want the note matching on both keys", results[0].Name)
	}
}

func TestQueryNoMatches(t *testing.T) {
	index := Index{
		{Path: "/v/a.md", Name: "groceries", Preview: "milk"},
	}
	if results := Query(index, "xylophone"); len(results) != 0 {
		t.Errorf("results = %+v", results)
	}
}

func TestQueryCapsResults(t *testing.T) {
	var index Index
	for i := 0; i < MaxResults+20; i++ {
		index = append(index, Entry{
			Path:    fmt.Sprintf("/v/note-%03d.md", i),
			Name:    fmt.Sprintf("note-%03d", i),
			Preview: "shared content",
		})
	}

	results := Query(index, "note")
	if len(results) != MaxResults {
		t.Errorf("got %d results, want %d", len(results), MaxResults)
	}
}

func TestQueryTruncatesPreview(t *testing.T) {
	index := Index{
		{Path: "/v/a.md", Name: "notes", Preview: strings.Repeat("b", PreviewLimit)},
	}
	results := Query(index, "notes")
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	if len(results[0].Preview) != ResultPreviewLimit {
		t.Errorf("preview length = %d, want %d", len(results[0].Preview), ResultPreviewLimit)
	}
}

func TestQueryEmptyFallsBackToRecent(t *testing.T) {
	tv := testutil.NewTestVault(t).
		WithFile("old.md", "a").
		WithFile("mid.md", "b").
		WithFile("new.md", "c").
		Build()

	base := time.Now().Add(-time.Hour)
	tv.Touch("old.md", base)
	tv.Touch("mid.md", base.Add(time.Minute))
	tv.Touch("new.md", base.Add(2*time.Minute))

	index, err := Build(tv.Path)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	results := Query(index, "   ")
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Name != "new" || results[1].Name != "mid" || results[2].Name != "old" {
		t.Errorf("order = %s, %s, %s; want most recent first",
			results[0].Name, results[1].Name, results[2].Name)
	}
	for _, r := range results {
		if r.Score != 0 {
			t.Errorf("recency score = %v, want 0", r.Score)
		}
	}
}
