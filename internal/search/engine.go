package search

import (
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/aidanlsb/muninn/internal/fuzzy"
)

// MaxResults caps every query's result count. Not configurable.
const MaxResults = 50

// ResultPreviewLimit is how much preview each result carries.
const ResultPreviewLimit = 100

// Filename matches count for more than content-preview matches.
const (
	nameWeight    = 0.7
	previewWeight = 0.3
)

// scoreEpsilon stands in for a perfect per-key score so that a weighted
// combination stays non-zero and sortable (mirrors IEEE double epsilon).
const scoreEpsilon = 2.220446049250313e-16

// Result is one query hit. Score is in [0,1] with 0 best.
type Result struct {
	Path    string  `json:"path"`
	Name    string  `json:"name"`
	Preview string  `json:"preview"`
	Score   float64 `json:"score"`
}

// Query runs text against the index.
//
// An empty or whitespace-only query returns the most recently modified
// notes (fresh stat per entry; vanished files sort as oldest) with score
// 0. Otherwise entries are fuzzy-matched on filename and preview, sorted
// by ascending score. Both paths cap at MaxResults.
func Query(index Index, text string) []Result {
	query := strings.TrimSpace(text)
	if query == "" {
		return recent(index)
	}

	type scored struct {
		entry Entry
		score float64
	}
	var hits []scored

	for _, e := range index {
		nameScore, nameOK := fuzzy.Match(query, e.Name)
		prevScore, prevOK := fuzzy.Match(query, e.Preview)
		if !nameOK && !prevOK {
			continue
		}

		total := 1.0
		if nameOK {
			total *= math.Pow(floorScore(nameScore), nameWeight)
		}
		if prevOK {
			total *= math.Pow(floorScore(prevScore), previewWeight)
		}
		hits = append(hits, scored{entry: e, score: total})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score < hits[j].score
		}
		return hits[i].entry.Name < hits[j].entry.Name
	})

	if len(hits) > MaxResults {
		hits = hits[:MaxResults]
	}

	results := make([]Result, len(hits))
	for i, h := range hits {
		results[i] = Result{
			Path:    h.entry.Path,
			Name:    h.entry.Name,
			Preview: truncate(h.entry.Preview, ResultPreviewLimit),
			Score:   h.score,
		}
	}
	return results
}

// recent is the empty-query fallback: entries by on-disk modification time
// descending, score fixed at 0.
func recent(index Index) []Result {
	type stamped struct {
		entry Entry
		mtime time.Time
	}
	entries := make([]stamped, len(index))
	for i, e := range index {
		s := stamped{entry: e}
		if info, err := os.Stat(e.Path); err == nil {
			s.mtime = info.ModTime()
		}
		entries[i] = s
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].mtime.After(entries[j].mtime)
	})

	if len(entries) > MaxResults {
		entries = entries[:MaxResults]
	}

	results := make([]Result, len(entries))
	for i, s := range entries {
		results[i] = Result{
			Path:    s.entry.Path,
			Name:    s.entry.Name,
			Preview: truncate(s.entry.Preview, ResultPreviewLimit),
			Score:   0,
		}
	}
	return results
}

func floorScore(s float64) float64 {
	if s == 0 {
		return scoreEpsilon
	}
	return s
}
