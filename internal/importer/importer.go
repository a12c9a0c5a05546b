// Package importer routes externally dropped source files (meeting notes,
// voice transcripts) into the current daily note and archives the source
// in place so it is never imported twice.
//
// Per source file the flow is: Discovered -> Formatted -> Appended ->
// Archived. Nothing is persisted between runs except the archive rename
// itself; the directory listing re-derives the Discovered state each call.
// A crash between append and archive causes a duplicate import on retry;
// the pipeline is at-least-once, not exactly-once.
package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aidanlsb/muninn/internal/config"
	"github.com/aidanlsb/muninn/internal/daily"
	"github.com/aidanlsb/muninn/internal/section"
	"github.com/aidanlsb/muninn/internal/vaultfs"
)

// ArchivePrefix marks a source file as imported. The leading dot also hides
// it from the hidden-file filter, permanently excluding it from scans.
const ArchivePrefix = ".imported-"

// ErrAlreadyArchived indicates the archive-rename target already exists.
// Renaming over it would silently clobber a prior archive of a same-named
// file, so the import of that file fails instead.
var ErrAlreadyArchived = errors.New("source already archived")

// ErrNotConfigured indicates the pipeline's drop folder is not set in the
// vault config.
var ErrNotConfigured = errors.New("import folder not configured")

// Source is one importable file discovered in a drop folder.
type Source struct {
	Name    string // original filename
	Path    string // absolute path
	Content string
	ModTime time.Time
	Title   string // derived title (meeting notes only)
}

// Result records a successful import of one source file.
type Result struct {
	Source    string `json:"source"`
	DailyNote string `json:"daily_note"`
	Archived  string `json:"archived,omitempty"`
}

// ItemError records a per-file failure during a bulk import.
type ItemError struct {
	Source string
	Err    error
}

// Outcome is the aggregate of a bulk import. Partial success is a
// first-class state: Results and Errors can both be non-empty.
type Outcome struct {
	Results []Result
	Errors  []ItemError
}

// Pipeline imports one kind of source file into one daily-note section.
// Meeting and voice pipelines share this machinery and differ only in
// formatting and source preparation.
type Pipeline struct {
	vault      *config.Vault
	kind       string
	dir        string
	sectionKey string
	exts       []string
	prepare    func(*Source)
	format     func(*config.Vault, Source, time.Time) string
}

// Meetings returns the meeting-notes pipeline for a vault.
func Meetings(v *config.Vault) *Pipeline {
	return &Pipeline{
		vault:      v,
		kind:       "meetings",
		dir:        v.MeetingsFolder,
		sectionKey: v.MeetingsSection,
		exts:       []string{".md", ".txt"},
		prepare: func(s *Source) {
			s.Title = ExtractTitle(s.Content, s.Name)
		},
		format: formatMeeting,
	}
}

// Voice returns the voice-transcript pipeline for a vault.
func Voice(v *config.Vault) *Pipeline {
	return &Pipeline{
		vault:      v,
		kind:       "voice",
		dir:        v.VoiceFolder,
		sectionKey: v.VoiceSection,
		exts:       []string{".txt", ".md"},
		format:     formatVoice,
	}
}

// Kind returns the pipeline's kind name ("meetings" or "voice").
func (p *Pipeline) Kind() string { return p.kind }

// SourceDir returns the configured drop folder, or "" when unset.
func (p *Pipeline) SourceDir() string { return p.dir }

// Configured reports whether a drop folder is set for this pipeline.
func (p *Pipeline) Configured() bool { return p.dir != "" }

// List enumerates importable files in the drop folder: allowed extensions
// only, hidden and already-archived files excluded, sorted by ascending
// modification time so bulk imports process in chronological order.
//
// A missing or unreadable directory yields an empty list, never an error.
func (p *Pipeline) List() []Source {
	if p.dir == "" {
		return nil
	}

	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil
	}

	var sources []Source
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, ArchivePrefix) {
			continue
		}
		if !p.allowedExt(name) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		path := filepath.Join(p.dir, name)
		content, err := vaultfs.ReadFile(path)
		if err != nil {
			continue
		}

		src := Source{
			Name:    name,
			Path:    path,
			Content: content,
			ModTime: info.ModTime(),
		}
		if p.prepare != nil {
			p.prepare(&src)
		}
		sources = append(sources, src)
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].ModTime.Before(sources[j].ModTime)
	})
	return sources
}

// PendingCount returns the number of files awaiting import.
func (p *Pipeline) PendingCount() int {
	return len(p.List())
}

// ImportOne appends one formatted source to the configured section of the
// daily note for now, creating the note if needed, then archives the
// source by renaming it in place with ArchivePrefix.
//
// Pass archive=false to leave the source untouched (it will be rediscovered
// by the next scan).
func (p *Pipeline) ImportOne(src Source, now time.Time, archive bool) (*Result, error) {
	if p.dir == "" {
		return nil, fmt.Errorf("%s: %w", p.kind, ErrNotConfigured)
	}

	header, ok := p.vault.SectionHeader(p.sectionKey)
	if !ok {
		return nil, fmt.Errorf("section key %q not in vault config", p.sectionKey)
	}

	notePath, err := daily.EnsureExists(p.vault, now)
	if err != nil {
		return nil, err
	}

	formatted := p.format(p.vault, src, now)
	if err := section.AppendBelow(notePath, header, formatted); err != nil {
		return nil, err
	}

	result := &Result{Source: src.Name, DailyNote: notePath}

	if archive {
		target := filepath.Join(filepath.Dir(src.Path), ArchivePrefix+src.Name)
		if vaultfs.Exists(target) {
			return nil, fmt.Errorf("%s: %w", src.Name, ErrAlreadyArchived)
		}
		if err := vaultfs.Rename(src.Path, target); err != nil {
			return nil, err
		}
		result.Archived = filepath.Base(target)
	}

	return result, nil
}

// ImportAll processes every discovered file independently. A failure on one
// file is captured per-item and does not abort the rest of the batch.
func (p *Pipeline) ImportAll(now time.Time, archive bool) Outcome {
	var out Outcome
	for _, src := range p.List() {
		result, err := p.ImportOne(src, now, archive)
		if err != nil {
			out.Errors = append(out.Errors, ItemError{Source: src.Name, Err: err})
			continue
		}
		out.Results = append(out.Results, *result)
	}
	return out
}

func (p *Pipeline) allowedExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range p.exts {
		if ext == e {
			return true
		}
	}
	return false
}
