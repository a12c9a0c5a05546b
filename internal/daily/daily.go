// Package daily manages date-keyed recurring notes: canonical paths,
// the section template, idempotent creation, and backlink tokens.
package daily

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/aidanlsb/muninn/internal/config"
	"github.com/aidanlsb/muninn/internal/dates"
	"github.com/aidanlsb/muninn/internal/vaultfs"
)

// Descriptor describes a daily note at the time of query. Existed is a
// snapshot, not live state; re-check before assuming anything.
type Descriptor struct {
	Date    string // formatted per the vault's date pattern
	Path    string // absolute file path
	Existed bool
}

// FormatDate formats a date per the vault's configured pattern.
func FormatDate(v *config.Vault, date time.Time) string {
	return dates.Format(date, v.DateFormat)
}

// Path returns the absolute path of the daily note for date:
// {root}/{dailyDir}/{formattedDate}{ext}.
func Path(v *config.Vault, date time.Time) string {
	return filepath.Join(v.DailyPath(), FormatDate(v, date)+v.Ext)
}

// Template returns the daily note body: one header per configured section,
// in declaration order, each followed by exactly one blank line. There is
// no document title line; the filename carries the date in the viewer.
func Template(v *config.Vault) string {
	var b strings.Builder
	for _, s := range v.Sections {
		b.WriteString(s.Header)
		b.WriteString("\n\n")
	}
	return b.String()
}

// Describe returns the daily note descriptor for date without touching disk
// beyond an existence check.
func Describe(v *config.Vault, date time.Time) Descriptor {
	p := Path(v, date)
	return Descriptor{
		Date:    FormatDate(v, date),
		Path:    p,
		Existed: vaultfs.Exists(p),
	}
}

// EnsureExists creates the daily note from Template if it doesn't exist and
// returns its path. An existing note is never overwritten; callers rely on
// this for idempotent creation.
func EnsureExists(v *config.Vault, date time.Time) (string, error) {
	p := Path(v, date)
	if vaultfs.Exists(p) {
		return p, nil
	}
	if err := vaultfs.WriteFile(p, Template(v)); err != nil {
		return "", err
	}
	return p, nil
}

// Backlink returns the wikilink token referencing the daily note for date,
// e.g. "[[2026-01-15-Thu]]". The target note may not exist yet; daily
// notes are created lazily, not by linking.
func Backlink(v *config.Vault, date time.Time) string {
	return "[[" + FormatDate(v, date) + "]]"
}

// RelativeForOpen returns the note's vault-relative path without extension,
// the form viewer URIs address notes by.
func RelativeForOpen(v *config.Vault, date time.Time) string {
	return filepath.ToSlash(filepath.Join(v.DailyDir, FormatDate(v, date)))
}
