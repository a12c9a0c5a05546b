// Package dates provides canonical date parsing and formatting helpers.
//
// This package exists to avoid duplicating date logic across:
// - daily note naming (config-driven format patterns)
// - capture timestamps and backlinks
// - CLI date args
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the canonical Go layout for plain dates.
const DateLayout = "2006-01-02"

// ClockLayout is the layout used for human-readable capture times ("2:35pm").
const ClockLayout = "3:04pm"

// DefaultPattern is the default daily-note format pattern
// (year-month-day plus a short weekday token).
const DefaultPattern = "yyyy-MM-dd-ddd"

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// patternTokens maps format-pattern tokens to Go reference-time layouts.
// Longest tokens must come first so "dddd" is not consumed as "ddd"+"d".
var patternTokens = []struct {
	token  string
	layout string
}{
	{"yyyy", "2006"},
	{"dddd", "Monday"},
	{"ddd", "Mon"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"dd", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"h", "3"},
	{"A", "PM"},
	{"a", "pm"},
}

// Layout converts a date-format pattern (e.g. "yyyy-MM-dd-ddd") into a Go
// time layout. Unrecognized characters pass through literally.
func Layout(pattern string) string {
	var b strings.Builder
	for len(pattern) > 0 {
		matched := false
		for _, pt := range patternTokens {
			if strings.HasPrefix(pattern, pt.token) {
				b.WriteString(pt.layout)
				pattern = pattern[len(pt.token):]
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[0])
			pattern = pattern[1:]
		}
	}
	return b.String()
}

// Format formats t using a date-format pattern.
func Format(t time.Time, pattern string) string {
	return t.Format(Layout(pattern))
}

// Clock formats t as a human-readable time of day ("2:35pm").
func Clock(t time.Time) string {
	return t.Format(ClockLayout)
}

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return time.Parse(DateLayout, s)
}

// ParseDateArg parses a CLI date argument which can be:
// - "today", "yesterday", "tomorrow" (relative dates)
// - "YYYY-MM-DD" format (absolute date)
// - Empty string defaults to today
func ParseDateArg(arg string, now time.Time) (time.Time, error) {
	if arg == "" {
		return now, nil
	}

	dateArg := strings.ToLower(strings.TrimSpace(arg))
	switch dateArg {
	case "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	default:
		parsed, err := ParseDate(dateArg)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date format '%s', use YYYY-MM-DD or today/yesterday/tomorrow", dateArg)
		}
		return parsed, nil
	}
}
