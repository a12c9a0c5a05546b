package dates

import (
	"testing"
	"time"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"yyyy-MM-dd", "2006-01-02"},
		{"yyyy-MM-dd-ddd", "2006-01-02-Mon"},
		{"dddd, MMMM dd", "Monday, January 02"},
		{"yyyy/MM/dd", "2006/01/02"},
		{"MMM dd yyyy", "Jan 02 2006"},
	}
	for _, tt := range tests {
		if got := Layout(tt.pattern); got != tt.want {
			t.Errorf("Layout(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	// Thursday
	date := time.Date(2026, 1, 15, 14, 35, 0, 0, time.UTC)

	tests := []struct {
		pattern string
		want    string
	}{
		{DefaultPattern, "2026-01-15-Thu"},
		{"yyyy-MM-dd", "2026-01-15"},
		{"dddd, MMMM dd", "Thursday, January 15"},
	}
	for _, tt := range tests {
		if got := Format(date, tt.pattern); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		hour, min int
		want      string
	}{
		{14, 35, "2:35pm"},
		{9, 5, "9:05am"},
		{0, 0, "12:00am"},
		{12, 0, "12:00pm"},
	}
	for _, tt := range tests {
		ts := time.Date(2026, 1, 15, tt.hour, tt.min, 0, 0, time.UTC)
		if got := Clock(ts); got != tt.want {
			t.Errorf("Clock(%02d:%02d) = %q, want %q", tt.hour, tt.min, got, tt.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2026-01-15", "2024-02-29", "1999-12-31"}
	for _, s := range valid {
		if !IsValidDate(s) {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}

	invalid := []string{"2026-13-01", "2026-02-30", "15-01-2026", "2026/01/15", "today", ""}
	for _, s := range invalid {
		if IsValidDate(s) {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseDateArg(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		arg     string
		want    string
		wantErr bool
	}{
		{"", "2026-01-15", false},
		{"today", "2026-01-15", false},
		{"Today", "2026-01-15", false},
		{"yesterday", "2026-01-14", false},
		{"tomorrow", "2026-01-16", false},
		{"2026-03-01", "2026-03-01", false},
		{"next week", "", true},
		{"2026-13-01", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDateArg(tt.arg, now)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDateArg(%q): expected error", tt.arg)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDateArg(%q): %v", tt.arg, err)
			continue
		}
		if got.Format(DateLayout) != tt.want {
			t.Errorf("ParseDateArg(%q) = %s, want %s", tt.arg, got.Format(DateLayout), tt.want)
		}
	}
}
