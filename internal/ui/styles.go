package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): primary text
// - Accent (soft purple, overridable via config): paths, highlights
// - Muted (gray): secondary info
// - No colored success/error/warning - unicode symbols only

const defaultAccent = "#A78BFA"

var (
	// Accent style for file paths and highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)
)

// accentColor holds the configured accent, if any; nil means default.
var accentColor *string

// codeTheme holds the configured markdown code theme ("" means default).
var codeTheme string

var (
	ansiColorRe = regexp.MustCompile(`^\d{1,3}$`)
	hexColorRe  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// normalizeAccentColor validates a user-supplied accent color. Supported
// forms are ANSI codes ("0" to "255") and hex colors ("#RRGGBB").
func normalizeAccentColor(raw string) (string, bool) {
	c := strings.TrimSpace(raw)
	if ansiColorRe.MatchString(c) || hexColorRe.MatchString(c) {
		return c, true
	}
	return "", false
}

// ConfigureTheme applies the configured UI accent color to the shared
// styles. Invalid or empty values keep the defaults.
func ConfigureTheme(accent string) {
	c, ok := normalizeAccentColor(accent)
	if !ok {
		accentColor = nil
		Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
		return
	}
	accentColor = &c
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// AccentColor returns the configured accent color, if one was set.
func AccentColor() (string, bool) {
	if accentColor == nil {
		return "", false
	}
	return *accentColor, true
}

// ConfigureMarkdownCodeTheme sets the Chroma theme for rendered markdown
// code blocks.
func ConfigureMarkdownCodeTheme(theme string) {
	codeTheme = strings.TrimSpace(theme)
}
