package importer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/aidanlsb/muninn/internal/config"
	"github.com/aidanlsb/muninn/internal/dates"
)

// maxTitleLineLen caps how long a plain first line may be before the
// filename stem is preferred as the title.
const maxTitleLineLen = 100

// ExtractTitle derives a meeting title from note content. Preference
// order: the text of a leading markdown heading, then the first non-empty
// line if it is short enough, then the filename stem.
func ExtractTitle(content, filename string) string {
	if title := leadingHeading(content); title != "" {
		return title
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) < maxTitleLineLen {
			return line
		}
		break
	}

	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// leadingHeading returns the text of the document's first heading, but
// only when that heading opens the document (nothing but blank lines
// before it).
func leadingHeading(content string) string {
	trimmed := strings.TrimLeft(content, "\n \t")
	if !strings.HasPrefix(trimmed, "#") {
		return ""
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader([]byte(trimmed)))

	first := doc.FirstChild()
	heading, ok := first.(*ast.Heading)
	if !ok {
		return ""
	}

	var b strings.Builder
	for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			b.Write(textNode.Segment.Value([]byte(trimmed)))
		}
	}
	return strings.TrimSpace(b.String())
}

// formatMeeting renders a meeting source as a level-3 block for the daily
// note's meetings section.
func formatMeeting(_ *config.Vault, src Source, now time.Time) string {
	title := src.Title
	if title == "" {
		title = ExtractTitle(src.Content, src.Name)
	}
	return fmt.Sprintf("### %s (%s)\n\n%s\n", title, dates.Clock(now), strings.TrimSpace(src.Content))
}
