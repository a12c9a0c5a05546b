package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/aidanlsb/muninn/internal/config"
	"github.com/aidanlsb/muninn/internal/daily"
	"github.com/aidanlsb/muninn/internal/dates"
)

// formatVoice renders a voice transcript as a backlinked entry for the
// daily note's voice section.
func formatVoice(v *config.Vault, src Source, now time.Time) string {
	return fmt.Sprintf("%s - %s (voice)\n\n%s\n",
		daily.Backlink(v, now), dates.Clock(now), strings.TrimSpace(src.Content))
}
