package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/muninn/internal/daily"
	"github.com/aidanlsb/muninn/internal/dates"
	"github.com/aidanlsb/muninn/internal/section"
	"github.com/aidanlsb/muninn/internal/ui"
)

var addDate string

var addCmd = &cobra.Command{
	Use:   "add <section> <text...>",
	Short: "Append text under a section of a daily note",
	Long: `Appends a line of text directly below the named section's header in the
daily note, creating the note first if needed. The section is one of the
keys configured in muninn.yaml (tasks, schedule, meetings, notes, voice,
ideas, review by default).

Examples:
  mnn add tasks "- [ ] review the quarterly report"
  mnn add ideas "a CLI that greps your dreams" --date yesterday`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := resolveVault()
		if err != nil {
			return handleError(ErrCodeConfigInvalid, err, "")
		}

		key := args[0]
		header, ok := v.SectionHeader(key)
		if !ok {
			return handleErrorMsg(ErrCodeSectionNotFound,
				fmt.Sprintf("section '%s' not configured", key),
				fmt.Sprintf("Available sections: %s", strings.Join(v.SectionKeys(), ", ")))
		}

		date := time.Now()
		if addDate != "" {
			date, err = dates.ParseDateArg(addDate, time.Now())
			if err != nil {
				return handleError(ErrCodeInvalidInput, err, "Use YYYY-MM-DD, 'today', 'yesterday', or 'tomorrow'")
			}
		}

		text := strings.Join(args[1:], " ")

		path, err := daily.EnsureExists(v, date)
		if err != nil {
			return handleError(ErrCodeIOError, err, "")
		}
		if err := section.AppendBelow(path, header, text); err != nil {
			if errors.Is(err, section.ErrSectionNotFound) {
				return handleErrorMsg(ErrCodeSectionNotFound,
					fmt.Sprintf("header '%s' not found in %s", header, path),
					"The note may predate this section; add the header by hand")
			}
			return handleError(ErrCodeIOError, err, "")
		}
		indexCache.Invalidate()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":    path,
				"section": key,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Added to %s in %s", header, ui.FilePath(path)))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Target date (defaults to today)")
	rootCmd.AddCommand(addCmd)
}
