package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/muninn/internal/daily"
	"github.com/aidanlsb/muninn/internal/dates"
	"github.com/aidanlsb/muninn/internal/ui"
)

var dailyNoOpen bool

var dailyCmd = &cobra.Command{
	Use:   "daily [date]",
	Short: "Open or create a daily note",
	Long: `Creates the daily note for the given date if it doesn't exist, then opens
it in your editor. The date defaults to today.

Examples:
  mnn daily              # Today's note
  mnn daily yesterday
  mnn daily 2026-08-15`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := resolveVault()
		if err != nil {
			return handleError(ErrCodeConfigInvalid, err, "")
		}

		date := time.Now()
		if len(args) == 1 {
			date, err = dates.ParseDateArg(args[0], time.Now())
			if err != nil {
				return handleError(ErrCodeInvalidInput, err, "Use YYYY-MM-DD, 'today', 'yesterday', or 'tomorrow'")
			}
		}

		desc := daily.Describe(v, date)
		path, err := daily.EnsureExists(v, date)
		if err != nil {
			return handleError(ErrCodeIOError, err, "")
		}
		if !desc.Existed {
			indexCache.Invalidate()
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"date":    desc.Date,
				"path":    path,
				"created": !desc.Existed,
			}, nil)
			return nil
		}

		if !desc.Existed {
			fmt.Println(ui.Successf("Created %s", ui.FilePath(path)))
		} else {
			fmt.Printf("Daily note: %s\n", ui.FilePath(path))
		}

		if !dailyNoOpen {
			openInEditorOrPrintPath(getConfig(), path)
		}
		return nil
	},
}

func init() {
	dailyCmd.Flags().BoolVar(&dailyNoOpen, "no-open", false, "Don't open the note in an editor")
	rootCmd.AddCommand(dailyCmd)
}
