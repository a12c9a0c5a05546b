package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/muninn/internal/capture"
	"github.com/aidanlsb/muninn/internal/ui"
)

var captureCmd = &cobra.Command{
	Use:     "capture [text...]",
	Aliases: []string{"cap"},
	Short:   "Capture a quick note into the inbox",
	Long: `Writes a timestamped note into the vault's inbox directory. The note is
stamped with a backlink to today's daily note and the capture time.

Text can be given as arguments or piped on stdin:

  mnn capture "call the plumber about the boiler"
  pbpaste | mnn capture`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := resolveVault()
		if err != nil {
			return handleError(ErrCodeConfigInvalid, err, "")
		}

		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return handleError(ErrCodeIOError, fmt.Errorf("reading stdin: %w", err), "")
			}
			text = strings.TrimSpace(string(data))
		}
		if text == "" {
			return handleErrorMsg(ErrCodeMissingArgument, "nothing to capture", "Pass text as arguments or pipe it on stdin")
		}

		note, err := capture.Create(v, text, time.Now())
		if err != nil {
			return handleError(ErrCodeIOError, err, "")
		}
		indexCache.Invalidate()

		if isJSONOutput() {
			outputSuccess(note, nil)
			return nil
		}

		fmt.Println(ui.Successf("Captured %s", ui.FilePath(note.Path)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(captureCmd)
}
