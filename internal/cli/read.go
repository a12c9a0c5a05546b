package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/muninn/internal/daily"
	"github.com/aidanlsb/muninn/internal/dates"
	"github.com/aidanlsb/muninn/internal/paths"
	"github.com/aidanlsb/muninn/internal/ui"
	"github.com/aidanlsb/muninn/internal/vaultfs"
)

var readPlain bool

var readCmd = &cobra.Command{
	Use:     "read [note]",
	Aliases: []string{"cat"},
	Short:   "Render a note in the terminal",
	Long: `Renders a note as styled markdown in the terminal. With no argument,
renders today's daily note. Accepts the same note arguments as 'mnn open'.

Examples:
  mnn read
  mnn read yesterday
  mnn read projects/roadmap`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := resolveVault()
		if err != nil {
			return handleError(ErrCodeConfigInvalid, err, "")
		}

		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}

		var path string
		if date, derr := dates.ParseDateArg(arg, time.Now()); arg == "" || derr == nil {
			if arg == "" {
				date = time.Now()
			}
			path = daily.Path(v, date)
		} else {
			rel := paths.NormalizeRelPath(arg)
			if !strings.HasSuffix(rel, v.Ext) {
				rel += v.Ext
			}
			path = filepath.Join(v.Root, filepath.FromSlash(rel))
		}

		content, err := vaultfs.ReadFile(path)
		if err != nil {
			if vaultfs.IsNotFound(err) {
				return handleErrorMsg(ErrCodeFileNotFound,
					fmt.Sprintf("note not found: %s", path),
					"Try 'mnn search' to locate it")
			}
			return handleError(ErrCodeIOError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":    path,
				"content": content,
			}, nil)
			return nil
		}

		if readPlain {
			fmt.Print(content)
			return nil
		}

		dc := ui.NewDisplayContext()
		rendered, err := ui.RenderMarkdown(content, dc.TermWidth)
		if err != nil {
			// Rendering is cosmetic; fall back to the raw note.
			fmt.Print(content)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	readCmd.Flags().BoolVar(&readPlain, "plain", false, "Print raw markdown without styling")
	rootCmd.AddCommand(readCmd)
}
