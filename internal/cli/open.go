package cli

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/muninn/internal/daily"
	"github.com/aidanlsb/muninn/internal/dates"
	"github.com/aidanlsb/muninn/internal/paths"
	"github.com/aidanlsb/muninn/internal/vaultfs"
)

var openInViewer bool

var openCmd = &cobra.Command{
	Use:   "open [note]",
	Short: "Open a note in your editor or vault viewer",
	Long: `Opens a note by vault-relative path, or a daily note by date. With no
argument, opens today's daily note (creating it if needed).

With --viewer the note is opened in the vault viewer app via its URI
scheme instead of the configured editor.

Examples:
  mnn open                       # Today's daily note
  mnn open yesterday
  mnn open inbox/capture-2026-08-30-091500.md
  mnn open projects/roadmap --viewer`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := resolveVault()
		if err != nil {
			return handleError(ErrCodeConfigInvalid, err, "")
		}

		var absPath, relPath string
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}

		if date, derr := dates.ParseDateArg(arg, time.Now()); arg == "" || derr == nil {
			if arg == "" {
				date = time.Now()
			}
			absPath, err = daily.EnsureExists(v, date)
			if err != nil {
				return handleError(ErrCodeIOError, err, "")
			}
			relPath = daily.RelativeForOpen(v, date)
		} else {
			rel := paths.NormalizeRelPath(arg)
			if !strings.HasSuffix(rel, v.Ext) {
				rel += v.Ext
			}
			absPath = filepath.Join(v.Root, filepath.FromSlash(rel))
			if !vaultfs.Exists(absPath) {
				return handleErrorMsg(ErrCodeFileNotFound,
					fmt.Sprintf("note not found: %s", rel),
					"Paths are relative to the vault root; try 'mnn search' to locate it")
			}
			relPath = strings.TrimSuffix(rel, v.Ext)
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":       absPath,
				"viewer_url": paths.ViewerURL(v.Name, relPath),
			}, nil)
			return nil
		}

		if openInViewer {
			url := paths.ViewerURL(v.Name, relPath)
			if err := launchURL(url); err != nil {
				return handleError(ErrCodeEditorFailed, fmt.Errorf("opening viewer: %w", err), "")
			}
			return nil
		}

		openInEditorOrPrintPath(getConfig(), absPath)
		return nil
	},
}

// launchURL hands a URL to the platform opener.
func launchURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}

func init() {
	openCmd.Flags().BoolVar(&openInViewer, "viewer", false, "Open in the vault viewer app instead of the editor")
	rootCmd.AddCommand(openCmd)
}
