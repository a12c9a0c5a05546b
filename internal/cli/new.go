package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/muninn/internal/paths"
	"github.com/aidanlsb/muninn/internal/ui"
	"github.com/aidanlsb/muninn/internal/vaultfs"
)

var (
	newDir    string
	newNoOpen bool
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a new note",
	Long: `Creates a note named after a slug of the title, with the title as its
heading, and opens it in your editor.

Examples:
  mnn new "Quarterly Planning"            # quarterly-planning.md in the vault root
  mnn new "Freya 1:1" --dir people        # people/freya-1-1.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := resolveVault()
		if err != nil {
			return handleError(ErrCodeConfigInvalid, err, "")
		}

		title := strings.TrimSpace(args[0])
		if title == "" {
			return handleErrorMsg(ErrCodeMissingArgument, "title cannot be empty", "")
		}

		name := slug.Make(title)
		if name == "" {
			return handleErrorMsg(ErrCodeInvalidInput,
				fmt.Sprintf("title '%s' produces an empty filename", title), "")
		}

		rel := name + v.Ext
		if newDir != "" {
			rel = filepath.Join(paths.NormalizeDirRoot(newDir), rel)
		}
		path := filepath.Join(v.Root, rel)

		if vaultfs.Exists(path) {
			return handleErrorMsg(ErrCodeFileExists,
				fmt.Sprintf("note already exists: %s", rel),
				fmt.Sprintf("Open it with 'mnn open %s'", rel))
		}

		content := "# " + title + "\n\n"
		if err := vaultfs.WriteFile(path, content); err != nil {
			return handleError(ErrCodeIOError, err, "")
		}
		indexCache.Invalidate()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":  path,
				"title": title,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Created %s", ui.FilePath(path)))
		if !newNoOpen {
			openInEditorOrPrintPath(getConfig(), path)
		}
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newDir, "dir", "", "Vault-relative directory for the note")
	newCmd.Flags().BoolVar(&newNoOpen, "no-open", false, "Don't open the note in an editor")
	rootCmd.AddCommand(newCmd)
}
