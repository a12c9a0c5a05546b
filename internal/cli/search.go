package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/muninn/internal/paths"
	"github.com/aidanlsb/muninn/internal/search"
	"github.com/aidanlsb/muninn/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:     "search [query...]",
	Aliases: []string{"s"},
	Short:   "Fuzzy-search notes by name and content",
	Long: `Searches every note in the vault, matching the query fuzzily against
both filenames and content previews. Filename matches rank higher than
content matches. With no query, lists the most recently modified notes.

Examples:
  mnn search standup
  mnn search "quarterly planning"
  mnn search             # Recent notes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := resolveVault()
		if err != nil {
			return handleError(ErrCodeConfigInvalid, err, "")
		}

		index, err := indexCache.GetOrBuild(v.Root)
		if err != nil {
			return handleError(ErrCodeIOError, fmt.Errorf("building index: %w", err), "")
		}

		query := strings.TrimSpace(strings.Join(args, " "))
		results := search.Query(index, query)

		if isJSONOutput() {
			outputSuccess(results, &Meta{Count: len(results)})
			return nil
		}

		if len(results) == 0 {
			fmt.Printf("No results for '%s'\n", query)
			return nil
		}

		for _, r := range results {
			rel := vaultRelative(v.Root, r.Path)
			url := paths.ViewerURL(v.Name, strings.TrimSuffix(rel, v.Ext))
			fmt.Println(hyperlink(url, ui.FilePath(rel)))
			if preview := strings.TrimSpace(r.Preview); preview != "" {
				fmt.Printf("  %s\n", ui.Hint(firstLine(preview)))
			}
		}
		return nil
	},
}

// vaultRelative converts an absolute note path to a vault-relative slash
// path, falling back to the input when the path is outside the root.
func vaultRelative(root, abs string) string {
	rel, err := filepath.Rel(root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
