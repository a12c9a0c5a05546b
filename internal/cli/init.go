package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/muninn/internal/config"
	"github.com/aidanlsb/muninn/internal/paths"
	"github.com/aidanlsb/muninn/internal/ui"
	"github.com/aidanlsb/muninn/internal/vaultfs"
)

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Initialize a new vault",
	Long: `Creates a new vault at the specified path with default configuration.

Creates:
  - muninn.yaml  (vault configuration, commented defaults)
  - daily/       (daily notes)
  - inbox/       (captured notes)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := paths.Expand(args[0])

		if err := vaultfs.EnsureDir(path); err != nil {
			return handleError(ErrCodeIOError, fmt.Errorf("creating vault directory: %w", err), "")
		}

		created, err := config.CreateDefaultVaultConfig(path)
		if err != nil {
			return handleError(ErrCodeIOError, err, "")
		}

		vc, err := config.LoadVaultConfig(path)
		if err != nil {
			return handleError(ErrCodeConfigInvalid, err, "")
		}
		v, err := config.ResolveVault(path, vc)
		if err != nil {
			return handleError(ErrCodeConfigInvalid, err, "")
		}
		for _, dir := range []string{v.DailyPath(), v.InboxPath()} {
			if err := vaultfs.EnsureDir(dir); err != nil {
				return handleError(ErrCodeIOError, err, "")
			}
		}

		if err := ensureGitignore(v.Root); err != nil {
			return handleError(ErrCodeIOError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":           v.Root,
				"config_created": created,
			}, nil)
			return nil
		}

		if created {
			fmt.Println(ui.Successf("Initialized vault at %s", ui.FilePath(v.Root)))
		} else {
			fmt.Println(ui.Info(fmt.Sprintf("Vault already configured at %s", v.Root)))
		}

		cfgPath := configPath
		if cfgPath == "" {
			cfgPath = config.DefaultPath()
		}
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			fmt.Println()
			fmt.Println(ui.Hint("To make this your default vault, create " + cfgPath + " with:"))
			fmt.Printf("\n  default_vault = %q\n\n  [vaults]\n  %s = %q\n", v.Name, v.Name, v.Root)
		}
		return nil
	},
}

// ensureGitignore appends vault housekeeping entries to the vault's
// .gitignore, preserving whatever is already there.
func ensureGitignore(root string) error {
	entries := []string{".obsidian/", ".trash/"}

	gitignorePath := filepath.Join(root, ".gitignore")
	existing := ""
	if data, err := os.ReadFile(gitignorePath); err == nil {
		existing = string(data)
	}

	var missing []string
	for _, entry := range entries {
		if !strings.Contains(existing, entry) {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	content := existing
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += strings.Join(missing, "\n") + "\n"

	return os.WriteFile(gitignorePath, []byte(content), 0o644)
}

func init() {
	rootCmd.AddCommand(initCmd)
}
