package cli

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/aidanlsb/muninn/internal/config"
)

// openInEditor opens a file in the user's configured editor.
// Returns true if the editor was launched, false otherwise.
// The process is started in the background (non-blocking).
//
// If the editor contains spaces (e.g., "open -a Obsidian"), it is
// executed via shell to handle the arguments correctly.
func openInEditor(cfg *config.Config, filePath string) bool {
	if cfg == nil {
		return false
	}

	editor := cfg.GetEditor()
	if editor == "" {
		return false
	}

	var cmd *exec.Cmd
	if strings.Contains(editor, " ") {
		cmd = exec.Command("sh", "-c", editor+" "+shellQuote(filePath))
	} else {
		cmd = exec.Command(editor, filePath)
	}

	if err := cmd.Start(); err != nil {
		fmt.Printf("Warning: failed to open editor '%s': %v\n", editor, err)
		return false
	}
	return true
}

// shellQuote quotes a string for safe use in shell commands.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}

// openInEditorOrPrintPath opens a file in the editor, or prints the path if
// no editor is configured.
func openInEditorOrPrintPath(cfg *config.Config, filePath string) {
	if !openInEditor(cfg, filePath) {
		fmt.Printf("Open: %s\n", filePath)
		fmt.Println("(Set 'editor' in ~/.config/muninn/config.toml or $EDITOR to open automatically)")
	}
}
