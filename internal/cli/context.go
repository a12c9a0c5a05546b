package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/muninn/internal/assist"
)

var contextNotes int

var contextCmd = &cobra.Command{
	Use:   "context <question...>",
	Short: "Assemble note context for a question",
	Long: `Searches the vault for notes relevant to a question and prints their
contents as a single markdown document, suitable for pasting into an
assistant prompt or piping to another tool.

Examples:
  mnn context "what did we decide about the Q3 roadmap?"
  mnn context --notes 10 "freya onboarding" | pbcopy`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := resolveVault()
		if err != nil {
			return handleError(ErrCodeConfigInvalid, err, "")
		}

		question := strings.Join(args, " ")
		builder := assist.NewContextBuilder(indexCache)
		if contextNotes > 0 {
			builder.MaxNotes = contextNotes
		}

		doc, err := builder.Build(v.Root, question)
		if err != nil {
			return handleError(ErrCodeIOError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"question": question,
				"context":  doc,
			}, nil)
			return nil
		}

		if strings.TrimSpace(doc) == "" {
			fmt.Println("No relevant notes found.")
			return nil
		}
		fmt.Print(doc)
		return nil
	},
}

func init() {
	contextCmd.Flags().IntVar(&contextNotes, "notes", 0, "Maximum notes to include")
	rootCmd.AddCommand(contextCmd)
}
