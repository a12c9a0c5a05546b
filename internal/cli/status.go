package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/muninn/internal/daily"
	"github.com/aidanlsb/muninn/internal/importer"
	"github.com/aidanlsb/muninn/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show vault status",
	Long: `Shows the vault path, whether today's daily note exists, and how many
files are waiting in the import drop folders.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := resolveVault()
		if err != nil {
			return handleError(ErrCodeConfigInvalid, err, "")
		}

		desc := daily.Describe(v, time.Now())
		meetings := importer.Meetings(v)
		voice := importer.Voice(v)

		type pipelineStatus struct {
			Configured bool `json:"configured"`
			Pending    int  `json:"pending"`
		}
		status := struct {
			Vault       string         `json:"vault"`
			Name        string         `json:"name"`
			DailyNote   string         `json:"daily_note"`
			DailyExists bool           `json:"daily_exists"`
			Meetings    pipelineStatus `json:"meetings"`
			Voice       pipelineStatus `json:"voice"`
		}{
			Vault:       v.Root,
			Name:        v.Name,
			DailyNote:   desc.Path,
			DailyExists: desc.Existed,
			Meetings:    pipelineStatus{meetings.Configured(), meetings.PendingCount()},
			Voice:       pipelineStatus{voice.Configured(), voice.PendingCount()},
		}

		if isJSONOutput() {
			outputSuccess(status, nil)
			return nil
		}

		fmt.Println(ui.Header(v.Name))
		fmt.Printf("  vault: %s\n", ui.FilePath(v.Root))
		if desc.Existed {
			fmt.Printf("  today: %s\n", ui.FilePath(desc.Path))
		} else {
			fmt.Printf("  today: not created yet (run 'mnn daily')\n")
		}
		printPipelineStatus("meetings", meetings)
		printPipelineStatus("voice", voice)
		return nil
	},
}

func printPipelineStatus(label string, p *importer.Pipeline) {
	if !p.Configured() {
		fmt.Printf("  %s: not configured\n", label)
		return
	}
	n := p.PendingCount()
	if n == 0 {
		fmt.Printf("  %s: nothing pending\n", label)
		return
	}
	fmt.Printf("  %s: %d pending (run 'mnn import %s')\n", label, n, label)
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
