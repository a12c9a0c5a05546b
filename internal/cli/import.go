package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/muninn/internal/config"
	"github.com/aidanlsb/muninn/internal/importer"
	"github.com/aidanlsb/muninn/internal/ui"
)

var (
	importKeep bool
	importList bool
)

var importCmd = &cobra.Command{
	Use:   "import [meetings|voice]",
	Short: "Import dropped files into daily notes",
	Long: `Scans the configured drop folders for meeting notes and voice-memo
transcripts, appends each file under its section in the daily note for
today, and archives the source by renaming it with a hidden prefix.

With no argument both pipelines run. Use --list to preview pending files
without importing, and --keep to leave sources un-archived (they will be
picked up again on the next run).`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"meetings", "voice"},
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := resolveVault()
		if err != nil {
			return handleError(ErrCodeConfigInvalid, err, "")
		}

		var pipelines []*importer.Pipeline
		switch {
		case len(args) == 0:
			pipelines = []*importer.Pipeline{importer.Meetings(v), importer.Voice(v)}
		case args[0] == "meetings":
			pipelines = []*importer.Pipeline{importer.Meetings(v)}
		case args[0] == "voice":
			pipelines = []*importer.Pipeline{importer.Voice(v)}
		default:
			return handleErrorMsg(ErrCodeInvalidInput,
				fmt.Sprintf("unknown import kind '%s'", args[0]), "Use 'meetings' or 'voice'")
		}

		if importList {
			return listPending(pipelines)
		}

		now := time.Now()
		var results []importer.Result
		var failures []importFailure
		for _, p := range pipelines {
			if !p.Configured() {
				// Only an error when the user asked for this kind explicitly.
				if len(args) == 1 {
					return handleErrorMsg(ErrCodeImportNotConfigured,
						fmt.Sprintf("%s import folder not configured", p.Kind()),
						fmt.Sprintf("Set imports.%s_folder in %s", p.Kind(), config.VaultConfigFile))
				}
				continue
			}
			out := p.ImportAll(now, !importKeep)
			results = append(results, out.Results...)
			for _, e := range out.Errors {
				failures = append(failures, importFailure{Kind: p.Kind(), Source: e.Source, Error: e.Err.Error()})
			}
		}
		if len(results) > 0 {
			indexCache.Invalidate()
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"imported": results,
				"failed":   failures,
			}, &Meta{Count: len(results)})
			return nil
		}

		if len(results) == 0 && len(failures) == 0 {
			fmt.Println("Nothing to import.")
			return nil
		}
		for _, r := range results {
			fmt.Println(ui.Successf("Imported %s -> %s", r.Source, ui.FilePath(r.DailyNote)))
		}
		for _, f := range failures {
			fmt.Println(ui.Warningf("Skipped %s: %s", f.Source, f.Error))
		}
		return nil
	},
}

type importFailure struct {
	Kind   string `json:"kind"`
	Source string `json:"source"`
	Error  string `json:"error"`
}

func listPending(pipelines []*importer.Pipeline) error {
	type pendingFile struct {
		Kind     string `json:"kind"`
		Name     string `json:"name"`
		Modified string `json:"modified"`
	}
	var pending []pendingFile
	for _, p := range pipelines {
		if !p.Configured() {
			continue
		}
		for _, src := range p.List() {
			pending = append(pending, pendingFile{
				Kind:     p.Kind(),
				Name:     src.Name,
				Modified: src.ModTime.Format(time.RFC3339),
			})
		}
	}

	if isJSONOutput() {
		outputSuccess(pending, &Meta{Count: len(pending)})
		return nil
	}

	if len(pending) == 0 {
		fmt.Println("Nothing pending.")
		return nil
	}
	fmt.Println(ui.Header("Pending imports"))
	for _, f := range pending {
		fmt.Printf("  %-8s %s\n", f.Kind, f.Name)
	}
	return nil
}

func init() {
	importCmd.Flags().BoolVar(&importKeep, "keep", false, "Don't archive sources after importing")
	importCmd.Flags().BoolVar(&importList, "list", false, "List pending files without importing")
	rootCmd.AddCommand(importCmd)
}
