package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"prooflab/internal/api"
)

func newSuggestCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "suggest <gallery-id>",
		Short: "Propose collections for uncategorized photos",
		Long: "Analyze the gallery's uncategorized photos and propose collections " +
			"grouped by capture date, filename prefix and camera. Use --out to save " +
			"the suggestions for a later apply-all run.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(_ *api.GalleryService, suggestions *api.SuggestionService) error {
				resp, err := suggestions.Analyze(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				if outPath != "" {
					if err := saveAnalyzeResponse(outPath, resp); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Saved %d suggestions to %s\n", len(resp.Suggestions), outPath)
				}
				if jsonOutput {
					return writeJSON(cmd, resp)
				}
				return renderSuggestions(cmd, resp)
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the suggestions to a JSON file")
	return cmd
}

func renderSuggestions(cmd *cobra.Command, resp *api.AnalyzeResponse) error {
	out := cmd.OutOrStdout()
	if len(resp.Suggestions) == 0 {
		if resp.Message != "" {
			fmt.Fprintln(out, resp.Message)
		}
		return nil
	}

	fmt.Fprintf(out, "%d uncategorized photos, %d suggestions\n", resp.TotalUncategorized, len(resp.Suggestions))
	rows := make([][]string, 0, len(resp.Suggestions))
	for i, s := range resp.Suggestions {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			s.Type,
			s.Name,
			fmt.Sprintf("%d", s.PhotoCount),
			previewSummary(s),
		})
	}
	table := renderTable(
		[]string{"#", "Type", "Name", "Photos", "Previews"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft})
	fmt.Fprintln(out, table)
	return nil
}

func previewSummary(s api.SuggestionView) string {
	if len(s.Previews) == 0 {
		return "-"
	}
	ids := make([]string, 0, len(s.Previews))
	for _, p := range s.Previews {
		ids = append(ids, p.AssetID)
	}
	return strings.Join(ids, ", ")
}

func saveAnalyzeResponse(path string, resp *api.AnalyzeResponse) error {
	raw, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encode suggestions: %w", err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write suggestions file: %w", err)
	}
	return nil
}
