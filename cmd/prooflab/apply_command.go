package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"prooflab/internal/api"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var name string
	var description string
	var assets []string

	cmd := &cobra.Command{
		Use:   "apply <gallery-id>",
		Short: "Create one collection from an accepted suggestion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := splitAssetIDs(assets)
			return ctx.withServices(func(_ *api.GalleryService, suggestions *api.SuggestionService) error {
				resp, err := suggestions.Apply(cmd.Context(), args[0], api.ApplyRequest{
					Name:        name,
					Description: description,
					AssetIDs:    ids,
				})
				if err != nil {
					if resp != nil && resp.CollectionID != "" {
						fmt.Fprintf(cmd.ErrOrStderr(), "Collection %s was created but holds no photos\n", resp.CollectionID)
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created collection %s (%s) with %d photos\n",
					resp.Name, resp.CollectionID, resp.PhotoCount)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Collection name")
	cmd.Flags().StringVar(&description, "description", "", "Collection description")
	cmd.Flags().StringSliceVar(&assets, "assets", nil, "Comma-separated asset ids to assign")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("assets")
	return cmd
}

func newApplyAllCommand(ctx *commandContext) *cobra.Command {
	var fromPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "apply-all <gallery-id>",
		Short: "Create collections for a saved batch of suggestions",
		Long: "Create collections for every suggestion in a file written by " +
			"`prooflab suggest --out`. Suggestions are applied in file order; a " +
			"photo already taken by an earlier collection is skipped by later " +
			"ones, and one failure does not stop the batch.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := loadApplyRequests(fromPath)
			if err != nil {
				return err
			}
			return ctx.withServices(func(_ *api.GalleryService, suggestions *api.SuggestionService) error {
				result, err := suggestions.ApplyAll(cmd.Context(), args[0], reqs)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, result)
				}
				return renderApplyAllResult(cmd, result)
			})
		},
	}

	cmd.Flags().StringVar(&fromPath, "from", "", "Suggestions file written by `prooflab suggest --out`")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	cmd.MarkFlagRequired("from")
	return cmd
}

func renderApplyAllResult(cmd *cobra.Command, result *api.ApplyAllResponse) error {
	rows := make([][]string, 0, len(result.Results))
	for _, outcome := range result.Results {
		status := "ok"
		detail := fmt.Sprintf("%d photos", outcome.PhotoCount)
		if !outcome.Success {
			status = "failed"
			detail = outcome.Error
		}
		rows = append(rows, []string{outcome.Name, status, detail})
	}
	out := cmd.OutOrStdout()
	table := renderTable(
		[]string{"Collection", "Status", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft})
	fmt.Fprintln(out, table)
	fmt.Fprintf(out, "Applied %d of %d suggestions\n", result.SuccessCount, result.TotalCount)
	return nil
}

// loadApplyRequests accepts either a saved analyze response or a bare array
// of apply requests.
func loadApplyRequests(path string) ([]api.ApplyRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suggestions file: %w", err)
	}

	var saved api.AnalyzeResponse
	if err := json.Unmarshal(raw, &saved); err == nil && len(saved.Suggestions) > 0 {
		reqs := make([]api.ApplyRequest, 0, len(saved.Suggestions))
		for _, s := range saved.Suggestions {
			reqs = append(reqs, api.ApplyRequest{
				Name:        s.Name,
				Description: s.Description,
				AssetIDs:    s.AssetIDs,
			})
		}
		return reqs, nil
	}

	var reqs []api.ApplyRequest
	if err := json.Unmarshal(raw, &reqs); err != nil {
		return nil, fmt.Errorf("parse suggestions file %s: %w", path, err)
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("suggestions file %s contains no suggestions", path)
	}
	return reqs, nil
}

func splitAssetIDs(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
