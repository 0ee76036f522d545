package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prooflab/internal/api"
)

func newCollectionCommand(ctx *commandContext) *cobra.Command {
	collectionCmd := &cobra.Command{
		Use:   "collection",
		Short: "Inspect gallery collections",
	}

	collectionCmd.AddCommand(newCollectionListCommand(ctx))

	return collectionCmd
}

func newCollectionListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list <gallery-id>",
		Short: "List a gallery's collections in display order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(galleries *api.GalleryService, _ *api.SuggestionService) error {
				views, err := galleries.ListCollections(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, views)
				}
				if len(views) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No collections")
					return nil
				}
				rows := make([][]string, 0, len(views))
				for _, v := range views {
					rows = append(rows, []string{fmt.Sprintf("%d", v.SortOrder), v.ID, v.Name, v.Description})
				}
				table := renderTable(
					[]string{"#", "ID", "Name", "Description"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft})
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}
