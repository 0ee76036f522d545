package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prooflab/internal/api"
)

func newGalleryCommand(ctx *commandContext) *cobra.Command {
	galleryCmd := &cobra.Command{
		Use:   "gallery",
		Short: "Manage photo galleries",
	}

	galleryCmd.AddCommand(newGalleryCreateCommand(ctx))
	galleryCmd.AddCommand(newGalleryListCommand(ctx))
	galleryCmd.AddCommand(newGalleryShowCommand(ctx))

	return galleryCmd
}

func newGalleryCreateCommand(ctx *commandContext) *cobra.Command {
	var clientName string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(galleries *api.GalleryService, _ *api.SuggestionService) error {
				view, err := galleries.Create(cmd.Context(), args[0], clientName)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created gallery %s (%s)\n", view.Name, view.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&clientName, "client", "", "Client name for the gallery")
	return cmd
}

func newGalleryListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List galleries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(galleries *api.GalleryService, _ *api.SuggestionService) error {
				views, err := galleries.List(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, views)
				}
				if len(views) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No galleries")
					return nil
				}
				rows := make([][]string, 0, len(views))
				for _, v := range views {
					rows = append(rows, []string{v.ID, v.Name, v.ClientName, v.CreatedAt})
				}
				table := renderTable(
					[]string{"ID", "Name", "Client", "Created"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft})
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func newGalleryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <gallery-id>",
		Short: "Show a gallery with its collections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(galleries *api.GalleryService, _ *api.SuggestionService) error {
				detail, err := galleries.Describe(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, detail)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Gallery: %s (%s)\n", detail.Gallery.Name, detail.Gallery.ID)
				if detail.Gallery.ClientName != "" {
					fmt.Fprintf(out, "Client: %s\n", detail.Gallery.ClientName)
				}
				fmt.Fprintf(out, "Photos: %d (%d uncategorized)\n", detail.AssetCount, detail.UncategorizedCount)
				if len(detail.Collections) == 0 {
					fmt.Fprintln(out, "No collections yet")
					return nil
				}
				rows := make([][]string, 0, len(detail.Collections))
				for _, c := range detail.Collections {
					rows = append(rows, []string{fmt.Sprintf("%d", c.SortOrder), c.ID, c.Name, c.Description})
				}
				table := renderTable(
					[]string{"#", "ID", "Name", "Description"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft})
				fmt.Fprintln(out, table)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}
