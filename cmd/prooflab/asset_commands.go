package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"prooflab/internal/api"
)

func newAssetCommand(ctx *commandContext) *cobra.Command {
	assetCmd := &cobra.Command{
		Use:   "asset",
		Short: "Manage gallery photos",
	}

	assetCmd.AddCommand(newAssetAddCommand(ctx))
	assetCmd.AddCommand(newAssetImportCommand(ctx))
	assetCmd.AddCommand(newAssetListCommand(ctx))

	return assetCmd
}

func newAssetAddCommand(ctx *commandContext) *cobra.Command {
	var thumbnailURL string
	var exifArg string

	cmd := &cobra.Command{
		Use:   "add <gallery-id> <filename>",
		Short: "Register one photo in a gallery",
		Long: "Register one photo in a gallery. EXIF metadata is passed with --exif " +
			"as inline JSON or as @path to read a JSON file.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			exif, err := resolveExifArg(exifArg)
			if err != nil {
				return err
			}
			return ctx.withServices(func(galleries *api.GalleryService, _ *api.SuggestionService) error {
				view, err := galleries.AddAsset(cmd.Context(), args[0], api.NewAssetRequest{
					Filename:     args[1],
					ThumbnailURL: thumbnailURL,
					Exif:         exif,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", view.Filename, view.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&thumbnailURL, "thumbnail", "", "Thumbnail URL for the photo")
	cmd.Flags().StringVar(&exifArg, "exif", "", "EXIF metadata as JSON, or @path to a JSON file")
	return cmd
}

func newAssetImportCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <gallery-id> <manifest.json>",
		Short: "Import photos from a JSON manifest",
		Long: "Import photos from a JSON manifest: an array of objects with " +
			"filename, thumbnailUrl and exif fields. Photos are registered in " +
			"manifest order; the first failure stops the import.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read manifest: %w", err)
			}
			var entries []api.NewAssetRequest
			if err := json.Unmarshal(raw, &entries); err != nil {
				return fmt.Errorf("parse manifest %s: %w", args[1], err)
			}
			if len(entries) == 0 {
				return fmt.Errorf("manifest %s contains no entries", args[1])
			}
			return ctx.withServices(func(galleries *api.GalleryService, _ *api.SuggestionService) error {
				for i, entry := range entries {
					if _, err := galleries.AddAsset(cmd.Context(), args[0], entry); err != nil {
						return fmt.Errorf("manifest entry %d (%s): %w", i+1, entry.Filename, err)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d photos\n", len(entries))
				return nil
			})
		},
	}
	return cmd
}

func newAssetListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var uncategorizedOnly bool

	cmd := &cobra.Command{
		Use:   "list <gallery-id>",
		Short: "List a gallery's photos in import order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(func(galleries *api.GalleryService, _ *api.SuggestionService) error {
				views, err := galleries.ListAssets(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if uncategorizedOnly {
					filtered := views[:0]
					for _, v := range views {
						if v.CollectionID == "" {
							filtered = append(filtered, v)
						}
					}
					views = filtered
				}
				if jsonOutput {
					return writeJSON(cmd, views)
				}
				if len(views) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No photos")
					return nil
				}
				rows := make([][]string, 0, len(views))
				for _, v := range views {
					collection := v.CollectionID
					if collection == "" {
						collection = "-"
					}
					rows = append(rows, []string{v.ID, v.Filename, collection})
				}
				table := renderTable(
					[]string{"ID", "Filename", "Collection"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft})
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	cmd.Flags().BoolVar(&uncategorizedOnly, "uncategorized", false, "Show only photos not yet in a collection")
	return cmd
}

func resolveExifArg(arg string) (json.RawMessage, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, nil
	}
	if strings.HasPrefix(arg, "@") {
		raw, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, fmt.Errorf("read exif file: %w", err)
		}
		return raw, nil
	}
	return json.RawMessage(arg), nil
}
