package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/luckystation/luckygen/internal/image"
	"github.com/luckystation/luckygen/internal/security"
)

func newGalleryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Manage generated images",
	}

	cmd.AddCommand(
		newGalleryListCmd(app),
		newGalleryShowCmd(app),
		newGalleryExportCmd(app),
		newGalleryDeleteCmd(app),
	)
	return cmd
}

func newGalleryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List gallery records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.OpenGallery()
			if err != nil {
				return err
			}
			defer store.Close()

			images, err := store.List()
			if err != nil {
				return err
			}
			if len(images) == 0 {
				fmt.Fprintln(app.Out, "Gallery is empty")
				return nil
			}

			for _, img := range images {
				ts := time.UnixMilli(img.Timestamp).Format("2006-01-02 15:04")
				fmt.Fprintf(app.Out, "%-20s %s  [%s]  %s\n", img.ID, ts, img.StyleID, truncatePrompt(img.Prompt))
			}
			return nil
		},
	}
}

func newGalleryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a gallery record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.OpenGallery()
			if err != nil {
				return err
			}
			defer store.Close()

			img, err := store.Get(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "ID:       %s\n", img.ID)
			fmt.Fprintf(app.Out, "Created:  %s\n", time.UnixMilli(img.Timestamp).Format(time.RFC3339))
			fmt.Fprintf(app.Out, "Style:    %s\n", img.StyleID)
			fmt.Fprintf(app.Out, "Blessing: %s (%s)\n", img.Blessing, img.FontTag)
			fmt.Fprintf(app.Out, "Prompt:   %s\n", img.Prompt)
			return nil
		},
	}
}

func newGalleryExportCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [id]",
		Short: "Write a gallery record back to an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.OpenGallery()
			if err != nil {
				return err
			}
			defer store.Close()

			img, err := store.Get(args[0])
			if err != nil {
				return err
			}

			data, _, err := image.ParseDataURI(img.URL)
			if err != nil {
				return fmt.Errorf("record has no exportable image data: %w", err)
			}

			path := output
			if path == "" {
				path = security.SanitizeFilename(img.ID) + ".png"
			} else if err := security.ValidateSavePath(path); err != nil {
				return err
			}

			if err := app.NewSaver().Save(data, path); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Exported: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output filename")
	return cmd
}

func newGalleryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a gallery record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.OpenGallery()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Deleted %s\n", args[0])
			return nil
		},
	}
}

func truncatePrompt(s string) string {
	runes := []rune(s)
	if len(runes) <= 60 {
		return s
	}
	return string(runes[:57]) + "..."
}
