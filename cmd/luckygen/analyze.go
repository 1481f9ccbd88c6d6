package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/luckystation/luckygen/internal/image"
	"github.com/luckystation/luckygen/internal/security"
	"github.com/luckystation/luckygen/pkg/models"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file|url]",
		Short: "Reverse-engineer a prompt from an image",
		Long: `Analyzes an image and produces the text prompt that would recreate it,
plus a short expert summary of style, material and subject. The input is
a local file or an HTTPS URL. There is no offline fallback; this command
requires an API key.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			loc, err := parseLocale()
			if err != nil {
				return err
			}

			prov, err := buildProvider(app)
			if err != nil {
				return err
			}

			data, mimeType, err := loadAnalysisInput(ctx, app, args[0])
			if err != nil {
				return err
			}

			analysis, err := prov.Analyze(ctx, &models.AnalyzeRequest{
				Image:  data,
				MIME:   mimeType,
				Locale: loc,
			})
			if err != nil {
				fmt.Fprintln(app.Err, guidance(err, loc))
				return err
			}

			fmt.Fprintln(app.Out, analysis.Analysis)
			fmt.Fprintln(app.Out)
			fmt.Fprintf(app.Out, "Prompt: %s\n", analysis.Prompt)
			return nil
		},
	}
}

func loadAnalysisInput(ctx context.Context, app *App, source string) ([]byte, string, error) {
	if strings.HasPrefix(source, "data:") {
		return image.ParseDataURI(source)
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if err := security.ValidateImageURL(source); err != nil {
			return nil, "", err
		}
		data, err := app.NewSaver().Fetch(ctx, source)
		if err != nil {
			return nil, "", fmt.Errorf("failed to fetch image: %w", err)
		}
		return data, image.DetectMIME(data), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	return data, image.DetectMIME(data), nil
}
