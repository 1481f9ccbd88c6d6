package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/luckystation/luckygen/internal/catalog"
	"github.com/luckystation/luckygen/internal/economy"
	"github.com/luckystation/luckygen/internal/gallery"
	"github.com/luckystation/luckygen/internal/image"
	"github.com/luckystation/luckygen/internal/keys"
	"github.com/luckystation/luckygen/internal/profile"
	"github.com/luckystation/luckygen/internal/prompt"
	"github.com/luckystation/luckygen/internal/provider"
	"github.com/luckystation/luckygen/internal/provider/gemini"
	"github.com/luckystation/luckygen/internal/security"
	"github.com/luckystation/luckygen/pkg/models"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	flagStyle    string
	flagOrigin   string
	flagMaterial string
	flagMagic    bool
	flagLang     string
	flagRef      string
	flagOutput   string
	flagBatch    int
	flagAPIKey   string
	flagVerbose  bool
)

type App struct {
	Out         io.Writer
	Err         io.Writer
	NewProvider func(cfg *provider.Config) (provider.Provider, error)
	NewSaver    func() *image.Saver
	OpenGallery func() (*gallery.Store, error)
	NewProfiles func() (*profile.Store, error)
}

func DefaultApp() *App {
	return &App{
		Out: os.Stdout,
		Err: os.Stderr,
		NewProvider: func(cfg *provider.Config) (provider.Provider, error) {
			return gemini.New(cfg)
		},
		NewSaver:    image.NewSaver,
		OpenGallery: gallery.NewStore,
		NewProfiles: profile.NewStore,
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := DefaultApp()
	rootCmd := newRootCmd(app)
	return rootCmd.Execute()
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "luckygen [keyword]",
		Short: "Generate sacred and auspicious images",
		Long: `luckygen turns a short keyword into a sacred image: amulets, deities,
Sak Yant designs and other auspicious art, rendered in a chosen style,
cultural origin and material.

Examples:
  luckygen "พญานาค"
  luckygen --style artmulet --material gold "วัดระฆัง"
  luckygen --magic=false --lang en "golden deity"
  luckygen fortune "Por Gae"`,
		Args:    cobra.ExactArgs(1),
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, app)
		},
	}

	cmd.Flags().StringVarP(&flagStyle, "style", "s", catalog.StyleLuckystation, "render style (see 'luckygen styles')")
	cmd.Flags().StringVar(&flagOrigin, "origin", catalog.OriginThai, "cultural origin (thai, india, china, japan, nepal)")
	cmd.Flags().StringVarP(&flagMaterial, "material", "m", "", "material finish (gold, bronze, silver, jade, black-metal, mixed)")
	cmd.Flags().BoolVar(&flagMagic, "magic", true, "enhance the keyword with the remote text model")
	cmd.Flags().StringVar(&flagRef, "ref", "", "reference image file")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output filename")
	cmd.Flags().IntVarP(&flagBatch, "batch", "n", 1, "number of images to generate")

	cmd.PersistentFlags().StringVarP(&flagLang, "lang", "l", "th", "output language (th, en)")
	cmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "API key (defaults to stored key or GEMINI_API_KEY)")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "dump API requests and responses to stderr")

	cmd.AddCommand(
		newStylesCmd(app),
		newFortuneCmd(app),
		newAnalyzeCmd(app),
		newGalleryCmd(app),
		newKeysCmd(app),
		newProfileCmd(app),
		newShellCmd(app),
	)

	return cmd
}

func parseLocale() (models.Locale, error) {
	loc := models.Locale(flagLang)
	if !loc.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: th, en)", models.ErrInvalidLocale, flagLang)
	}
	return loc, nil
}

func buildProvider(app *App) (provider.Provider, error) {
	key, source, err := keys.GetAPIKey(flagAPIKey)
	if err != nil {
		return nil, err
	}
	if flagVerbose {
		fmt.Fprintf(app.Err, "Using API key from %s\n", source)
	}
	return app.NewProvider(&provider.Config{APIKey: key, Verbose: flagVerbose})
}

func runGenerate(_ *cobra.Command, args []string, app *App) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	loc, err := parseLocale()
	if err != nil {
		return err
	}

	style, ok := catalog.StyleByID(flagStyle)
	if !ok {
		return fmt.Errorf("unknown style %q: run 'luckygen styles' to list them", flagStyle)
	}
	origin, ok := catalog.OriginByID(flagOrigin)
	if !ok {
		return fmt.Errorf("unknown origin %q", flagOrigin)
	}
	var material *catalog.MaterialOption
	if flagMaterial != "" {
		m, ok := catalog.MaterialByID(flagMaterial)
		if !ok {
			return fmt.Errorf("unknown material %q", flagMaterial)
		}
		material = &m
	}

	keyword := args[0]
	if keyword == "" {
		return models.ErrEmptyPrompt
	}
	if flagBatch < 1 {
		return fmt.Errorf("batch size must be at least 1")
	}
	if flagOutput != "" {
		if err := security.ValidateSavePath(flagOutput); err != nil {
			return err
		}
	}

	var reference []byte
	var referenceMIME string
	if flagRef != "" {
		reference, err = os.ReadFile(flagRef)
		if err != nil {
			return fmt.Errorf("failed to read reference image: %w", err)
		}
		referenceMIME = image.DetectMIME(reference)
	}

	prov, err := buildProvider(app)
	if err != nil {
		return err
	}

	var composed models.ComposedPrompt
	if flagMagic {
		composer := prompt.NewComposer(prov)
		var fellBack bool
		composed, fellBack, err = composer.ComposeAssisted(ctx, keyword, style, origin, material, loc)
		if err != nil {
			fmt.Fprintln(app.Err, guidance(err, loc))
			return err
		}
		if fellBack {
			fmt.Fprintln(app.Err, "Warning: enhancement unavailable, composed directly")
		}
	} else {
		composed = prompt.ComposeDirect(keyword, style, origin, material, loc)
	}

	if flagVerbose {
		fmt.Fprintf(app.Err, "Prompt: %s\n", composed.Prompt)
	}

	req := &models.GenerateRequest{
		Prompt:         composed.Prompt,
		NegativePrompt: prompt.Negative(composed.Prompt, style.ID),
		AspectRatio:    catalog.DefaultAspectRatio,
		Reference:      reference,
		ReferenceMIME:  referenceMIME,
		StyleID:        style.ID,
	}

	fmt.Fprintf(app.Out, "Generating %d image(s) in %s style...\n", flagBatch, style.DisplayName(loc))

	results := make([]*models.GenerateResponse, flagBatch)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < flagBatch; i++ {
		i := i
		g.Go(func() error {
			resp, err := prov.GenerateImage(gctx, req)
			if err != nil {
				return err
			}
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(app.Err, guidance(err, loc))
		return fmt.Errorf("generation failed: %w", err)
	}

	saver := app.NewSaver()
	store, err := app.OpenGallery()
	if err != nil {
		return fmt.Errorf("failed to open gallery: %w", err)
	}
	defer store.Close()

	now := time.Now()
	for i, resp := range results {
		path := image.GeneratePath(flagOutput, i, flagBatch, now)
		if err := saver.Save(resp.Data, path); err != nil {
			return err
		}

		// Stagger IDs so batch records stay unique.
		created := now.Add(time.Duration(i) * time.Millisecond)
		record := &models.GeneratedImage{
			ID:        models.NewImageID(created),
			URL:       image.EncodeDataURI(resp.Data, resp.MIMEType),
			Prompt:    composed.Prompt,
			Timestamp: created.UnixMilli(),
			Blessing:  composed.Blessing,
			StyleID:   style.ID,
			FontTag:   string(composed.FontTag),
		}
		if err := store.Save(record); err != nil {
			fmt.Fprintf(app.Err, "Warning: failed to record in gallery: %v\n", err)
		}

		fmt.Fprintf(app.Out, "Saved: %s (gallery id %s)\n", path, record.ID)
	}

	fmt.Fprintf(app.Out, "Blessing: %s\n", composed.Blessing)
	chargeCredits(app, flagBatch)
	return nil
}

// chargeCredits deducts the batch price when a profile is logged in.
// Billing failures never fail the generation.
func chargeCredits(app *App, count int) {
	profiles, err := app.NewProfiles()
	if err != nil {
		return
	}

	var balance int
	for i := 0; i < economy.BatchCost(count); i++ {
		balance, err = profiles.DeductCredit()
		if err != nil {
			if !errors.Is(err, profile.ErrNotLoggedIn) {
				fmt.Fprintf(app.Err, "Warning: failed to charge credit: %v\n", err)
			}
			return
		}
	}
	fmt.Fprintf(app.Out, "Credits: %d\n", balance)
}

func newStylesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List styles, origins and materials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := parseLocale()
			if err != nil {
				loc = models.LocaleThai
			}

			fmt.Fprintln(app.Out, "Styles:")
			for _, s := range catalog.Styles() {
				fmt.Fprintf(app.Out, "  %-16s %s %-28s %s\n", s.ID, s.Icon, s.DisplayName(loc), s.Describe(loc))
			}
			fmt.Fprintln(app.Out, "\nOrigins:")
			for _, o := range catalog.Origins() {
				fmt.Fprintf(app.Out, "  %-16s %s %s\n", o.ID, o.Flag, o.DisplayName(loc))
			}
			fmt.Fprintln(app.Out, "\nMaterials:")
			for _, m := range catalog.Materials() {
				fmt.Fprintf(app.Out, "  %-16s %s\n", m.ID, m.DisplayName(loc))
			}
			return nil
		},
	}
}
