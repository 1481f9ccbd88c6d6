package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/luckystation/luckygen/internal/fortune"
)

func newFortuneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fortune [deity]",
		Short: "Draw a daily fortune slip (siamsi)",
		Long: `Draws a daily fortune for the named deity or sacred subject. Works
without an API key; an offline fortune deck covers every failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			loc, err := parseLocale()
			if err != nil {
				return err
			}

			// Fortunes degrade offline, so a missing key is not fatal.
			prov, err := buildProvider(app)
			if err != nil {
				prov = nil
			}

			oracle := fortune.NewOracle(prov)
			result := oracle.Daily(ctx, args[0], loc)

			fmt.Fprintln(app.Out, result.Verse)
			fmt.Fprintln(app.Out)
			fmt.Fprintln(app.Out, result.Prediction)
			fmt.Fprintf(app.Out, "Lucky numbers: %s\n", result.LuckyNumbers)
			return nil
		},
	}
}
