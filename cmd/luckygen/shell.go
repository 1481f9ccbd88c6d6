package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/luckystation/luckygen/internal/fortune"
	"github.com/luckystation/luckygen/internal/provider"
	"github.com/luckystation/luckygen/internal/repl"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive altar shell",
		Long: `Starts an interactive session where style, origin and material are
selected once and reused across generations, fortunes and gallery
commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			// The shell starts without a key too; generation then guides
			// the user to 'keys set'.
			var prov provider.Provider
			if p, err := buildProvider(app); err == nil {
				prov = p
			} else {
				fmt.Fprintf(app.Err, "Note: %v\n", err)
			}

			store, err := app.OpenGallery()
			if err != nil {
				return err
			}
			defer store.Close()

			profiles, err := app.NewProfiles()
			if err != nil {
				return err
			}

			r := repl.New(&repl.Config{
				In:       os.Stdin,
				Out:      app.Out,
				Err:      app.Err,
				Provider: prov,
				Oracle:   fortune.NewOracle(prov),
				Gallery:  store,
				Profile:  profiles,
				Saver:    app.NewSaver(),
			})
			return r.Run(ctx)
		},
	}
}
