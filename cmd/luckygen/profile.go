package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/luckystation/luckygen/internal/economy"
	"github.com/luckystation/luckygen/internal/profile"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the local account and credits",
	}

	cmd.AddCommand(
		newProfileLoginCmd(app),
		newProfileLogoutCmd(app),
		newProfileShowCmd(app),
		newProfileClaimCmd(app),
		newProfileAdCmd(app),
	)
	return cmd
}

func newProfileLoginCmd(app *App) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Create the local profile with welcome credits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.NewProfiles()
			if err != nil {
				return err
			}

			p, err := profiles.Login(name, email)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Logged in as %s (%d credits)\n", p.Name, p.Credits)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	return cmd
}

func newProfileLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the local profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.NewProfiles()
			if err != nil {
				return err
			}
			if err := profiles.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Logged out")
			return nil
		},
	}
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile and credit balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.NewProfiles()
			if err != nil {
				return err
			}

			p, err := profiles.Load()
			if err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Name:    %s\n", p.Name)
			if p.Email != "" {
				fmt.Fprintf(app.Out, "Email:   %s\n", p.Email)
			}
			fmt.Fprintf(app.Out, "Credits: %d\n", p.Credits)
			if p.IsVIP {
				fmt.Fprintln(app.Out, "Tier:    VIP")
			}
			if p.LastDailyClaim > 0 {
				fmt.Fprintf(app.Out, "Last daily claim: %s\n", time.UnixMilli(p.LastDailyClaim).Format("2006-01-02 15:04"))
			}

			if ok, err := profiles.CanClaimDaily(); err == nil && ok {
				fmt.Fprintln(app.Out, "Daily reward available: run 'luckygen profile claim'")
			}
			return nil
		},
	}
}

func newProfileClaimCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "claim",
		Short: "Claim the daily credit reward",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.NewProfiles()
			if err != nil {
				return err
			}

			balance, err := profiles.ClaimDaily()
			if errors.Is(err, profile.ErrAlreadyClaimed) {
				fmt.Fprintln(app.Out, "Already claimed today. Come back tomorrow.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Claimed %d credits. Balance: %d\n", economy.DailyReward, balance)
			return nil
		},
	}
}

func newProfileAdCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ad",
		Short: "Watch a simulated ad for bonus credits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			profiles, err := app.NewProfiles()
			if err != nil {
				return err
			}

			fmt.Fprintln(app.Out, "Watching ad...")
			balance, err := profiles.WatchAd(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Earned %d credits. Balance: %d\n", economy.AdReward, balance)
			return nil
		},
	}
}
