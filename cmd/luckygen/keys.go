package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/luckystation/luckygen/internal/keys"
)

func newKeysCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the stored API key",
	}

	cmd.AddCommand(
		newKeysSetCmd(app),
		newKeysShowCmd(app),
		newKeysDeleteCmd(app),
	)
	return cmd
}

func newKeysSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Store the Gemini API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := readSecret(app, "Enter API key: ")
			if err != nil {
				return err
			}
			if key == "" {
				return fmt.Errorf("API key cannot be empty")
			}

			store, err := keys.NewStore()
			if err != nil {
				return err
			}
			if err := store.Set(keys.ServiceGemini, key); err != nil {
				return err
			}

			fmt.Fprintf(app.Out, "Stored key %s in %s\n", keys.MaskKey(key), store.Path())
			return nil
		},
	}
}

func newKeysShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored API key (masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := keys.NewStore()
			if err != nil {
				return err
			}

			ok, err := store.Exists(keys.ServiceGemini)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(app.Out, "No key stored. Run 'luckygen keys set'.")
				return nil
			}

			key, err := store.Get(keys.ServiceGemini)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "%s: %s\n", keys.ServiceGemini, keys.MaskKey(key))
			return nil
		},
	}
}

func newKeysDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := keys.NewStore()
			if err != nil {
				return err
			}
			if err := store.Delete(keys.ServiceGemini); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Key deleted")
			return nil
		},
	}
}

// readSecret hides input on a real terminal and falls back to a plain
// line read when stdin is piped.
func readSecret(app *App, promptText string) (string, error) {
	fmt.Fprint(app.Out, promptText)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(app.Out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
