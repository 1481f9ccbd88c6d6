// Package repl implements the interactive altar shell: pick a style,
// origin and material once, then generate, draw fortunes and browse the
// gallery without re-typing flags.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/luckystation/luckygen/internal/catalog"
	"github.com/luckystation/luckygen/internal/fortune"
	"github.com/luckystation/luckygen/internal/gallery"
	"github.com/luckystation/luckygen/internal/image"
	"github.com/luckystation/luckygen/internal/profile"
	"github.com/luckystation/luckygen/internal/prompt"
	"github.com/luckystation/luckygen/internal/provider"
	"github.com/luckystation/luckygen/pkg/models"
)

type REPL struct {
	in       io.Reader
	out      io.Writer
	errw     io.Writer
	provider provider.Provider
	composer *prompt.Composer
	oracle   *fortune.Oracle
	gallery  *gallery.Store
	profile  *profile.Store
	saver    *image.Saver
	commands map[string]Command
	running  bool

	style    catalog.StyleOption
	origin   catalog.OriginOption
	material *catalog.MaterialOption
	magic    bool
	locale   models.Locale
}

type Config struct {
	In       io.Reader
	Out      io.Writer
	Err      io.Writer
	Provider provider.Provider // nil when no API key is configured
	Oracle   *fortune.Oracle
	Gallery  *gallery.Store
	Profile  *profile.Store
	Saver    *image.Saver
}

func New(cfg *Config) *REPL {
	style, _ := catalog.StyleByID(catalog.StyleLuckystation)
	origin, _ := catalog.OriginByID(catalog.OriginThai)

	r := &REPL{
		in:       cfg.In,
		out:      cfg.Out,
		errw:     cfg.Err,
		provider: cfg.Provider,
		oracle:   cfg.Oracle,
		gallery:  cfg.Gallery,
		profile:  cfg.Profile,
		saver:    cfg.Saver,
		commands: make(map[string]Command),
		style:    style,
		origin:   origin,
		magic:    cfg.Provider != nil,
		locale:   models.LocaleThai,
	}
	if cfg.Provider != nil {
		r.composer = prompt.NewComposer(cfg.Provider)
	}
	r.registerCommands()
	return r
}

func (r *REPL) Run(ctx context.Context) error {
	r.running = true
	r.printWelcome()

	scanner := bufio.NewScanner(r.in)
	for r.running {
		r.printPrompt()
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := r.execute(ctx, line); err != nil {
			fmt.Fprintf(r.errw, "Error: %v\n", err)
		}
	}

	return scanner.Err()
}

func (r *REPL) execute(ctx context.Context, line string) error {
	parts := parseCommand(line)
	if len(parts) == 0 {
		return nil
	}

	cmdName := strings.ToLower(parts[0])
	args := parts[1:]

	cmd, ok := r.commands[cmdName]
	if !ok {
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmdName)
	}

	return cmd.Execute(ctx, r, args)
}

func (r *REPL) Stop() {
	r.running = false
}

func (r *REPL) printWelcome() {
	fmt.Fprintln(r.out, "luckygen altar shell")
	fmt.Fprintln(r.out, "Type 'help' for available commands, 'quit' to exit.")
	fmt.Fprintln(r.out)
}

func (r *REPL) printPrompt() {
	fmt.Fprintf(r.out, "luckygen [%s/%s]> ", r.style.ID, r.origin.ID)
}

func parseCommand(line string) []string {
	var parts []string
	var current strings.Builder
	inQuotes := false
	quoteChar := rune(0)

	for _, ch := range line {
		switch {
		case ch == '"' || ch == '\'':
			if inQuotes && ch == quoteChar {
				inQuotes = false
				quoteChar = 0
			} else if !inQuotes {
				inQuotes = true
				quoteChar = ch
			} else {
				current.WriteRune(ch)
			}
		case ch == ' ' && !inQuotes:
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(ch)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}
