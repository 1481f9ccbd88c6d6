package repl

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/luckystation/luckygen/internal/catalog"
	"github.com/luckystation/luckygen/internal/economy"
	"github.com/luckystation/luckygen/internal/image"
	"github.com/luckystation/luckygen/internal/profile"
	"github.com/luckystation/luckygen/internal/prompt"
	"github.com/luckystation/luckygen/pkg/models"
)

type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Usage() string
	Execute(ctx context.Context, r *REPL, args []string) error
}

func (r *REPL) registerCommands() {
	commands := []Command{
		&GenerateCommand{},
		&StyleCommand{},
		&OriginCommand{},
		&MaterialCommand{},
		&MagicCommand{},
		&LangCommand{},
		&FortuneCommand{},
		&GalleryCommand{},
		&CreditsCommand{},
		&ClaimCommand{},
		&HelpCommand{},
		&QuitCommand{},
	}

	for _, cmd := range commands {
		r.commands[cmd.Name()] = cmd
		for _, alias := range cmd.Aliases() {
			r.commands[alias] = cmd
		}
	}
}

func (r *REPL) compose(ctx context.Context, input string) (models.ComposedPrompt, error) {
	if r.magic && r.composer != nil {
		composed, fellBack, err := r.composer.ComposeAssisted(ctx, input, r.style, r.origin, r.material, r.locale)
		if err != nil {
			return models.ComposedPrompt{}, err
		}
		if fellBack {
			fmt.Fprintln(r.errw, "Warning: enhancement unavailable, composed directly")
		}
		return composed, nil
	}
	return prompt.ComposeDirect(input, r.style, r.origin, r.material, r.locale), nil
}

// GenerateCommand renders an image with the current altar settings.
type GenerateCommand struct{}

func (c *GenerateCommand) Name() string        { return "generate" }
func (c *GenerateCommand) Aliases() []string   { return []string{"gen", "g"} }
func (c *GenerateCommand) Description() string { return "Generate a sacred image from a keyword" }
func (c *GenerateCommand) Usage() string       { return "generate <keyword>" }

func (c *GenerateCommand) Execute(ctx context.Context, r *REPL, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", c.Usage())
	}
	if r.provider == nil {
		return fmt.Errorf("generation requires an API key: run 'luckygen keys set' first")
	}

	input := strings.Join(args, " ")
	composed, err := r.compose(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Generating %s...\n", r.style.DisplayName(r.locale))

	resp, err := r.provider.GenerateImage(ctx, &models.GenerateRequest{
		Prompt:         composed.Prompt,
		NegativePrompt: prompt.Negative(composed.Prompt, r.style.ID),
		AspectRatio:    catalog.DefaultAspectRatio,
		StyleID:        r.style.ID,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	now := time.Now()
	path := image.GeneratePath("", 0, 1, now)
	if err := r.saver.Save(resp.Data, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	record := &models.GeneratedImage{
		ID:        models.NewImageID(now),
		URL:       image.EncodeDataURI(resp.Data, resp.MIMEType),
		Prompt:    composed.Prompt,
		Timestamp: now.UnixMilli(),
		Blessing:  composed.Blessing,
		StyleID:   r.style.ID,
		FontTag:   string(composed.FontTag),
	}
	if err := r.gallery.Save(record); err != nil {
		fmt.Fprintf(r.errw, "Warning: failed to record in gallery: %v\n", err)
	}

	fmt.Fprintf(r.out, "Saved: %s (gallery id %s)\n", path, record.ID)
	fmt.Fprintf(r.out, "Blessing: %s\n", composed.Blessing)

	balance, err := r.profile.DeductCredit()
	if err != nil {
		if !errors.Is(err, profile.ErrNotLoggedIn) {
			fmt.Fprintf(r.errw, "Warning: failed to charge credit: %v\n", err)
		}
		return nil
	}
	fmt.Fprintf(r.out, "Credits: %d\n", balance)
	return nil
}

// StyleCommand lists or selects the render style.
type StyleCommand struct{}

func (c *StyleCommand) Name() string        { return "style" }
func (c *StyleCommand) Aliases() []string   { return []string{"s"} }
func (c *StyleCommand) Description() string { return "List styles or select one" }
func (c *StyleCommand) Usage() string       { return "style [id]" }

func (c *StyleCommand) Execute(ctx context.Context, r *REPL, args []string) error {
	if len(args) == 0 {
		for _, s := range catalog.Styles() {
			marker := "  "
			if s.ID == r.style.ID {
				marker = "* "
			}
			fmt.Fprintf(r.out, "%s%-16s %s %s\n", marker, s.ID, s.Icon, s.DisplayName(r.locale))
		}
		return nil
	}

	style, ok := catalog.StyleByID(args[0])
	if !ok {
		return fmt.Errorf("unknown style: %s", args[0])
	}
	r.style = style
	fmt.Fprintf(r.out, "Style set to %s\n", style.DisplayName(r.locale))
	return nil
}

// OriginCommand lists or selects the cultural origin.
type OriginCommand struct{}

func (c *OriginCommand) Name() string        { return "origin" }
func (c *OriginCommand) Aliases() []string   { return []string{"o"} }
func (c *OriginCommand) Description() string { return "List origins or select one" }
func (c *OriginCommand) Usage() string       { return "origin [id]" }

func (c *OriginCommand) Execute(ctx context.Context, r *REPL, args []string) error {
	if len(args) == 0 {
		for _, o := range catalog.Origins() {
			marker := "  "
			if o.ID == r.origin.ID {
				marker = "* "
			}
			fmt.Fprintf(r.out, "%s%-8s %s %s\n", marker, o.ID, o.Flag, o.DisplayName(r.locale))
		}
		return nil
	}

	origin, ok := catalog.OriginByID(args[0])
	if !ok {
		return fmt.Errorf("unknown origin: %s", args[0])
	}
	r.origin = origin
	fmt.Fprintf(r.out, "Origin set to %s\n", origin.DisplayName(r.locale))
	return nil
}

// MaterialCommand lists, selects or clears the material.
type MaterialCommand struct{}

func (c *MaterialCommand) Name() string        { return "material" }
func (c *MaterialCommand) Aliases() []string   { return []string{"m"} }
func (c *MaterialCommand) Description() string { return "List materials, select one, or 'none'" }
func (c *MaterialCommand) Usage() string       { return "material [id|none]" }

func (c *MaterialCommand) Execute(ctx context.Context, r *REPL, args []string) error {
	if len(args) == 0 {
		for _, m := range catalog.Materials() {
			marker := "  "
			if r.material != nil && m.ID == r.material.ID {
				marker = "* "
			}
			fmt.Fprintf(r.out, "%s%-12s %s\n", marker, m.ID, m.DisplayName(r.locale))
		}
		return nil
	}

	if args[0] == "none" {
		r.material = nil
		fmt.Fprintln(r.out, "Material cleared")
		return nil
	}

	material, ok := catalog.MaterialByID(args[0])
	if !ok {
		return fmt.Errorf("unknown material: %s", args[0])
	}
	r.material = &material
	fmt.Fprintf(r.out, "Material set to %s\n", material.DisplayName(r.locale))
	return nil
}

// MagicCommand toggles assisted prompt enhancement.
type MagicCommand struct{}

func (c *MagicCommand) Name() string        { return "magic" }
func (c *MagicCommand) Aliases() []string   { return nil }
func (c *MagicCommand) Description() string { return "Toggle assisted prompt enhancement" }
func (c *MagicCommand) Usage() string       { return "magic [on|off]" }

func (c *MagicCommand) Execute(ctx context.Context, r *REPL, args []string) error {
	switch {
	case len(args) == 0:
		r.magic = !r.magic
	case args[0] == "on":
		r.magic = true
	case args[0] == "off":
		r.magic = false
	default:
		return fmt.Errorf("usage: %s", c.Usage())
	}

	if r.magic && r.composer == nil {
		r.magic = false
		return fmt.Errorf("magic enhance requires an API key")
	}

	state := "off"
	if r.magic {
		state = "on"
	}
	fmt.Fprintf(r.out, "Magic enhance %s\n", state)
	return nil
}

// LangCommand switches the blessing and fortune locale.
type LangCommand struct{}

func (c *LangCommand) Name() string        { return "lang" }
func (c *LangCommand) Aliases() []string   { return nil }
func (c *LangCommand) Description() string { return "Switch language (th/en)" }
func (c *LangCommand) Usage() string       { return "lang <th|en>" }

func (c *LangCommand) Execute(ctx context.Context, r *REPL, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "Language: %s\n", r.locale)
		return nil
	}

	loc := models.Locale(args[0])
	if !loc.IsValid() {
		return fmt.Errorf("%w: %s", models.ErrInvalidLocale, args[0])
	}
	r.locale = loc
	fmt.Fprintf(r.out, "Language set to %s\n", loc)
	return nil
}

// FortuneCommand draws a daily fortune slip.
type FortuneCommand struct{}

func (c *FortuneCommand) Name() string        { return "fortune" }
func (c *FortuneCommand) Aliases() []string   { return []string{"f"} }
func (c *FortuneCommand) Description() string { return "Draw a daily fortune for a deity" }
func (c *FortuneCommand) Usage() string       { return "fortune <deity>" }

func (c *FortuneCommand) Execute(ctx context.Context, r *REPL, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s", c.Usage())
	}

	subject := strings.Join(args, " ")
	result := r.oracle.Daily(ctx, subject, r.locale)

	fmt.Fprintln(r.out, result.Verse)
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, result.Prediction)
	fmt.Fprintf(r.out, "Lucky numbers: %s\n", result.LuckyNumbers)
	return nil
}

// GalleryCommand lists or deletes gallery records.
type GalleryCommand struct{}

func (c *GalleryCommand) Name() string        { return "gallery" }
func (c *GalleryCommand) Aliases() []string   { return nil }
func (c *GalleryCommand) Description() string { return "List gallery records or delete one" }
func (c *GalleryCommand) Usage() string       { return "gallery [delete <id>]" }

func (c *GalleryCommand) Execute(ctx context.Context, r *REPL, args []string) error {
	if len(args) >= 2 && args[0] == "delete" {
		if err := r.gallery.Delete(args[1]); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Deleted %s\n", args[1])
		return nil
	}
	if len(args) > 0 {
		return fmt.Errorf("usage: %s", c.Usage())
	}

	images, err := r.gallery.List()
	if err != nil {
		return err
	}
	if len(images) == 0 {
		fmt.Fprintln(r.out, "Gallery is empty")
		return nil
	}

	for _, img := range images {
		ts := time.UnixMilli(img.Timestamp).Format("2006-01-02 15:04")
		fmt.Fprintf(r.out, "%-20s %s  %s\n", img.ID, ts, truncate(img.Prompt, 60))
	}
	return nil
}

// CreditsCommand shows the credit balance.
type CreditsCommand struct{}

func (c *CreditsCommand) Name() string        { return "credits" }
func (c *CreditsCommand) Aliases() []string   { return nil }
func (c *CreditsCommand) Description() string { return "Show credit balance" }
func (c *CreditsCommand) Usage() string       { return "credits" }

func (c *CreditsCommand) Execute(ctx context.Context, r *REPL, args []string) error {
	p, err := r.profile.Load()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "%s: %d credits\n", p.Name, p.Credits)
	return nil
}

// ClaimCommand claims the daily credit reward.
type ClaimCommand struct{}

func (c *ClaimCommand) Name() string        { return "claim" }
func (c *ClaimCommand) Aliases() []string   { return nil }
func (c *ClaimCommand) Description() string { return "Claim the daily credit reward" }
func (c *ClaimCommand) Usage() string       { return "claim" }

func (c *ClaimCommand) Execute(ctx context.Context, r *REPL, args []string) error {
	balance, err := r.profile.ClaimDaily()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Claimed %d credits. Balance: %d\n", economy.DailyReward, balance)
	return nil
}

// HelpCommand shows the command list.
type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Aliases() []string   { return []string{"h", "?"} }
func (c *HelpCommand) Description() string { return "Show available commands" }
func (c *HelpCommand) Usage() string       { return "help" }

func (c *HelpCommand) Execute(ctx context.Context, r *REPL, args []string) error {
	seen := make(map[string]bool)
	var names []string
	for name, cmd := range r.commands {
		if name != cmd.Name() || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(r.out, "Available commands:")
	for _, name := range names {
		cmd := r.commands[name]
		fmt.Fprintf(r.out, "  %-28s %s\n", cmd.Usage(), cmd.Description())
	}
	return nil
}

// QuitCommand exits the shell.
type QuitCommand struct{}

func (c *QuitCommand) Name() string        { return "quit" }
func (c *QuitCommand) Aliases() []string   { return []string{"exit", "q"} }
func (c *QuitCommand) Description() string { return "Exit the shell" }
func (c *QuitCommand) Usage() string       { return "quit" }

func (c *QuitCommand) Execute(ctx context.Context, r *REPL, args []string) error {
	r.Stop()
	fmt.Fprintln(r.out, "Goodbye")
	return nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
