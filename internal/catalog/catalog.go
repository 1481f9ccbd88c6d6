// Package catalog holds the immutable option tables the composer and CLI
// select from: art-origin traditions, mood/tone styles, amulet materials and
// the supported aspect ratios. Tables are fixed at startup and never mutated.
package catalog

import "github.com/luckystation/luckygen/pkg/models"

// Style IDs with special-cased composition rules.
const (
	StyleLuckystation = "luckystation"
	StyleStandard     = "standard"
	StyleSakYant      = "sak-yant"
	StyleSacredDeity  = "sacred-deity"
	StyleChibi        = "chibi-pastel"
	StyleArtmulet     = "artmulet"
)

// Origin IDs with special-cased composition rules.
const (
	OriginThai  = "thai"
	OriginIndia = "india"
	OriginChina = "china"
	OriginJapan = "japan"
	OriginNepal = "nepal"
)

// StyleOption is a selectable mood/tone preset.
type StyleOption struct {
	ID             string
	Name           string
	NameTH         string
	Description    string
	DescriptionTH  string
	PromptModifier string
	Icon           string
	Color          string
}

// DisplayName resolves the per-locale display name.
func (s StyleOption) DisplayName(loc models.Locale) string {
	if loc == models.LocaleThai {
		return s.NameTH
	}
	return s.Name
}

// Describe resolves the per-locale short description.
func (s StyleOption) Describe(loc models.Locale) string {
	if loc == models.LocaleThai {
		return s.DescriptionTH
	}
	return s.Description
}

// OriginOption is a selectable art tradition.
type OriginOption struct {
	ID             string
	Name           string
	NameTH         string
	PromptModifier string
	Flag           string
	FlagCode       string
}

func (o OriginOption) DisplayName(loc models.Locale) string {
	if loc == models.LocaleThai {
		return o.NameTH
	}
	return o.Name
}

// MaterialOption is a selectable amulet material; only meaningful for the
// sculpture-like styles but accepted everywhere.
type MaterialOption struct {
	ID             string
	Name           string
	NameTH         string
	PromptModifier string
	Color          string
}

func (m MaterialOption) DisplayName(loc models.Locale) string {
	if loc == models.LocaleThai {
		return m.NameTH
	}
	return m.Name
}

// AspectRatio is a supported output shape.
type AspectRatio struct {
	Label string
	Value string
}

// DefaultAspectRatio is the wallpaper shape; the only ratio the product
// currently offers.
const DefaultAspectRatio = "9:16"

func AspectRatios() []AspectRatio {
	return []AspectRatio{{Label: "Wallpaper (9:16)", Value: "9:16"}}
}

// Styles returns the style catalog in fixed display order.
func Styles() []StyleOption {
	out := make([]StyleOption, len(styles))
	copy(out, styles)
	return out
}

// Origins returns the origin catalog in fixed display order.
func Origins() []OriginOption {
	out := make([]OriginOption, len(origins))
	copy(out, origins)
	return out
}

// Materials returns the material catalog in fixed display order.
func Materials() []MaterialOption {
	out := make([]MaterialOption, len(materials))
	copy(out, materials)
	return out
}

func StyleByID(id string) (StyleOption, bool) {
	for _, s := range styles {
		if s.ID == id {
			return s, true
		}
	}
	return StyleOption{}, false
}

func OriginByID(id string) (OriginOption, bool) {
	for _, o := range origins {
		if o.ID == id {
			return o, true
		}
	}
	return OriginOption{}, false
}

func MaterialByID(id string) (MaterialOption, bool) {
	for _, m := range materials {
		if m.ID == id {
			return m, true
		}
	}
	return MaterialOption{}, false
}
