package prompt

import (
	"strings"
	"testing"

	"github.com/luckystation/luckygen/internal/catalog"
)

func TestNegative_BaseAlwaysPresent(t *testing.T) {
	got := Negative("a golden deity", catalog.StyleStandard)
	if !strings.HasPrefix(got, baseNegative) {
		t.Errorf("Negative() does not start with base constraints: %q", got)
	}
}

func TestNegative_GarudaIconographyCorrection(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   bool
	}{
		{"vishnu", "Lord Vishnu riding through clouds", true},
		{"garuda uppercase", "GARUDA with spread wings", true},
		{"krut", "thai krut emblem", true},
		{"narayana", "Narayana on the cosmic ocean", true},
		{"unrelated", "a clay amulet", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Negative(tt.prompt, catalog.StyleStandard)
			has := strings.Contains(got, "Vishnu having wings")
			if has != tt.want {
				t.Errorf("Negative(%q) garuda correction = %v, want %v", tt.prompt, has, tt.want)
			}
		})
	}
}

func TestNegative_SakYantBranches(t *testing.T) {
	lineArt := Negative("sacred yantra design", catalog.StyleSakYant)
	if !strings.Contains(lineArt, "Shading, gradient, 3D render") {
		t.Errorf("plain sak-yant missing line-art constraints: %q", lineArt)
	}

	for _, prompt := range []string{"pha yant cloth design", "yantra on fabric", "golden yantra"} {
		got := Negative(prompt, catalog.StyleSakYant)
		if !strings.Contains(got, "anime face") {
			t.Errorf("Negative(%q) missing textured sak-yant constraints: %q", prompt, got)
		}
		if strings.Contains(got, "Shading, gradient") {
			t.Errorf("Negative(%q) has line-art constraints, want textured branch", prompt)
		}
	}
}

func TestNegative_ArtmuletExclusions(t *testing.T) {
	got := Negative("sacred amulet macro", catalog.StyleArtmulet)
	if !strings.Contains(got, "human skin, living person") {
		t.Errorf("artmulet constraints missing: %q", got)
	}

	other := Negative("sacred amulet macro", catalog.StyleStandard)
	if strings.Contains(other, "living person") {
		t.Errorf("artmulet constraints leaked into standard style: %q", other)
	}
}
