package prompt

import (
	"strings"

	"github.com/luckystation/luckygen/internal/catalog"
)

// baseNegative is always sent. It combines anatomical guardrails with
// aggressive UI-element exclusions so pasted screenshot text never leaks
// into the render.
const baseNegative = "Distorted face, extra legs, extra fingers, fused limbs, bad anatomy, blurry, watermark, text, low quality, cropped, missing limbs, floating limbs, disconnected limbs, mutation, ugly, disgusting, amputation, User Interface, UI, Mobile App, Screen, Screenshot, Website, Buttons, Menu, Navigation Bar, Pop-up, Error Message, Notification, Text Overlay, Copyright info, Toggle, Icons, Status bar, nudity, sexually explicit, nsfw, gore, blood"

// Negative derives the negative-constraint list for a prompt. Iconography
// corrections key off the prompt text; line-art and sculpture corrections
// key off the style.
func Negative(prompt, styleID string) string {
	negative := baseNegative
	promptLower := strings.ToLower(prompt)

	if strings.Contains(promptLower, "vishnu") || strings.Contains(promptLower, "garuda") ||
		strings.Contains(promptLower, "krut") || strings.Contains(promptLower, "narayana") {
		negative += ", Vishnu having wings, angel wings, blue Garuda, blue bird man"
	}

	if styleID == catalog.StyleSakYant {
		isPhaYant := strings.Contains(promptLower, "pha yant") || strings.Contains(promptLower, "fabric")
		isGold := strings.Contains(promptLower, "gold") || strings.Contains(promptLower, "golden")
		if isPhaYant || isGold {
			negative += ", 3D render, realistic human skin, messy sketch, cartoon, anime face"
		} else {
			negative += ", Shading, gradient, 3D render, realistic photo, gray colors, messy sketch, realistic skin texture, 3D modeling"
		}
	}

	if styleID == catalog.StyleArtmulet {
		negative += ", human skin, living person, cartoon, anime, bright colorful background, holding hands, fingers"
	}

	return negative
}
