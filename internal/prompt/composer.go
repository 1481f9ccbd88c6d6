// Package prompt turns user keywords into full image-generation prompts,
// either deterministically or with remote assistance.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/luckystation/luckygen/internal/catalog"
	"github.com/luckystation/luckygen/internal/dictionary"
	"github.com/luckystation/luckygen/internal/provider"
	"github.com/luckystation/luckygen/pkg/models"
)

const (
	chibiPrefix    = "Cute Chibi style, big head small body, pastel colors, soft lighting, 2D vector illustration, white outline sticker style, "
	artmuletPrefix = "3D Digital Sculpture, Sacred Amulet style, ZBrush sculpt, Octane Render, hyper-realistic material, dramatic studio lighting, solid black background, centered composition, "

	thaiOriginFragment = "Traditional Thai Art style, Kanok patterns, intricate gold ornaments"
	qualityTail        = ", masterpiece, 8k, high quality, sharp focus"
)

// Blessing is the deterministic blessing used whenever the remote model
// does not supply one.
func Blessing(loc models.Locale) string {
	if loc == models.LocaleThai {
		return "โชคดีมีชัย"
	}
	return "Divine Blessings"
}

// ComposeDirect builds a prompt without any remote call. The same inputs
// always produce the same output.
func ComposeDirect(input string, style catalog.StyleOption, origin catalog.OriginOption, material *catalog.MaterialOption, loc models.Locale) models.ComposedPrompt {
	cleaned := Sanitize(input)
	effective := cleaned
	if effective == "" {
		effective = input
	}

	subject := effective
	if desc := dictionary.Find(effective); desc != "" {
		subject = desc + " (" + effective + ")"
	}

	var prefix string
	switch style.ID {
	case catalog.StyleChibi:
		prefix = chibiPrefix
	case catalog.StyleArtmulet:
		prefix = artmuletPrefix
	default:
		prefix = style.PromptModifier + ", "
	}

	originStr := origin.PromptModifier
	if origin.ID == catalog.OriginThai {
		originStr = thaiOriginFragment
	}

	materialStr := ""
	if material != nil {
		materialStr = ", " + material.PromptModifier
	}

	fontTag := models.FontStandard
	if style.ID == catalog.StyleChibi {
		fontTag = models.FontChibi
	}

	return models.ComposedPrompt{
		Prompt:   prefix + originStr + ", " + subject + materialStr + qualityTail,
		Blessing: Blessing(loc),
		FontTag:  fontTag,
	}
}

// Composer runs assisted composition against a remote text model and falls
// back to direct composition when the model cannot help.
type Composer struct {
	provider provider.Provider
}

func NewComposer(p provider.Provider) *Composer {
	return &Composer{provider: p}
}

// ComposeAssisted asks the remote model to enhance the keyword. Credential
// and quota errors propagate so the caller can guide the user; every other
// failure degrades to ComposeDirect. The returned bool reports whether the
// fallback was used.
func (c *Composer) ComposeAssisted(ctx context.Context, input string, style catalog.StyleOption, origin catalog.OriginOption, material *catalog.MaterialOption, loc models.Locale) (models.ComposedPrompt, bool, error) {
	direct := ComposeDirect(input, style, origin, material, loc)

	visualRef := dictionary.Find(input)

	resp, err := c.provider.EnhancePrompt(ctx, &models.EnhanceRequest{
		SystemInstruction: enhanceInstruction(input, visualRef, style, origin, material, loc),
		Keyword:           input,
		Locale:            loc,
	})
	if err != nil {
		if errors.Is(err, provider.ErrCredential) || errors.Is(err, provider.ErrQuotaExceeded) || errors.Is(err, provider.ErrAPIKeyRequired) {
			return models.ComposedPrompt{}, false, err
		}
		return direct, true, nil
	}

	composed := models.ComposedPrompt{
		Prompt:   resp.Prompt,
		Blessing: resp.Blessing,
		FontTag:  models.FontStyleTag(resp.FontTag),
	}
	if composed.Prompt == "" {
		composed.Prompt = direct.Prompt
	}
	if composed.Blessing == "" {
		composed.Blessing = Blessing(loc)
	}
	if !composed.FontTag.IsValid() {
		composed.FontTag = models.FontStandard
	}
	return composed, false, nil
}

const enhanceInstructionTemplate = `**Role:** Divine Digital Artist & Prompt Engineer (Specialist in Thai/Asian Sacred Art).

**Objective:** Construct a high-fidelity image generation prompt based on User Inputs and strict Visual Rules.

**SAFETY PROTOCOL (STRICT):**
- The output prompt MUST be Safe For Work (SFW).
- NO nudity, NO sexual content, NO gore, NO excessive violence.
- If the user asks for something sensitive (e.g. "Love spell", "Charming oil"), sanitize it to be artistic, symbolic, and magical (e.g. "Glowing pink aura", "Flowers") instead of explicit.
- Do not use words like "blood", "kill", "naked", "erotic".

**INPUTS:**
- [Keyword]: %q
- [Explicit Visual Reference]: %q (From Internal Amulet Dictionary)
- [Style]: %q (ID: %s)
- [Origin]: %q
- [Material]: %q
- [Target Language]: %q

**LOGIC FLOW (Follow strictly to build the 'prompt'):**

**STEP A: Base Style Definition (The Atmosphere)**
- IF [Style] ID is "chibi-pastel": Start with "Cute Chibi style, big head small body, pastel colors, soft lighting, 2D vector illustration, white outline sticker style."
- IF [Style] ID is "artmulet": Start with "3D Digital Sculpture, Sacred Amulet style, ZBrush sculpt, Octane Render, hyper-realistic material, dramatic studio lighting, solid black background, centered composition."
- IF [Style] ID is "sacred-deity" OR "luckystation": Start with "Majestic Deity Portrait, celestial aura, glowing magical effects, highly detailed, 8K resolution, cinematic composition."
- ELSE: Use the provided [Style] description: %q.

**STEP B: Culture/Origin Injection**
- IF [Origin] includes "Thai": Add "Traditional Thai Art style, Kanok patterns, intricate gold ornaments."
- IF [Origin] includes "Indian": Add "Indian Art style, vibrant Bollywood colors, heavy jewelry, deep spiritual atmosphere."
- IF [Origin] includes "Chinese": Add "Chinese Deity style, silk robes, jade textures, Wuxia atmosphere."
- ELSE: Add context based on [Origin]: %q.

**STEP C: VISUAL REFERENCE & CORRECTION RULES (CRITICAL)**
- **RULE 1 (AMULET DICTIONARY):** IF [Explicit Visual Reference] is NOT empty, YOU MUST USE IT as the core physical description of the main subject. This overrides generic interpretations of the [Keyword].
  - Example: If Reference is "Rectangular amulet...", do not generate a human figure, generate a rectangular tablet.
- **RULE 2 (Subject Specifics):**
  - **"Luesi", "Por Gae", "Hermit" (ฤาษี/พ่อแก่):** "Old hermit with long white beard, wearing a TIGER SKIN HAT (pointed shape) and TIGER SKIN ROBES. Must have a vertical THIRD EYE on the forehead."
  - **"Garuda" (ครุฑ):** "Lord Vishnu (Blue skin) riding on Garuda (Golden/Red skin). Vishnu sits on Garuda's shoulders. Garuda uses his talons to grasp a Green Naga serpent."
  - **"Brahma" (พระพรหม):** "Four faces (3 visible), multiple arms, but ONLY TWO LEGS. Sitting posture."
- **RULE 3 (Material):** If [Material] is provided (%q), apply it to the main subject: %q.

**STEP D: Blessing & Font Logic**
- **Blessing:** Generate a short, auspicious blessing in [Target Language].
- **Font Tag:**
  - IF [Style] ID is "chibi-pastel": Set "font_style_tag" to "chibi".
  - ELSE: Set "font_style_tag" to "standard".

**Output Format:**
Return JSON with 'prompt', 'blessing', and 'font_style_tag'.`

func enhanceInstruction(input, visualRef string, style catalog.StyleOption, origin catalog.OriginOption, material *catalog.MaterialOption, loc models.Locale) string {
	inputMaterial := "N/A"
	ruleMaterial := ""
	materialModifier := ""
	if material != nil {
		inputMaterial = material.Name
		ruleMaterial = material.Name
		materialModifier = material.PromptModifier
	}
	return fmt.Sprintf(enhanceInstructionTemplate,
		input, visualRef,
		style.Name, style.ID,
		origin.Name,
		inputMaterial,
		loc,
		style.PromptModifier,
		origin.PromptModifier,
		ruleMaterial, materialModifier,
	)
}
