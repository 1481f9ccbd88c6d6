package models

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var (
	ErrEmptyPrompt        = errors.New("prompt cannot be empty")
	ErrInvalidLocale      = errors.New("unsupported locale")
	ErrInvalidAspectRatio = errors.New("unsupported aspect ratio")
	ErrNoImageData        = errors.New("image data is required")
)

// Locale selects the language for blessings, fortunes and analysis text.
// Exactly two locales are supported; there is no fallback chain.
type Locale string

const (
	LocaleThai    Locale = "th"
	LocaleEnglish Locale = "en"
)

func ValidLocales() []Locale {
	return []Locale{LocaleThai, LocaleEnglish}
}

func (l Locale) IsValid() bool {
	return slices.Contains(ValidLocales(), l)
}

func (l Locale) String() string {
	return string(l)
}

// FontStyleTag selects the presentation typeface for the blessing overlay.
type FontStyleTag string

const (
	FontChibi           FontStyleTag = "chibi"
	FontStandard        FontStyleTag = "standard"
	FontThaiTraditional FontStyleTag = "thai_traditional"
	FontChineseBrush    FontStyleTag = "chinese_brush"
	FontIndianSacred    FontStyleTag = "indian_sacred"
)

func ValidFontTags() []FontStyleTag {
	return []FontStyleTag{FontChibi, FontStandard, FontThaiTraditional, FontChineseBrush, FontIndianSacred}
}

func (f FontStyleTag) IsValid() bool {
	return slices.Contains(ValidFontTags(), f)
}

func (f FontStyleTag) String() string {
	return string(f)
}

// ComposedPrompt is the output of a prompt composition, direct or assisted.
// It is ephemeral; the fields are embedded into a GeneratedImage on save.
type ComposedPrompt struct {
	Prompt   string
	Blessing string
	FontTag  FontStyleTag
}

// GeneratedImage is an append-only gallery record. It is never mutated
// after creation; deletion is by ID only.
type GeneratedImage struct {
	ID        string
	URL       string
	Prompt    string
	Timestamp int64 // epoch milliseconds
	Blessing  string
	StyleID   string
	FontTag   string
}

// NewImageID derives a gallery record ID from the creation time.
func NewImageID(t time.Time) string {
	return fmt.Sprintf("img_%d", t.UnixMilli())
}

// FortuneResult is a daily fortune slip.
type FortuneResult struct {
	Verse        string `json:"verse"`
	Prediction   string `json:"prediction"`
	LuckyNumbers string `json:"lucky_numbers"`
}

// Analysis is the result of reverse-engineering an image into a prompt.
type Analysis struct {
	Prompt   string `json:"prompt"`
	Analysis string `json:"analysis"`
}

// UserProfile is the local, simulated account used by the credit economy.
// Credits may go negative: generation is never blocked on a depleted
// balance when the user supplies their own API credential.
type UserProfile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Avatar         string `json:"avatar"`
	Credits        int    `json:"credits"`
	IsVIP          bool   `json:"is_vip"`
	LastDailyClaim int64  `json:"last_daily_claim"` // epoch ms, 0 = never claimed
}

// GenerateRequest describes one remote image generation call.
type GenerateRequest struct {
	Prompt         string
	NegativePrompt string
	AspectRatio    string
	Reference      []byte // optional reference image
	ReferenceMIME  string
	StyleID        string
}

func NewGenerateRequest(prompt string) *GenerateRequest {
	return &GenerateRequest{
		Prompt:      prompt,
		AspectRatio: "9:16",
	}
}

func (r *GenerateRequest) Validate() error {
	if r.Prompt == "" {
		return ErrEmptyPrompt
	}
	if r.AspectRatio != "9:16" {
		return fmt.Errorf("%w: %q", ErrInvalidAspectRatio, r.AspectRatio)
	}
	return nil
}

// GenerateResponse carries the generated image bytes.
type GenerateResponse struct {
	Data     []byte
	MIMEType string
}

// EnhanceRequest asks the remote text model for a richer prompt.
// SystemInstruction is built by the prompt composer; the provider only
// transports it.
type EnhanceRequest struct {
	SystemInstruction string
	Keyword           string
	Locale            Locale
}

// EnhanceResponse mirrors the structured model output. Fields may be
// empty; the composer substitutes deterministic fallbacks.
type EnhanceResponse struct {
	Prompt   string `json:"prompt"`
	Blessing string `json:"blessing"`
	FontTag  string `json:"font_style_tag"`
}

// FortuneRequest asks the remote text model for a fortune slip.
type FortuneRequest struct {
	SystemInstruction string
	Subject           string
	Locale            Locale
}

// AnalyzeRequest asks the remote vision model to reverse-engineer an image.
type AnalyzeRequest struct {
	Image  []byte
	MIME   string
	Locale Locale
}

func (r *AnalyzeRequest) Validate() error {
	if len(r.Image) == 0 {
		return ErrNoImageData
	}
	return nil
}
