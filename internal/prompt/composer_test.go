package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/luckystation/luckygen/internal/catalog"
	"github.com/luckystation/luckygen/internal/dictionary"
	"github.com/luckystation/luckygen/internal/provider"
	"github.com/luckystation/luckygen/pkg/models"
)

type fakeProvider struct {
	enhanceResp *models.EnhanceResponse
	enhanceErr  error
	lastEnhance *models.EnhanceRequest
}

func (f *fakeProvider) GenerateImage(ctx context.Context, req *models.GenerateRequest) (*models.GenerateResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProvider) EnhancePrompt(ctx context.Context, req *models.EnhanceRequest) (*models.EnhanceResponse, error) {
	f.lastEnhance = req
	return f.enhanceResp, f.enhanceErr
}

func (f *fakeProvider) Fortune(ctx context.Context, req *models.FortuneRequest) (*models.FortuneResult, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProvider) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.Analysis, error) {
	return nil, errors.New("not implemented")
}

func mustStyle(t *testing.T, id string) catalog.StyleOption {
	t.Helper()
	style, ok := catalog.StyleByID(id)
	if !ok {
		t.Fatalf("style %q not found", id)
	}
	return style
}

func mustOrigin(t *testing.T, id string) catalog.OriginOption {
	t.Helper()
	origin, ok := catalog.OriginByID(id)
	if !ok {
		t.Fatalf("origin %q not found", id)
	}
	return origin
}

func mustMaterial(t *testing.T, id string) *catalog.MaterialOption {
	t.Helper()
	material, ok := catalog.MaterialByID(id)
	if !ok {
		t.Fatalf("material %q not found", id)
	}
	return &material
}

func TestComposeDirect_KnownKeywordWithMaterial(t *testing.T) {
	style := mustStyle(t, catalog.StyleArtmulet)
	origin := mustOrigin(t, catalog.OriginThai)
	gold := mustMaterial(t, "gold")

	got := ComposeDirect("วัดระฆัง", style, origin, gold, models.LocaleThai)

	desc := dictionary.Find("วัดระฆัง")
	if desc == "" {
		t.Fatal("dictionary entry for วัดระฆัง not found")
	}
	want := artmuletPrefix + thaiOriginFragment + ", " +
		desc + " (วัดระฆัง)" +
		", " + gold.PromptModifier + qualityTail
	if got.Prompt != want {
		t.Errorf("Prompt =\n%q\nwant\n%q", got.Prompt, want)
	}
	if got.Blessing != "โชคดีมีชัย" {
		t.Errorf("Blessing = %q, want โชคดีมีชัย", got.Blessing)
	}
	if got.FontTag != models.FontStandard {
		t.Errorf("FontTag = %q, want standard", got.FontTag)
	}
}

func TestComposeDirect_UnknownKeywordPassesThrough(t *testing.T) {
	style := mustStyle(t, catalog.StyleStandard)
	origin := mustOrigin(t, catalog.OriginJapan)

	got := ComposeDirect("a silver fox spirit", style, origin, nil, models.LocaleEnglish)

	want := style.PromptModifier + ", " + origin.PromptModifier + ", a silver fox spirit" + qualityTail
	if got.Prompt != want {
		t.Errorf("Prompt =\n%q\nwant\n%q", got.Prompt, want)
	}
	if got.Blessing != "Divine Blessings" {
		t.Errorf("Blessing = %q, want Divine Blessings", got.Blessing)
	}
}

func TestComposeDirect_ChibiFontTag(t *testing.T) {
	origin := mustOrigin(t, catalog.OriginThai)

	for _, style := range catalog.Styles() {
		got := ComposeDirect("นาคราช", style, origin, nil, models.LocaleThai)
		want := models.FontStandard
		if style.ID == catalog.StyleChibi {
			want = models.FontChibi
		}
		if got.FontTag != want {
			t.Errorf("style %s: FontTag = %q, want %q", style.ID, got.FontTag, want)
		}
		if style.ID == catalog.StyleChibi && !strings.HasPrefix(got.Prompt, chibiPrefix) {
			t.Errorf("chibi prompt does not start with chibi prefix: %q", got.Prompt)
		}
	}
}

func TestComposeDirect_Deterministic(t *testing.T) {
	origin := mustOrigin(t, catalog.OriginIndia)
	jade := mustMaterial(t, "jade")

	for _, style := range catalog.Styles() {
		first := ComposeDirect("พระพิฆเนศ", style, origin, jade, models.LocaleEnglish)
		second := ComposeDirect("พระพิฆเนศ", style, origin, jade, models.LocaleEnglish)
		if first != second {
			t.Errorf("style %s: composition not deterministic", style.ID)
		}
	}
}

func TestComposeDirect_SanitizesJunk(t *testing.T) {
	style := mustStyle(t, catalog.StyleStandard)
	origin := mustOrigin(t, catalog.OriginThai)

	withJunk := ComposeDirect("ขุนแผน screenshot button", style, origin, nil, models.LocaleThai)
	clean := ComposeDirect("ขุนแผน", style, origin, nil, models.LocaleThai)
	if withJunk.Prompt != clean.Prompt {
		t.Errorf("junk not stripped:\n%q\nvs\n%q", withJunk.Prompt, clean.Prompt)
	}
}

func TestComposeDirect_AllJunkFallsBackToRawInput(t *testing.T) {
	style := mustStyle(t, catalog.StyleStandard)
	origin := mustOrigin(t, catalog.OriginThai)

	got := ComposeDirect("Screenshot Button", style, origin, nil, models.LocaleEnglish)
	if !strings.Contains(got.Prompt, "Screenshot Button") {
		t.Errorf("raw input not used when sanitized form is empty: %q", got.Prompt)
	}
}

func TestComposeAssisted_Success(t *testing.T) {
	fake := &fakeProvider{enhanceResp: &models.EnhanceResponse{
		Prompt:   "Majestic deity portrait, celestial aura",
		Blessing: "ร่ำรวยเงินทอง",
		FontTag:  "chibi",
	}}
	composer := NewComposer(fake)

	got, fellBack, err := composer.ComposeAssisted(context.Background(),
		"พญาครุฑ", mustStyle(t, catalog.StyleChibi), mustOrigin(t, catalog.OriginThai), nil, models.LocaleThai)
	if err != nil {
		t.Fatalf("ComposeAssisted() error = %v", err)
	}
	if fellBack {
		t.Error("fellBack = true, want false")
	}
	if got.Prompt != "Majestic deity portrait, celestial aura" {
		t.Errorf("Prompt = %q", got.Prompt)
	}
	if got.FontTag != models.FontChibi {
		t.Errorf("FontTag = %q, want chibi", got.FontTag)
	}

	if fake.lastEnhance == nil {
		t.Fatal("EnhancePrompt was not called")
	}
	if fake.lastEnhance.Keyword != "พญาครุฑ" {
		t.Errorf("Keyword = %q", fake.lastEnhance.Keyword)
	}
	visualRef := dictionary.Find("พญาครุฑ")
	if visualRef == "" || !strings.Contains(fake.lastEnhance.SystemInstruction, visualRef) {
		t.Error("system instruction missing dictionary visual reference")
	}
}

func TestComposeAssisted_DefaultsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		resp models.EnhanceResponse
	}{
		{"all empty", models.EnhanceResponse{}},
		{"invalid font tag", models.EnhanceResponse{Prompt: "p", Blessing: "b", FontTag: "comic_sans"}},
	}

	style := mustStyle(t, catalog.StyleStandard)
	origin := mustOrigin(t, catalog.OriginThai)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeProvider{enhanceResp: &tt.resp}
			got, _, err := NewComposer(fake).ComposeAssisted(context.Background(),
				"สมเด็จ", style, origin, nil, models.LocaleThai)
			if err != nil {
				t.Fatalf("ComposeAssisted() error = %v", err)
			}
			if got.Prompt == "" {
				t.Error("Prompt is empty, want direct-composition default")
			}
			if got.Blessing == "" {
				t.Error("Blessing is empty, want locale default")
			}
			if !got.FontTag.IsValid() {
				t.Errorf("FontTag = %q, want valid tag", got.FontTag)
			}
		})
	}
}

func TestComposeAssisted_FallbackMatchesDirect(t *testing.T) {
	fake := &fakeProvider{enhanceErr: fmt.Errorf("%w: connection refused", provider.ErrNetwork)}
	composer := NewComposer(fake)

	style := mustStyle(t, catalog.StyleSakYant)
	origin := mustOrigin(t, catalog.OriginThai)
	bronze := mustMaterial(t, "bronze")

	got, fellBack, err := composer.ComposeAssisted(context.Background(),
		"หลวงปู่ทวด", style, origin, bronze, models.LocaleThai)
	if err != nil {
		t.Fatalf("ComposeAssisted() error = %v", err)
	}
	if !fellBack {
		t.Error("fellBack = false, want true")
	}

	want := ComposeDirect("หลวงปู่ทวด", style, origin, bronze, models.LocaleThai)
	if got != want {
		t.Errorf("fallback = %+v, want direct composition %+v", got, want)
	}
}

func TestComposeAssisted_CredentialAndQuotaPropagate(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"credential", provider.ErrCredential},
		{"quota", provider.ErrQuotaExceeded},
		{"missing key", provider.ErrAPIKeyRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeProvider{enhanceErr: fmt.Errorf("wrapped: %w", tt.err)}
			_, _, err := NewComposer(fake).ComposeAssisted(context.Background(),
				"ขุนแผน", mustStyle(t, catalog.StyleStandard), mustOrigin(t, catalog.OriginThai), nil, models.LocaleThai)
			if !errors.Is(err, tt.err) {
				t.Errorf("ComposeAssisted() error = %v, want %v", err, tt.err)
			}
		})
	}
}
