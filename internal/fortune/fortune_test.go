package fortune

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/luckystation/luckygen/internal/provider"
	"github.com/luckystation/luckygen/pkg/models"
)

type fakeProvider struct {
	result *models.FortuneResult
	err    error
	calls  int
}

func (f *fakeProvider) GenerateImage(ctx context.Context, req *models.GenerateRequest) (*models.GenerateResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProvider) EnhancePrompt(ctx context.Context, req *models.EnhanceRequest) (*models.EnhanceResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProvider) Fortune(ctx context.Context, req *models.FortuneRequest) (*models.FortuneResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := *f.result
	return &result, nil
}

func (f *fakeProvider) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.Analysis, error) {
	return nil, errors.New("not implemented")
}

func TestDaily_RemoteSuccess(t *testing.T) {
	fake := &fakeProvider{result: &models.FortuneResult{
		Verse:        "Stars align for you today\nFortunes come without delay",
		Prediction:   "A good day for beginnings.",
		LuckyNumbers: "11, 22",
	}}
	oracle := NewOracle(fake)

	got := oracle.Daily(context.Background(), "Ganesha", models.LocaleEnglish)
	if got.LuckyNumbers != "11, 22" {
		t.Errorf("LuckyNumbers = %q, want 11, 22", got.LuckyNumbers)
	}
}

func TestDaily_NilProviderUsesOfflineDeck(t *testing.T) {
	oracle := NewOracle(nil)
	oracle.pick = func(n int) int { return 0 }

	got := oracle.Daily(context.Background(), "พระพิฆเนศ", models.LocaleThai)
	want := offlineFortunes[models.LocaleThai][0]
	if got != want {
		t.Errorf("Daily() = %+v, want first offline slip %+v", got, want)
	}
}

func TestDaily_QuotaFallsBackToOfflineDeck(t *testing.T) {
	fake := &fakeProvider{err: fmt.Errorf("wrapped: %w", provider.ErrQuotaExceeded)}
	oracle := NewOracle(fake)
	oracle.pick = func(n int) int { return 2 }

	got := oracle.Daily(context.Background(), "Naga", models.LocaleEnglish)
	want := offlineFortunes[models.LocaleEnglish][2]
	if got != want {
		t.Errorf("Daily() = %+v, want offline slip %+v", got, want)
	}
}

func TestDaily_OtherErrorsUseGenericFallback(t *testing.T) {
	fake := &fakeProvider{err: fmt.Errorf("%w: connection refused", provider.ErrNetwork)}
	oracle := NewOracle(fake)

	got := oracle.Daily(context.Background(), "Naga", models.LocaleThai)
	if got.LuckyNumbers != "09" {
		t.Errorf("LuckyNumbers = %q, want generic fallback 09", got.LuckyNumbers)
	}
	if got.Verse == "" || got.Prediction == "" {
		t.Errorf("generic fallback has empty fields: %+v", got)
	}
}

func TestDaily_FillsMissingFields(t *testing.T) {
	fake := &fakeProvider{result: &models.FortuneResult{}}
	oracle := NewOracle(fake)

	got := oracle.Daily(context.Background(), "Ganesha", models.LocaleEnglish)
	if got.Verse != "Blessings fall like gentle rain" {
		t.Errorf("Verse = %q", got.Verse)
	}
	if got.Prediction != "Today brings new opportunities." {
		t.Errorf("Prediction = %q", got.Prediction)
	}
	if got.LuckyNumbers != "99, 108" {
		t.Errorf("LuckyNumbers = %q", got.LuckyNumbers)
	}
}

func TestDaily_MemoizedPerSubjectAndLocale(t *testing.T) {
	fake := &fakeProvider{result: &models.FortuneResult{
		Verse: "v", Prediction: "p", LuckyNumbers: "1",
	}}
	oracle := NewOracle(fake)

	first := oracle.Daily(context.Background(), "Ganesha", models.LocaleEnglish)
	second := oracle.Daily(context.Background(), "Ganesha", models.LocaleEnglish)
	if first != second {
		t.Errorf("repeated draw differs: %+v vs %+v", first, second)
	}
	if fake.calls != 1 {
		t.Errorf("provider calls = %d, want 1", fake.calls)
	}

	oracle.Daily(context.Background(), "Ganesha", models.LocaleThai)
	if fake.calls != 2 {
		t.Errorf("provider calls = %d, want 2 after locale change", fake.calls)
	}
}
