// Package provider defines the contract with the remote generative service
// and the error kinds the rest of the app branches on.
package provider

import (
	"context"
	"errors"
	"strings"

	"github.com/luckystation/luckygen/pkg/models"
)

var (
	// ErrAPIKeyRequired is returned at construction when no credential is
	// configured at all.
	ErrAPIKeyRequired = errors.New("API key is required")

	// ErrCredential means the remote service rejected the credential.
	// Callers must prompt for a new key and must not retry automatically.
	ErrCredential = errors.New("missing or invalid API credential")

	// ErrQuotaExceeded means the service rate-limited the request. Callers
	// should advise a manual retry after a cooldown.
	ErrQuotaExceeded = errors.New("service quota exceeded")

	// ErrSafetyBlocked means generation was refused by content-safety
	// filtering, or the service returned an empty result (treated the same).
	ErrSafetyBlocked = errors.New("generation blocked by safety filtering")

	// ErrNetwork is a connectivity failure before any service response.
	ErrNetwork = errors.New("network failure")

	// ErrAnalysisFailed wraps every reverse-analysis failure; there is no
	// offline substitute for visual analysis.
	ErrAnalysisFailed = errors.New("image analysis failed")
)

// Provider is the remote generative backend (bring-your-own-key).
type Provider interface {
	GenerateImage(ctx context.Context, req *models.GenerateRequest) (*models.GenerateResponse, error)
	EnhancePrompt(ctx context.Context, req *models.EnhanceRequest) (*models.EnhanceResponse, error)
	Fortune(ctx context.Context, req *models.FortuneRequest) (*models.FortuneResult, error)
	Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.Analysis, error)
}

type Config struct {
	APIKey     string
	BaseURL    string
	TimeoutSec int
	Verbose    bool
}

// Classify maps a remote error surface (HTTP status plus whatever text the
// service returned) onto one of the sentinel kinds. Unrecognized errors
// come back as nil so callers can wrap them generically.
func Classify(statusCode int, body string) error {
	switch statusCode {
	case 401, 403:
		return ErrCredential
	case 429:
		return ErrQuotaExceeded
	}

	for _, sig := range []string{"API_KEY", "API key not valid", "UNAUTHENTICATED", "PERMISSION_DENIED"} {
		if strings.Contains(body, sig) {
			return ErrCredential
		}
	}
	for _, sig := range []string{"RESOURCE_EXHAUSTED", "quota", "rate limit"} {
		if strings.Contains(body, sig) {
			return ErrQuotaExceeded
		}
	}
	return nil
}
