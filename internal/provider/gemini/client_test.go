package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/luckystation/luckygen/internal/provider"
	"github.com/luckystation/luckygen/pkg/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&provider.Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func textResponse(t *testing.T, w http.ResponseWriter, body string) {
	t.Helper()
	resp := apiResponse{Candidates: []candidate{{
		Content: content{Parts: []part{{Text: body}}},
	}}}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(&provider.Config{})
	if !errors.Is(err, provider.ErrAPIKeyRequired) {
		t.Errorf("New() error = %v, want ErrAPIKeyRequired", err)
	}
}

func TestGenerateImage_Success(t *testing.T) {
	pngBytes := []byte{0x89, 'P', 'N', 'G'}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("x-goog-api-key = %q, want test-key", r.Header.Get("x-goog-api-key"))
		}
		if !strings.Contains(r.URL.Path, defaultImageModel) {
			t.Errorf("path = %q, want image model", r.URL.Path)
		}

		var req apiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		text := req.Contents[0].Parts[0].Text
		if !strings.Contains(text, "Generate a high-quality image of: a golden naga") {
			t.Errorf("prompt text = %q", text)
		}
		if !strings.Contains(text, "Negative Constraints/Exclusions: blurry") {
			t.Errorf("negative constraints missing from %q", text)
		}
		if req.GenerationConfig.ImageConfig.AspectRatio != "9:16" {
			t.Errorf("aspect ratio = %q", req.GenerationConfig.ImageConfig.AspectRatio)
		}
		if len(req.SafetySettings) != 4 {
			t.Errorf("len(SafetySettings) = %d, want 4", len(req.SafetySettings))
		}

		resp := apiResponse{Candidates: []candidate{{
			Content: content{Parts: []part{{InlineData: &blob{
				MIMEType: "image/png",
				Data:     base64.StdEncoding.EncodeToString(pngBytes),
			}}}},
		}}}
		json.NewEncoder(w).Encode(resp)
	})

	got, err := client.GenerateImage(context.Background(), &models.GenerateRequest{
		Prompt:         "a golden naga",
		NegativePrompt: "blurry",
		AspectRatio:    "9:16",
	})
	if err != nil {
		t.Fatalf("GenerateImage() error = %v", err)
	}
	if string(got.Data) != string(pngBytes) {
		t.Errorf("Data = %v, want %v", got.Data, pngBytes)
	}
	if got.MIMEType != "image/png" {
		t.Errorf("MIMEType = %q, want image/png", got.MIMEType)
	}
}

func TestGenerateImage_SafetyBlocked(t *testing.T) {
	tests := []struct {
		name string
		resp apiResponse
	}{
		{"finish reason safety", apiResponse{Candidates: []candidate{{FinishReason: "SAFETY"}}}},
		{"no candidates", apiResponse{}},
		{"text only, no image", apiResponse{Candidates: []candidate{{
			Content: content{Parts: []part{{Text: "I cannot generate that"}}},
		}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(tt.resp)
			})

			_, err := client.GenerateImage(context.Background(), &models.GenerateRequest{
				Prompt:      "a deity",
				AspectRatio: "9:16",
			})
			if !errors.Is(err, provider.ErrSafetyBlocked) {
				t.Errorf("GenerateImage() error = %v, want ErrSafetyBlocked", err)
			}
		})
	}
}

func TestGenerateImage_ErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"401 credential", http.StatusUnauthorized, `{"error":{"message":"bad key","status":"UNAUTHENTICATED"}}`, provider.ErrCredential},
		{"429 quota", http.StatusTooManyRequests, `{"error":{"message":"slow down","status":"RESOURCE_EXHAUSTED"}}`, provider.ErrQuotaExceeded},
		{"400 api key body", http.StatusBadRequest, `{"error":{"message":"API key not valid","status":"INVALID_ARGUMENT"}}`, provider.ErrCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.GenerateImage(context.Background(), &models.GenerateRequest{
				Prompt:      "a deity",
				AspectRatio: "9:16",
			})
			if !errors.Is(err, tt.want) {
				t.Errorf("GenerateImage() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGenerateImage_NetworkError(t *testing.T) {
	client, err := New(&provider.Config{APIKey: "test-key", BaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = client.GenerateImage(context.Background(), &models.GenerateRequest{
		Prompt:      "a deity",
		AspectRatio: "9:16",
	})
	if !errors.Is(err, provider.ErrNetwork) {
		t.Errorf("GenerateImage() error = %v, want ErrNetwork", err)
	}
}

func TestEnhancePrompt_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req apiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if !strings.Contains(r.URL.Path, defaultTextModel) {
			t.Errorf("path = %q, want text model", r.URL.Path)
		}
		if got := req.Contents[0].Parts[0].Text; !strings.Contains(got, `"หลวงปู่ทวด"`) {
			t.Errorf("keyword missing from contents %q", got)
		}
		if req.GenerationConfig.Temperature == nil || *req.GenerationConfig.Temperature != 0.75 {
			t.Errorf("temperature = %v, want 0.75", req.GenerationConfig.Temperature)
		}
		if req.GenerationConfig.ResponseMIMEType != "application/json" {
			t.Errorf("responseMimeType = %q", req.GenerationConfig.ResponseMIMEType)
		}

		textResponse(t, w, `{"prompt":"Revered monk in meditation","blessing":"แคล้วคลาดปลอดภัย","font_style_tag":"thai_traditional"}`)
	})

	got, err := client.EnhancePrompt(context.Background(), &models.EnhanceRequest{
		SystemInstruction: "instruction",
		Keyword:           "หลวงปู่ทวด",
		Locale:            models.LocaleThai,
	})
	if err != nil {
		t.Fatalf("EnhancePrompt() error = %v", err)
	}
	if got.Prompt != "Revered monk in meditation" {
		t.Errorf("Prompt = %q", got.Prompt)
	}
	if got.FontTag != string(models.FontThaiTraditional) {
		t.Errorf("FontTag = %q, want thai_traditional", got.FontTag)
	}
}

func TestFortune_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req apiRequest
		json.NewDecoder(r.Body).Decode(&req)
		if got := req.Contents[0].Parts[0].Text; !strings.Contains(got, `[Target Language]: "en"`) {
			t.Errorf("contents = %q, want en target language", got)
		}
		if req.GenerationConfig.Temperature == nil || *req.GenerationConfig.Temperature != 1.0 {
			t.Errorf("temperature = %v, want 1.0", req.GenerationConfig.Temperature)
		}

		textResponse(t, w, `{"verse":"The river bends toward fortune","prediction":"Good news arrives","lucky_numbers":"07, 70"}`)
	})

	got, err := client.Fortune(context.Background(), &models.FortuneRequest{
		SystemInstruction: "instruction",
		Subject:           "Ganesha",
		Locale:            models.LocaleEnglish,
	})
	if err != nil {
		t.Fatalf("Fortune() error = %v", err)
	}
	if got.LuckyNumbers != "07, 70" {
		t.Errorf("LuckyNumbers = %q, want 07, 70", got.LuckyNumbers)
	}
}

func TestAnalyze_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req apiRequest
		json.NewDecoder(r.Body).Decode(&req)
		parts := req.Contents[0].Parts
		if parts[0].InlineData == nil || parts[0].InlineData.MIMEType != "image/jpeg" {
			t.Errorf("first part = %+v, want inline jpeg", parts[0])
		}
		if !strings.Contains(parts[1].Text, "Target Language: th") {
			t.Errorf("second part = %q", parts[1].Text)
		}

		textResponse(t, w, `{"prompt":"Gilded bronze amulet, macro shot","analysis":"วิเคราะห์พบ: งานสัมฤทธิ์ปิดทอง"}`)
	})

	got, err := client.Analyze(context.Background(), &models.AnalyzeRequest{
		Image:  []byte{0xff, 0xd8},
		MIME:   "image/jpeg",
		Locale: models.LocaleThai,
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if !strings.HasPrefix(got.Analysis, "วิเคราะห์พบ") {
		t.Errorf("Analysis = %q", got.Analysis)
	}
}

func TestAnalyze_FailureWrapsAnalysisError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom","status":"INTERNAL"}}`))
	})

	_, err := client.Analyze(context.Background(), &models.AnalyzeRequest{
		Image:  []byte{0xff, 0xd8},
		MIME:   "image/jpeg",
		Locale: models.LocaleEnglish,
	})
	if !errors.Is(err, provider.ErrAnalysisFailed) {
		t.Errorf("Analyze() error = %v, want ErrAnalysisFailed", err)
	}
}

func TestAnalyze_DefaultsMissingFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		textResponse(t, w, `{}`)
	})

	got, err := client.Analyze(context.Background(), &models.AnalyzeRequest{
		Image:  []byte{0xff, 0xd8},
		MIME:   "image/jpeg",
		Locale: models.LocaleThai,
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.Prompt != "Could not analyze image." {
		t.Errorf("Prompt = %q", got.Prompt)
	}
	if got.Analysis != "ไม่สามารถวิเคราะห์ภาพได้" {
		t.Errorf("Analysis = %q", got.Analysis)
	}
}
