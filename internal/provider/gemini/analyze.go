package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/luckystation/luckygen/internal/provider"
	"github.com/luckystation/luckygen/pkg/models"
)

const analyzeSystemInstruction = `**Role:** Expert Art Historian & Reverse Prompt Engineer.

**Task:**
Analyze the provided image and generate:
1. A detailed English text prompt for AI image generation.
2. A short, professional [Target Language] summary of the art style, material, and subject.

**[LANGUAGE PROTOCOL]**
- **IF Target = 'th' (Thai):** Start analysis with "วิเคราะห์พบ: ...". Use formal Thai art terms.
- **IF Target = 'en' (English):** Start analysis with "Analysis: ...". Use expert art vocabulary (e.g., "Gilded bronze", "Chiaroscuro lighting").

**Output Format:**
Return JSON format only.`

// Analyze reverse-engineers a prompt from an image. Unlike fortunes there
// is no offline substitute, so every failure surfaces as ErrAnalysisFailed.
func (c *Client) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.Analysis, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrAnalysisFailed, err)
	}

	apiReq := &apiRequest{
		SystemInstruction: &content{Parts: []part{{Text: analyzeSystemInstruction}}},
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &blob{
					MIMEType: req.MIME,
					Data:     base64.StdEncoding.EncodeToString(req.Image),
				}},
				{Text: fmt.Sprintf("Analyze this image. Target Language: %s", req.Locale)},
			},
		}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &schema{
				Type: "OBJECT",
				Properties: map[string]*schema{
					"prompt":   {Type: "STRING"},
					"analysis": {Type: "STRING"},
				},
				Required: []string{"prompt", "analysis"},
			},
		},
	}

	resp, err := c.generateContent(ctx, c.textModel, apiReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrAnalysisFailed, err)
	}

	text := firstText(resp)
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", provider.ErrAnalysisFailed)
	}

	var analysis models.Analysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nil, fmt.Errorf("%w: unparseable response: %v", provider.ErrAnalysisFailed, err)
	}

	if analysis.Prompt == "" {
		analysis.Prompt = "Could not analyze image."
	}
	if analysis.Analysis == "" {
		if req.Locale == models.LocaleThai {
			analysis.Analysis = "ไม่สามารถวิเคราะห์ภาพได้"
		} else {
			analysis.Analysis = "Unable to analyze image."
		}
	}
	return &analysis, nil
}
