package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/luckystation/luckygen/pkg/models"
)

var fontStyleValues = []string{"thai_traditional", "chinese_brush", "indian_sacred", "chibi", "standard"}

// EnhancePrompt asks the text model to rewrite a keyword into a full art
// prompt with a matching blessing and font style tag. The response is
// constrained to JSON through a response schema.
func (c *Client) EnhancePrompt(ctx context.Context, req *models.EnhanceRequest) (*models.EnhanceResponse, error) {
	apiReq := &apiRequest{
		SystemInstruction: &content{Parts: []part{{Text: req.SystemInstruction}}},
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: fmt.Sprintf("Generate prompt for keyword: %q", req.Keyword)}},
		}},
		GenerationConfig: &generationConfig{
			Temperature:      floatPtr(0.75),
			ResponseMIMEType: "application/json",
			ResponseSchema: &schema{
				Type: "OBJECT",
				Properties: map[string]*schema{
					"prompt":         {Type: "STRING"},
					"blessing":       {Type: "STRING"},
					"font_style_tag": {Type: "STRING", Enum: fontStyleValues},
				},
				Required: []string{"prompt", "blessing", "font_style_tag"},
			},
		},
	}

	resp, err := c.generateContent(ctx, c.textModel, apiReq)
	if err != nil {
		return nil, err
	}

	text := firstText(resp)
	if text == "" {
		return nil, fmt.Errorf("empty response from text model")
	}

	var enhanced models.EnhanceResponse
	if err := json.Unmarshal([]byte(text), &enhanced); err != nil {
		return nil, fmt.Errorf("failed to parse enhanced prompt: %w", err)
	}
	return &enhanced, nil
}

// Fortune asks the text model for a daily fortune. Temperature is kept
// high on purpose so repeated draws differ.
func (c *Client) Fortune(ctx context.Context, req *models.FortuneRequest) (*models.FortuneResult, error) {
	apiReq := &apiRequest{
		SystemInstruction: &content{Parts: []part{{Text: req.SystemInstruction}}},
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: fmt.Sprintf("[Deity]: %q \n [Target Language]: %q", req.Subject, req.Locale)}},
		}},
		GenerationConfig: &generationConfig{
			Temperature:      floatPtr(1.0),
			ResponseMIMEType: "application/json",
			ResponseSchema: &schema{
				Type: "OBJECT",
				Properties: map[string]*schema{
					"verse":         {Type: "STRING"},
					"prediction":    {Type: "STRING"},
					"lucky_numbers": {Type: "STRING"},
				},
				Required: []string{"verse", "prediction", "lucky_numbers"},
			},
		},
	}

	resp, err := c.generateContent(ctx, c.textModel, apiReq)
	if err != nil {
		return nil, err
	}

	text := firstText(resp)
	if text == "" {
		return nil, fmt.Errorf("empty response from text model")
	}

	var result models.FortuneResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("failed to parse fortune: %w", err)
	}
	return &result, nil
}
