package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/luckystation/luckygen/internal/provider"
	"github.com/luckystation/luckygen/pkg/models"
)

const imageSystemInstruction = "You are a professional digital artist. Generate high-quality images. Do not generate text in the image."

var imageSafetySettings = []safetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_ONLY_HIGH"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_ONLY_HIGH"},
}

// GenerateImage renders a single image. The negative constraints travel
// inside the prompt text because the image endpoint has no dedicated
// negative-prompt field.
func (c *Client) GenerateImage(ctx context.Context, req *models.GenerateRequest) (*models.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	finalPrompt := "Generate a high-quality image of: " + req.Prompt +
		" \n\nNegative Constraints/Exclusions: " + req.NegativePrompt

	var parts []part
	if len(req.Reference) > 0 {
		parts = append(parts, part{InlineData: &blob{
			MIMEType: req.ReferenceMIME,
			Data:     base64.StdEncoding.EncodeToString(req.Reference),
		}})
	}
	parts = append(parts, part{Text: finalPrompt})

	apiReq := &apiRequest{
		SystemInstruction: &content{Parts: []part{{Text: imageSystemInstruction}}},
		Contents:          []content{{Role: "user", Parts: parts}},
		GenerationConfig: &generationConfig{
			ImageConfig: &imageConfig{AspectRatio: req.AspectRatio},
		},
		SafetySettings: imageSafetySettings,
	}

	resp, err := c.generateContent(ctx, c.imageModel, apiReq)
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates returned", provider.ErrSafetyBlocked)
	}

	cand := resp.Candidates[0]
	if cand.FinishReason == "SAFETY" || cand.FinishReason == "RECITATION" {
		return nil, fmt.Errorf("%w: finish reason %s", provider.ErrSafetyBlocked, cand.FinishReason)
	}

	for _, p := range cand.Content.Parts {
		if p.InlineData == nil {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image data: %w", err)
		}
		mimeType := p.InlineData.MIMEType
		if mimeType == "" {
			mimeType = "image/png"
		}
		return &models.GenerateResponse{Data: data, MIMEType: mimeType}, nil
	}

	return nil, fmt.Errorf("%w: response contained no image data", provider.ErrSafetyBlocked)
}
