package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// GeminiConfig configures the Gemini generateContent backend.
type GeminiConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiGenerator calls the Gemini generateContent endpoint through the genai SDK.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed Generator.
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrCredentialMissing
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate issues one generateContent request and returns the first candidate's text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), geminiContentConfig(params))
	if err != nil {
		return "", classifyGeminiError(err)
	}
	return geminiText(resp)
}

func geminiContentConfig(params Params) *genai.GenerateContentConfig {
	safety := make([]*genai.SafetySetting, 0, len(params.SafetySettings))
	for _, s := range params.SafetySettings {
		safety = append(safety, &genai.SafetySetting{
			Category:  genai.HarmCategory(s.Category),
			Threshold: genai.HarmBlockThreshold(s.Threshold),
		})
	}

	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(params.Temperature),
		TopK:            genai.Ptr(float32(params.TopK)),
		TopP:            genai.Ptr(params.TopP),
		MaxOutputTokens: params.MaxOutputTokens,
		SafetySettings:  safety,
	}
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return statusError(apiErr.Code, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return statusError(apiErrPtr.Code, err)
	}
	return networkError(err)
}

func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", malformedError("empty response")
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", safetyError("prompt blocked: %s", resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", malformedError("response has no candidates")
	}

	candidate := resp.Candidates[0]
	switch candidate.FinishReason {
	case genai.FinishReasonSafety, genai.FinishReasonBlocklist, genai.FinishReasonProhibitedContent:
		return "", safetyError("candidate blocked: %s", candidate.FinishReason)
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", malformedError("candidate has no content")
	}

	var builder strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			builder.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(builder.String())
	if text == "" {
		return "", malformedError("candidate text is empty")
	}
	return text, nil
}
