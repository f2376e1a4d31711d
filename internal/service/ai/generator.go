package ai

import "context"

// Generator is the narrow contract of a remote text-generation endpoint.
type Generator interface {
	Generate(ctx context.Context, prompt string, params Params) (string, error)
}

// Harm categories and thresholds use the Gemini wire names.
const (
	HarmCategoryHarassment       = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent = "HARM_CATEGORY_DANGEROUS_CONTENT"

	BlockMediumAndAbove = "BLOCK_MEDIUM_AND_ABOVE"
)

// SafetySetting is the blocking threshold for one harm category.
type SafetySetting struct {
	Category  string
	Threshold string
}

// Params are the sampling and safety parameters of one request.
type Params struct {
	Temperature     float32
	TopK            int32
	TopP            float32
	MaxOutputTokens int32
	SafetySettings  []SafetySetting
}

// DefaultParams returns the generation parameters used for every companion reply.
func DefaultParams() Params {
	return Params{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 150,
		SafetySettings: []SafetySetting{
			{Category: HarmCategoryHarassment, Threshold: BlockMediumAndAbove},
			{Category: HarmCategoryHateSpeech, Threshold: BlockMediumAndAbove},
			{Category: HarmCategorySexuallyExplicit, Threshold: BlockMediumAndAbove},
			{Category: HarmCategoryDangerousContent, Threshold: BlockMediumAndAbove},
		},
	}
}
