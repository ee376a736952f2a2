package recommend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGenerator calls the Gemini API with a structured-output schema
// and parses the constrained JSON response.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"recommendations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":                {Type: genai.TypeString, Description: "취미 이름 (한국어)"},
					"description":         {Type: genai.TypeString, Description: "상세한 설명 (한국어)"},
					"recommendationScore": {Type: genai.TypeNumber},
					"reasons": {
						Type:        genai.TypeArray,
						Items:       &genai.Schema{Type: genai.TypeString},
						Description: "추천 이유들 (한국어)",
					},
					"estimatedCost":  {Type: genai.TypeString, Description: "비용 범위 (한국어)"},
					"timeCommitment": {Type: genai.TypeString, Description: "필요한 시간 (한국어)"},
					"skillLevel":     {Type: genai.TypeString, Description: "난이도 (한국어)"},
					"socialAspect":   {Type: genai.TypeString, Description: "사회적 측면 (한국어)"},
				},
				Required: []string{
					"name", "description", "recommendationScore", "reasons",
					"estimatedCost", "timeCommitment", "skillLevel", "socialAspect",
				},
			},
		},
	},
	Required: []string{"recommendations"},
}

type recommendationsResponse struct {
	Recommendations []Hobby `json:"recommendations"`
}

func (g *GeminiGenerator) Generate(ctx context.Context, profile Profile) ([]Hobby, error) {
	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = responseSchema

	resp, err := model.GenerateContent(ctx, genai.Text(buildUserPrompt(profile)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	raw := responseText(resp)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}

	var parsed recommendationsResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrGenerationFailed, err)
	}
	if len(parsed.Recommendations) == 0 {
		return nil, fmt.Errorf("%w: no recommendations returned", ErrGenerationFailed)
	}

	return parsed.Recommendations, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	return out
}
