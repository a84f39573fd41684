package gemini

import (
	"context"
	"encoding/json"
	"net/url"

	"google.golang.org/genai"

	"github.com/qiangli/polyglot/internal/llm"
)

// https://ai.google.dev/api/generate-content
const Endpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

const (
	Temperature     float32 = 0.7
	TopK            float32 = 40
	TopP            float32 = 0.95
	MaxOutputTokens int32   = 2048
)

const textPath = "candidates.0.content.parts.0.text"

type generateContentRequest struct {
	Contents         []*genai.Content        `json:"contents"`
	GenerationConfig *genai.GenerationConfig `json:"generationConfig"`
}

// Provider talks to the Gemini generateContent REST API.
// The credential travels as the key query parameter.
type Provider struct{}

func New() *Provider {
	return &Provider{}
}

func (r *Provider) PrepareRequest(_ context.Context, prompt, credential string) (*llm.Request, error) {
	req := generateContentRequest{
		Contents: []*genai.Content{
			{Parts: []*genai.Part{genai.NewPartFromText(prompt)}},
		},
		GenerationConfig: &genai.GenerationConfig{
			Temperature:     genai.Ptr(Temperature),
			TopK:            genai.Ptr(TopK),
			TopP:            genai.Ptr(TopP),
			MaxOutputTokens: MaxOutputTokens,
		},
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return llm.NewRequest(Endpoint+"?key="+url.QueryEscape(credential), nil, body), nil
}

func (r *Provider) ParseResponse(_ context.Context, payload []byte) (string, error) {
	return llm.ExtractString(payload, textPath)
}
