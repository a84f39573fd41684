package anthropic

import (
	"context"
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/qiangli/polyglot/internal/llm"
)

const (
	Endpoint = "https://api.anthropic.com/v1/messages"

	Model             = anthropic.Model("claude-2")
	MaxTokensToSample = 2048
)

// Provider sends the legacy text completion shape
// {model, prompt, max_tokens_to_sample} to the Anthropic API.
type Provider struct{}

func New() *Provider {
	return &Provider{}
}

func (r *Provider) PrepareRequest(_ context.Context, prompt, credential string) (*llm.Request, error) {
	params := anthropic.CompletionNewParams{
		Model:             Model,
		Prompt:            prompt,
		MaxTokensToSample: MaxTokensToSample,
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return llm.NewRequest(Endpoint, map[string]string{
		"x-api-key": credential,
	}, body), nil
}

func (r *Provider) ParseResponse(_ context.Context, payload []byte) (string, error) {
	return llm.ExtractString(payload, "completion")
}
