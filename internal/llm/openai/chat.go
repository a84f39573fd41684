package openai

import (
	"context"
	"encoding/json"

	"github.com/openai/openai-go"

	"github.com/qiangli/polyglot/internal/llm"
)

// https://platform.openai.com/docs/api-reference/chat/create
const (
	Endpoint = "https://api.openai.com/v1/chat/completions"

	Model     = openai.ChatModelGPT3_5Turbo
	MaxTokens = 2048

	SystemInstruction = "You are a helpful assistant that improves program code."
)

const contentPath = "choices.0.message.content"

// Provider talks to the OpenAI chat completion API.
type Provider struct{}

func New() *Provider {
	return &Provider{}
}

func (r *Provider) PrepareRequest(_ context.Context, prompt, credential string) (*llm.Request, error) {
	params := openai.ChatCompletionNewParams{
		Model: Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemInstruction),
			openai.UserMessage(prompt),
		},
		MaxTokens: openai.Int(MaxTokens),
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return llm.NewRequest(Endpoint, map[string]string{
		"Authorization": "Bearer " + credential,
	}, body), nil
}

func (r *Provider) ParseResponse(_ context.Context, payload []byte) (string, error) {
	return llm.ExtractString(payload, contentPath)
}
