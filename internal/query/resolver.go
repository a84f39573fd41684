package query

import (
	"strings"

	"github.com/qiangli/polyglot/internal/llm"
	"github.com/qiangli/polyglot/internal/llm/anthropic"
	"github.com/qiangli/polyglot/internal/llm/gemini"
	"github.com/qiangli/polyglot/internal/llm/interactive"
	"github.com/qiangli/polyglot/internal/llm/openai"
)

// Known endpoint prefixes, in match order.
const (
	InteractivePrefix = llm.LocalInteractiveURL
	GeminiPrefix      = "https://generativelanguage.googleapis.com"
	OpenAIPrefix      = "https://api.openai.com"
	AnthropicPrefix   = "https://api.anthropic.com"
)

type route struct {
	prefix   string
	provider llm.Provider
}

// Resolver maps an endpoint URL to its provider by prefix.
// Resolving never performs I/O.
type Resolver struct {
	routes []route
}

// NewResolver returns a resolver for the built-in providers. The interactive
// provider is wired to the given terminal and clipboards.
func NewResolver(term interactive.Config) *Resolver {
	return &Resolver{
		routes: []route{
			// the sentinel looks like a URL but must never reach the network
			{InteractivePrefix, interactive.New(term)},
			{GeminiPrefix, gemini.New()},
			{OpenAIPrefix, openai.New()},
			{AnthropicPrefix, anthropic.New()},
		},
	}
}

func (r *Resolver) Resolve(endpoint string) (llm.Provider, error) {
	for _, v := range r.routes {
		if strings.HasPrefix(endpoint, v.prefix) {
			return v.provider, nil
		}
	}
	return nil, &llm.UnsupportedProviderError{Endpoint: endpoint}
}

// Prefixes lists the known endpoint prefixes in match order.
func (r *Resolver) Prefixes() []string {
	var prefixes []string
	for _, v := range r.routes {
		prefixes = append(prefixes, v.prefix)
	}
	return prefixes
}

// IsInteractive reports whether the endpoint is answered by a human operator.
func IsInteractive(endpoint string) bool {
	return strings.HasPrefix(endpoint, InteractivePrefix)
}
