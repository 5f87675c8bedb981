package llm

import (
	"errors"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider reaches many vendors' vision models through
// OpenRouter's OpenAI-compatible API.
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter: API key is required")
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = openRouterURL
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	oc.HTTPClient = &http.Client{Transport: attribution{next: http.DefaultTransport}}

	return &OpenRouterProvider{&OpenAIProvider{
		client: openai.NewClientWithConfig(oc),
		model:  cfg.Model,
	}}, nil
}

// attribution adds the app identification headers OpenRouter shows in
// its usage dashboard.
type attribution struct {
	next http.RoundTripper
}

func (a attribution) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("X-Title", "CardioSim")
	r.Header.Set("HTTP-Referer", "https://github.com/aureus/cardiosim")
	return a.next.RoundTrip(r)
}
