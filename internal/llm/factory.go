package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aureus/cardiosim/internal/store"
)

// NewProvider builds the configured provider. Each attempt is logged to
// repo (which may be nil), and the retry decorator sits outermost so
// every retry shows up in the log.
func NewProvider(ctx context.Context, cfg Config, repo store.LLMRequestRepo, logger *zap.Logger) (Provider, error) {
	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return WithRetry(WithLogging(base, repo, logger), cfg.Retry), nil
}
