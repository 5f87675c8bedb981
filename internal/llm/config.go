package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and configures the feedback model. internal/config
// builds it from the config file and environment.
type Config struct {
	// Provider is one of the names in Providers, or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one feedback request, retries included.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// vendor ties a provider name to the API key variable its SDK documents
// and to where the key lives in Config.
type vendor struct {
	name   string
	keyEnv string
	key    func(*Config) *string
}

// vendors in discovery order.
var vendors = []vendor{
	{"gemini", "GEMINI_API_KEY", func(c *Config) *string { return &c.Gemini.APIKey }},
	{"openai", "OPENAI_API_KEY", func(c *Config) *string { return &c.OpenAI.APIKey }},
	{"anthropic", "ANTHROPIC_API_KEY", func(c *Config) *string { return &c.Anthropic.APIKey }},
	{"openrouter", "OPENROUTER_API_KEY", func(c *Config) *string { return &c.OpenRouter.APIKey }},
}

// Providers lists the supported provider names.
func Providers() []string {
	names := make([]string, len(vendors))
	for i, v := range vendors {
		names[i] = v.name
	}
	return names
}

// DefaultConfig picks a vision-capable model for every vendor.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-sonnet"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: time.Minute,
	}
}

// DiscoverConfig returns a Config for the first vendor whose standard API
// key variable is set. ok is false when none is.
func DiscoverConfig() (cfg Config, ok bool) {
	for _, v := range vendors {
		if k := os.Getenv(v.keyEnv); k != "" {
			cfg = DefaultConfig()
			cfg.Provider = v.name
			*v.key(&cfg) = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks the selected provider is known and has a key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	for _, v := range vendors {
		if v.name != c.Provider {
			continue
		}
		if *v.key(&c) == "" {
			return fmt.Errorf("%s provider needs an API key: set CARDIOSIM_LLM_%s_API_KEY or %s",
				v.name, strings.ToUpper(v.name), v.keyEnv)
		}
		return nil
	}
	return fmt.Errorf("unknown LLM provider %q (want one of %s)", c.Provider, strings.Join(Providers(), ", "))
}
