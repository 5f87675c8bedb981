// Package config loads application settings from config.yaml, a .env
// file and CARDIOSIM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/aureus/cardiosim/internal/llm"
	"github.com/aureus/cardiosim/internal/logging"
)

const envPrefix = "CARDIOSIM"

// Sink kinds.
const (
	SinkSQLite = "sqlite"
	SinkSheets = "sheets"
	SinkBoth   = "both"
	SinkNone   = "none"
)

type Config struct {
	Bank BankConfig     `mapstructure:"bank"`
	DB   DBConfig       `mapstructure:"db"`
	Log  logging.Config `mapstructure:"log"`
	LLM  LLMConfig      `mapstructure:"llm"`
	Sink SinkConfig     `mapstructure:"sink"`
}

type BankConfig struct {
	// Path to a question bank JSON file. Empty uses the embedded sample.
	Path string `mapstructure:"path"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LLMConfig struct {
	Provider          string        `mapstructure:"provider"`
	Timeout           time.Duration `mapstructure:"timeout"`
	StructuredVerdict bool          `mapstructure:"structured_verdict"`

	Anthropic  ProviderConfig `mapstructure:"anthropic"`
	OpenAI     ProviderConfig `mapstructure:"openai"`
	Gemini     ProviderConfig `mapstructure:"gemini"`
	OpenRouter ProviderConfig `mapstructure:"openrouter"`
}

type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type SinkConfig struct {
	Kind   string       `mapstructure:"kind"`
	Sheets SheetsConfig `mapstructure:"sheets"`
}

type SheetsConfig struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	Range           string `mapstructure:"range"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

var defaults = map[string]any{
	"bank.path":                    "",
	"db.path":                      "",
	"log.level":                    "info",
	"log.file":                     "",
	"log.console":                  false,
	"log.max_size_mb":              20,
	"log.max_backups":              3,
	"log.max_age_days":             30,
	"llm.provider":                 "",
	"llm.timeout":                  "60s",
	"llm.structured_verdict":       false,
	"llm.anthropic.api_key":        "",
	"llm.anthropic.model":          "",
	"llm.anthropic.base_url":       "",
	"llm.openai.api_key":           "",
	"llm.openai.model":             "",
	"llm.openai.base_url":          "",
	"llm.gemini.api_key":           "",
	"llm.gemini.model":             "",
	"llm.gemini.base_url":          "",
	"llm.openrouter.api_key":       "",
	"llm.openrouter.model":         "",
	"llm.openrouter.base_url":      "",
	"sink.kind":                    SinkSQLite,
	"sink.sheets.spreadsheet_id":   "",
	"sink.sheets.range":            "Results!A1",
	"sink.sheets.credentials_file": "",
}

// Load reads configuration. path names an explicit config file; when
// empty, config.yaml is looked up in the working directory and the
// user config directory, and its absence is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names used by the store and the CLI.
	_ = v.BindEnv("db.path", "CARDIOSIM_DB", "CARDIOSIM_DB_PATH")
	_ = v.BindEnv("bank.path", "CARDIOSIM_BANK", "CARDIOSIM_BANK_PATH")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := userConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// userConfigDir is $XDG_CONFIG_HOME/cardiosim, or ~/.config/cardiosim.
func userConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "cardiosim"), nil
}

// LLMProvider returns the provider configuration. ok is false when no
// provider is set and none of the standard API key variables is present,
// in which case feedback runs offline.
func (c *Config) LLMProvider() (cfg llm.Config, ok bool) {
	if c.LLM.Provider == "" {
		cfg, ok = llm.DiscoverConfig()
		if !ok {
			return llm.Config{}, false
		}
	} else {
		cfg = llm.DefaultConfig()
		cfg.Provider = c.LLM.Provider
	}

	overlay(&cfg.Anthropic.APIKey, c.LLM.Anthropic.APIKey)
	overlay(&cfg.Anthropic.Model, c.LLM.Anthropic.Model)
	overlay(&cfg.OpenAI.APIKey, c.LLM.OpenAI.APIKey)
	overlay(&cfg.OpenAI.Model, c.LLM.OpenAI.Model)
	overlay(&cfg.OpenAI.BaseURL, c.LLM.OpenAI.BaseURL)
	overlay(&cfg.Gemini.APIKey, c.LLM.Gemini.APIKey)
	overlay(&cfg.Gemini.Model, c.LLM.Gemini.Model)
	overlay(&cfg.OpenRouter.APIKey, c.LLM.OpenRouter.APIKey)
	overlay(&cfg.OpenRouter.Model, c.LLM.OpenRouter.Model)
	overlay(&cfg.OpenRouter.BaseURL, c.LLM.OpenRouter.BaseURL)
	if c.LLM.Timeout > 0 {
		cfg.Timeout = c.LLM.Timeout
	}
	return cfg, true
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if lc, ok := c.LLMProvider(); ok {
		if err := lc.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	switch c.Sink.Kind {
	case SinkSQLite, SinkNone:
	case SinkSheets, SinkBoth:
		if c.Sink.Sheets.SpreadsheetID == "" {
			errs = append(errs, errors.New("sink.sheets.spreadsheet_id is required for the sheets sink"))
		}
		if c.Sink.Sheets.CredentialsFile == "" {
			errs = append(errs, errors.New("sink.sheets.credentials_file is required for the sheets sink"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown sink kind %q", c.Sink.Kind))
	}

	return errors.Join(errs...)
}
