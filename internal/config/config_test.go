package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureus/cardiosim/internal/logging"
)

// isolate clears every variable Load and DiscoverConfig look at.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"CARDIOSIM_DB", "CARDIOSIM_DB_PATH", "CARDIOSIM_BANK", "CARDIOSIM_BANK_PATH",
		"CARDIOSIM_LLM_PROVIDER", "CARDIOSIM_SINK_KIND",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, SinkSQLite, cfg.Sink.Kind)
	assert.Equal(t, "Results!A1", cfg.Sink.Sheets.Range)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Empty(t, cfg.Bank.Path)
	assert.NoError(t, cfg.Validate())

	_, ok := cfg.LLMProvider()
	assert.False(t, ok, "no provider configured or discovered")
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
bank:
  path: /srv/ecg/bank.json
llm:
  provider: anthropic
  timeout: 15s
  anthropic:
    api_key: from-file
    model: claude-haiku
sink:
  kind: both
  sheets:
    spreadsheet_id: sheet-123
    credentials_file: /etc/cardiosim/sa.json
`)
	t.Setenv("CARDIOSIM_LLM_ANTHROPIC_API_KEY", "from-env")
	t.Setenv("CARDIOSIM_DB", "/tmp/cardio.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/ecg/bank.json", cfg.Bank.Path)
	assert.Equal(t, "/tmp/cardio.db", cfg.DB.Path)
	assert.Equal(t, "from-env", cfg.LLM.Anthropic.APIKey)
	assert.Equal(t, SinkBoth, cfg.Sink.Kind)
	require.NoError(t, cfg.Validate())

	lc, ok := cfg.LLMProvider()
	require.True(t, ok)
	assert.Equal(t, "anthropic", lc.Provider)
	assert.Equal(t, "from-env", lc.Anthropic.APIKey)
	assert.Equal(t, "claude-haiku", lc.Anthropic.Model)
	assert.Equal(t, 15*time.Second, lc.Timeout)
	assert.Equal(t, 3, lc.Retry.MaxAttempts)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLLMProvider_Discovery(t *testing.T) {
	isolate(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Load("")
	require.NoError(t, err)

	lc, ok := cfg.LLMProvider()
	require.True(t, ok)
	assert.Equal(t, "gemini", lc.Provider)
	assert.Equal(t, "g-key", lc.Gemini.APIKey)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Log:  loggingInfo(),
			Sink: SinkConfig{Kind: SinkNone},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "ok", mutate: func(c *Config) {}},
		{name: "sheets without id", mutate: func(c *Config) {
			c.Sink.Kind = SinkSheets
			c.Sink.Sheets.CredentialsFile = "sa.json"
		}, wantErr: "spreadsheet_id"},
		{name: "both without credentials", mutate: func(c *Config) {
			c.Sink.Kind = SinkBoth
			c.Sink.Sheets.SpreadsheetID = "x"
		}, wantErr: "credentials_file"},
		{name: "unknown sink", mutate: func(c *Config) { c.Sink.Kind = "ftp" }, wantErr: "unknown sink"},
		{name: "provider without key", mutate: func(c *Config) { c.LLM.Provider = "openai" }, wantErr: "CARDIOSIM_LLM_OPENAI_API_KEY"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "chatty" }, wantErr: "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func loggingInfo() logging.Config {
	return logging.Config{Level: "info"}
}
