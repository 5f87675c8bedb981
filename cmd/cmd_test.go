package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/config"
	"github.com/aureus/cardiosim/internal/sink"
	"github.com/aureus/cardiosim/internal/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestNewSink(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	cfg := &config.Config{Sink: config.SinkConfig{Kind: config.SinkSQLite}}
	sk, err := newSink(ctx, cfg, st)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", sk.Name())

	cfg.Sink.Kind = config.SinkNone
	sk, err = newSink(ctx, cfg, st)
	require.NoError(t, err)
	assert.Equal(t, sink.Nop{}, sk)

	cfg.Sink.Kind = config.SinkSheets
	cfg.Sink.Sheets = config.SheetsConfig{SpreadsheetID: "abc", CredentialsFile: filepath.Join(t.TempDir(), "missing.json")}
	_, err = newSink(ctx, cfg, st)
	assert.Error(t, err)
}

func TestNewAdvisor_Offline(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	a := newAdvisor(context.Background(), &config.Config{}, testStore(t), zap.NewNop())
	assert.False(t, a.Online())
}

func TestNewAdvisor_Mock(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{Provider: "mock"}}
	a := newAdvisor(context.Background(), cfg, testStore(t), zap.NewNop())
	assert.True(t, a.Online())
}

func TestMissingImages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.png"), []byte("png"), 0o644))
	doc := `{"visual": [
	  {"id": "v1", "topic": "PR", "image": "ok.png", "corrected_image": "gone.png",
	   "instruction": "Measure", "correct_ms": 160, "tolerance_ms": 20}
	], "multiple_choice": [], "open": []}`
	path := filepath.Join(dir, "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	b, err := bank.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"v1: gone.png"}, missingImages(b))

	sample, err := bank.Load("")
	require.NoError(t, err)
	assert.Empty(t, missingImages(sample))
}

func TestPrintEvents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printEvents(&buf, nil))
	assert.Contains(t, buf.String(), "No requests recorded.")

	buf.Reset()
	events := []store.LLMEvent{
		{ID: 2, Timestamp: time.Now(), LLMRequestEventData: store.LLMRequestEventData{
			Model: "gpt-4o", Purpose: "diagnosis-eval", ErrorMessage: "rate limited"}},
		{ID: 1, Timestamp: time.Now(), LLMRequestEventData: store.LLMRequestEventData{
			Model: "gpt-4o", Purpose: "measurement-hint", InputTokens: 120, Success: true}},
	}
	require.NoError(t, printEvents(&buf, events))
	out := buf.String()
	assert.Contains(t, out, "PURPOSE")
	assert.Contains(t, out, "measurement-hint")
	assert.Contains(t, out, "✗ rate limited")
	assert.Contains(t, out, "120")
}

func TestPrintEvent(t *testing.T) {
	var buf bytes.Buffer
	printEvent(&buf, &store.LLMEvent{ID: 7, LLMRequestEventData: store.LLMRequestEventData{
		Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "measurement-hint",
		Success: true, RequestBody: "[user]\nPR 240 ms",
	}})
	out := buf.String()
	assert.Contains(t, out, "#7  measurement-hint")
	assert.Contains(t, out, "PR 240 ms")
	assert.Contains(t, out, "(not captured)")
	assert.NotContains(t, out, "failed:")
}

func TestPrintUsage(t *testing.T) {
	byPurpose := []store.LLMUsage{
		{Purpose: "diagnosis-eval", Calls: 1, InputTokens: 1000, OutputTokens: 100},
		{Purpose: "measurement-hint", Calls: 2, InputTokens: 500, OutputTokens: 50},
	}
	byModel := []store.LLMUsage{
		{Model: "claude-sonnet-4-20250514", Calls: 2, InputTokens: 1_000_000},
		{Model: "local-ecg-model", Calls: 1},
	}
	var buf bytes.Buffer
	require.NoError(t, printUsage(&buf, byPurpose, byModel))
	out := buf.String()
	assert.Contains(t, out, "1500")
	assert.Contains(t, out, "$3.00")
	assert.Contains(t, out, "+ ?")
	assert.Contains(t, out, "No pricing for local-ecg-model.")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Ana", truncate("Ana", 5))
	assert.Equal(t, "Fern…", truncate("Fernández", 5))
}
