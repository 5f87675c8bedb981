package llm

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"
)

func ask(text string) Request {
	return Request{Messages: []Message{{Role: RoleUser, Content: text}}}
}

func TestMockProvider_RepliesInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage("Start at the Q wave."), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockText("End where the T wave meets baseline."),
	)

	first, err := mock.Generate(context.Background(), ask("QT hint"))
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := mock.Generate(context.Background(), ask("QT hint again"))
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first.Text() != "Start at the Q wave." || second.Text() != "End where the T wave meets baseline." {
		t.Errorf("replies = %q, %q", first.Text(), second.Text())
	}
	if first.Usage.InputTokens != 10 || first.StopReason != "end" || first.Model != "mock" {
		t.Errorf("first = %+v", first)
	}
	if mock.CallCount() != 2 || mock.Calls[1].Messages[0].Content != "QT hint again" {
		t.Errorf("calls = %+v", mock.Calls)
	}

	_, err = mock.Generate(context.Background(), ask("one more"))
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("exhausted mock err = %v, want *ErrProviderUnavailable", err)
	}
}

func TestMockProvider_ScriptedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	_, err := mock.Generate(context.Background(), ask("hint"))
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %T, want *ErrRateLimit", err)
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(
		MockJSON(map[string]any{"verdict": "correct", "feedback": "Good axis."}),
		MockJSON(map[string]any{"verdict": "perhaps"}),
	)
	req := Request{Schema: verdictTestSchema()}

	resp, err := mock.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("valid reply rejected: %v", err)
	}
	if !strings.Contains(resp.Text(), `"verdict":"correct"`) {
		t.Errorf("Content = %s", resp.Content)
	}

	_, err = mock.Generate(context.Background(), req)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want *ErrInvalidResponse", err)
	}
}

func TestMockProvider_HonorsCancellation(t *testing.T) {
	mock := NewMockProvider(MockText("never seen"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := mock.Generate(ctx, ask("hint")); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestPurpose(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Errorf("unlabelled purpose = %q", got)
	}
	if got := PurposeFrom(WithPurpose(ctx, PurposeVerdict)); got != "diagnosis-eval" {
		t.Errorf("purpose = %q", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		cfg     Config
		wantErr string
	}{
		{cfg: Config{Provider: "anthropic"}, wantErr: "CARDIOSIM_LLM_ANTHROPIC_API_KEY"},
		{cfg: Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-ant"}}},
		{cfg: Config{Provider: "openai"}, wantErr: "OPENAI_API_KEY"},
		{cfg: Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-oai"}}},
		{cfg: Config{Provider: "gemini"}, wantErr: "GEMINI_API_KEY"},
		{cfg: Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}}},
		{cfg: Config{Provider: "mock"}},
		{cfg: Config{Provider: "ollama"}, wantErr: "want one of gemini, openai, anthropic, openrouter"},
	}
	for _, tt := range tests {
		t.Run(tt.cfg.Provider, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("found a provider with no keys set")
	}

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENAI_API_KEY", "sk-oai")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-oai" {
		t.Fatalf("cfg = %+v, ok = %v; want openai first", cfg, ok)
	}
	if cfg.Anthropic.APIKey != "" {
		t.Error("only the chosen vendor's key should be filled")
	}
	if cfg.Retry.MaxAttempts == 0 || cfg.Timeout == 0 {
		t.Error("discovered config lacks defaults")
	}
}

func TestProviders(t *testing.T) {
	if !slices.Equal(Providers(), []string{"gemini", "openai", "anthropic", "openrouter"}) {
		t.Errorf("Providers() = %v", Providers())
	}
}

func TestFinish(t *testing.T) {
	resp, err := finish(Request{}, json.RawMessage("Measure lead II."), Usage{InputTokens: 3, OutputTokens: 4}, "m", stopEnd)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Usage.TotalTokens != 7 || resp.Text() != "Measure lead II." {
		t.Errorf("resp = %+v", resp)
	}

	_, err = finish(Request{}, json.RawMessage("Measure le"), Usage{}, "m", stopMaxTokens)
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) || string(maxTok.Content) != "Measure le" {
		t.Errorf("err = %v, want truncation with partial content", err)
	}
}

func TestResponseText(t *testing.T) {
	var none *Response
	if none.Text() != "" {
		t.Error("nil response should have empty text")
	}
}
