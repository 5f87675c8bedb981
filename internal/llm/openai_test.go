package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), model: "gpt-4o-mini"}
}

func TestOpenAIProvider_PlainText(t *testing.T) {
	p := newTestOpenAIProvider(t, replyJSON(http.StatusOK,
		chatCompletion("Your second mark sits past the QRS onset.", "stop", 40, 25)))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are an ECG instructor.",
		Messages:  []Message{{Role: RoleUser, Content: "Review my PR measurement."}},
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.Equal(t, "Your second mark sits past the QRS onset.", resp.Text())
	assert.Equal(t, Usage{InputTokens: 40, OutputTokens: 25, TotalTokens: 65}, resp.Usage)
	assert.Equal(t, "end", resp.StopReason)
}

func TestOpenAIProvider_StrictSchema(t *testing.T) {
	var sent struct {
		ResponseFormat struct {
			Type       string `json:"type"`
			JSONSchema struct {
				Name   string `json:"name"`
				Strict bool   `json:"strict"`
			} `json:"json_schema"`
		} `json:"response_format"`
	}
	reply := replyJSON(http.StatusOK,
		chatCompletion(`{"verdict":"incorrect","feedback":"That is atrial flutter."}`, "stop", 90, 15))
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&sent); err != nil {
			t.Errorf("decode request: %v", err)
		}
		reply(w, r)
	})

	resp, err := p.Generate(context.Background(), verdictRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"verdict":"incorrect","feedback":"That is atrial flutter."}`, resp.Text())
	assert.Equal(t, "json_schema", sent.ResponseFormat.Type)
	assert.Equal(t, "test-verdict", sent.ResponseFormat.JSONSchema.Name)
	assert.True(t, sent.ResponseFormat.JSONSchema.Strict)
}

func TestOpenAIProvider_InvalidVerdict(t *testing.T) {
	p := newTestOpenAIProvider(t, replyJSON(http.StatusOK,
		chatCompletion(`{"verdict":"maybe"}`, "stop", 90, 5)))

	_, err := p.Generate(context.Background(), verdictRequest())
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestOpenAIProvider_ErrorStatus(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{http.StatusForbidden, func(err error) bool { var e *ErrAuth; return errors.As(err, &e) }},
		{http.StatusRequestEntityTooLarge, func(err error) bool { var e *ErrRejected; return errors.As(err, &e) }},
		{http.StatusBadGateway, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			p := newTestOpenAIProvider(t, replyJSON(tt.status, map[string]any{
				"error": map[string]any{"type": "error", "message": "nope"},
			}))
			_, err := p.Generate(context.Background(), verdictRequest())
			assert.True(t, tt.check(err), "status %d mapped to %T (%v)", tt.status, err, err)
		})
	}
}

func TestOpenAIProvider_TruncatedReply(t *testing.T) {
	p := newTestOpenAIProvider(t, replyJSON(http.StatusOK, chatCompletion("Move your second", "length", 10, 4)))

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Hint please."}},
		MaxTokens: 4,
	})
	var maxTok *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTok)
}

func TestNewOpenAIProvider(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"})
	assert.Error(t, err, "missing key")

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4.1", BaseURL: "http://localhost:1234/v1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1", p.ModelID())
}

func TestBuildOpenAIMessages_Images(t *testing.T) {
	msgs := buildOpenAIMessages(Request{
		System: "sys",
		Messages: []Message{
			{Role: RoleUser, Content: "plain"},
			{Role: RoleUser, Content: "with tracing", Images: []Image{{MIMEType: "image/png", Data: []byte("ecg")}}},
		},
	})
	require.Len(t, msgs, 3)
	assert.Equal(t, "plain", msgs[1].Content)
	assert.Nil(t, msgs[1].MultiContent, "text-only messages use Content")

	parts := msgs[2].MultiContent
	require.Len(t, parts, 2)
	assert.Equal(t, openai.ChatMessagePartTypeImageURL, parts[0].Type)
	assert.Equal(t, "data:image/png;base64,ZWNn", parts[0].ImageURL.URL)
	assert.Equal(t, "with tracing", parts[1].Text)
}
