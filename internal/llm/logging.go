package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aureus/cardiosim/internal/store"
)

// LoggingProvider writes one log line and one request-log row per
// Generate call.
type LoggingProvider struct {
	inner  Provider
	repo   store.LLMRequestRepo
	logger *zap.Logger
}

// WithLogging wraps p. repo may be nil, in which case only the log line
// is written.
func WithLogging(p Provider, repo store.LLMRequestRepo, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, repo: repo, logger: logger.Named("llm")}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := l.event(ctx, req, resp, err)
	ev.LatencyMs = time.Since(start).Milliseconds()

	fields := []zap.Field{
		zap.String("provider", ev.Provider),
		zap.String("purpose", ev.Purpose),
		zap.String("model", ev.Model),
		zap.Int64("latency_ms", ev.LatencyMs),
		zap.Int("input_tokens", ev.InputTokens),
		zap.Int("output_tokens", ev.OutputTokens),
	}
	if err != nil {
		l.logger.Warn("llm request failed", append(fields, zap.Error(err))...)
	} else {
		l.logger.Info("llm request", fields...)
	}

	if l.repo != nil {
		if werr := l.repo.AppendLLMRequest(ctx, ev); werr != nil {
			l.logger.Warn("could not record llm request", zap.Error(werr))
		}
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) event(ctx context.Context, req Request, resp *Response, err error) store.LLMRequestEventData {
	ev := store.LLMRequestEventData{
		Provider:    vendorOf(l.inner),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}
	return ev
}

func vendorOf(p Provider) string {
	switch p.(type) {
	case *MockProvider:
		return "mock"
	case *AnthropicProvider:
		return "anthropic"
	case *GeminiProvider:
		return "gemini"
	case *OpenRouterProvider:
		return "openrouter"
	case *OpenAIProvider:
		return "openai"
	default:
		return "unknown"
	}
}

// transcript renders req as readable text for the request log. Image
// bytes are replaced by a one-line summary.
func transcript(req Request) string {
	var b strings.Builder
	section := func(label, body string) {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", label, body)
	}

	if req.System != "" {
		section("system", req.System)
	}
	for _, m := range req.Messages {
		var body strings.Builder
		for _, img := range m.Images {
			fmt.Fprintf(&body, "<image %s, %d bytes>\n", img.MIMEType, len(img.Data))
		}
		body.WriteString(m.Content)
		section(string(m.Role), body.String())
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			section("schema: "+req.Schema.Name, string(def))
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
