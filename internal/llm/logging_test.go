package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aureus/cardiosim/internal/store"
)

type fakeRequestRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeRequestRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.events = append(f.events, data)
	return f.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	repo := &fakeRequestRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage("Place the first mark at the P onset."),
		Usage:   Usage{InputTokens: 120, OutputTokens: 12},
	})
	p := WithLogging(mock, repo, zap.New(core))

	ctx := WithPurpose(context.Background(), PurposeHint)
	_, err := p.Generate(ctx, Request{
		System: "You are an ECG instructor.",
		Messages: []Message{{
			Role:    RoleUser,
			Content: "I measured 240 ms.",
			Images:  []Image{{MIMEType: "image/png", Data: make([]byte, 16)}},
		}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Purpose != "measurement-hint" || e.Provider != "mock" || !e.Success {
		t.Errorf("event = %+v", e)
	}
	if e.InputTokens != 120 || e.OutputTokens != 12 {
		t.Errorf("tokens = %d/%d, want 120/12", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "<image image/png, 16 bytes>") {
		t.Errorf("request body does not summarize the image:\n%s", e.RequestBody)
	}
	if e.ResponseBody != "Place the first mark at the P onset." {
		t.Errorf("response body = %q", e.ResponseBody)
	}
	if logs.FilterMessage("llm request").Len() != 1 {
		t.Errorf("expected one info log line, got %v", logs.All())
	}
}

func TestLogging_RecordsFailureAndSurvivesRepoError(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	repo := &fakeRequestRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}})
	p := WithLogging(mock, repo, zap.New(core))

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if len(repo.events) != 1 || repo.events[0].Success || repo.events[0].ErrorMessage == "" {
		t.Errorf("event = %+v, want failed with message", repo.events)
	}
	if logs.FilterMessage("llm request failed").Len() != 1 {
		t.Error("missing failure log line")
	}
	if logs.FilterMessage("could not record llm request").Len() != 1 {
		t.Error("missing repo failure log line")
	}
}

func TestLogging_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`"x"`)})
	p := WithLogging(mock, nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID() = %q, want mock", p.ModelID())
	}
}

func TestTranscript(t *testing.T) {
	got := transcript(Request{
		System: "Be brief.",
		Messages: []Message{{
			Role:    RoleUser,
			Content: "Was I right?",
			Images:  []Image{{MIMEType: "image/jpeg", Data: make([]byte, 3)}},
		}},
		Schema: &Schema{Name: "diagnosis-verdict", Definition: map[string]any{"type": "object"}},
	})
	want := "[system]\nBe brief.\n\n" +
		"[user]\n<image image/jpeg, 3 bytes>\nWas I right?\n\n" +
		"[schema: diagnosis-verdict]\n{\"type\":\"object\"}\n"
	if got != want {
		t.Errorf("transcript =\n%q\nwant\n%q", got, want)
	}
}
