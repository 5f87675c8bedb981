package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2,
	}
}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
}

func TestRetry_Attempts(t *testing.T) {
	tests := []struct {
		name      string
		replies   []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first try", []MockResponse{MockText("Start at the P onset.")}, false, 1},
		{"unavailable then ok", []MockResponse{down(), MockText("ok")}, false, 2},
		{"rate limited then ok", []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}, MockText("ok")}, false, 2},
		{"exhausted", []MockResponse{down(), down(), down(), MockText("never")}, true, 3},
		{"truncated", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, MockText("never")}, true, 1},
		{"bad key", []MockResponse{{Err: &ErrAuth{Err: errors.New("401")}}, MockText("never")}, true, 1},
		{"rejected image", []MockResponse{{Err: &ErrRejected{Status: http.StatusBadRequest, Err: errors.New("400")}}, MockText("never")}, true, 1},
		{"invalid output retried once", []MockResponse{
			{Err: &ErrInvalidResponse{Err: errors.New("schema")}},
			{Err: &ErrInvalidResponse{Err: errors.New("schema")}},
			MockText("never"),
		}, true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.replies...)
			_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetry_KeepsLastErrorType(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"verdict":`)}})
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("err = %T, want *ErrMaxTokensExceeded", err)
	}
}

func TestRetry_CancelledContext(t *testing.T) {
	mock := NewMockProvider(down(), down(), MockText("ok"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, fastRetry()).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetry_StopsBeforeDeadline(t *testing.T) {
	mock := NewMockProvider(down(), MockText("ok"))
	cfg := fastRetry()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want the provider error", err)
	}
	if time.Since(start) > time.Second {
		t.Fatal("slept although the backoff outlasts the deadline")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetry_ZeroAttemptsStillCallsOnce(t *testing.T) {
	mock := NewMockProvider(MockText(`"ok"`))
	resp, err := WithRetry(mock, RetryConfig{}).Generate(context.Background(), Request{})
	if err != nil || resp == nil || mock.CallCount() != 1 {
		t.Fatalf("resp = %v, err = %v, calls = %d", resp, err, mock.CallCount())
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	if id := WithRetry(NewMockProvider(), fastRetry()).ModelID(); id != "mock" {
		t.Fatalf("ModelID = %q", id)
	}
}

func TestTransient(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{&ErrProviderUnavailable{}, true},
		{&ErrRateLimit{}, true},
		{errors.New("connection reset"), true},
		{&ErrAuth{}, false},
		{&ErrRejected{Status: 413}, false},
		{&ErrMaxTokensExceeded{}, false},
		{context.DeadlineExceeded, false},
	}
	for _, tt := range tests {
		if got := Transient(tt.err); got != tt.want {
			t.Errorf("Transient(%T) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestClassifyStatus(t *testing.T) {
	base := errors.New("api")
	var (
		rl   *ErrRateLimit
		auth *ErrAuth
		rej  *ErrRejected
		unavail *ErrProviderUnavailable
	)
	if !errors.As(classifyStatus(429, base), &rl) {
		t.Error("429 should be a rate limit")
	}
	if !errors.As(classifyStatus(401, base), &auth) || !errors.As(classifyStatus(403, base), &auth) {
		t.Error("401/403 should be auth errors")
	}
	if !errors.As(classifyStatus(400, base), &rej) || rej.Status != 400 {
		t.Error("400 should be rejected")
	}
	if !errors.As(classifyStatus(502, base), &unavail) {
		t.Error("502 should be unavailable")
	}
	if !errors.Is(classifyStatus(500, base), base) {
		t.Error("classified error should wrap the original")
	}
}
