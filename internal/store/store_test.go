package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasOnEveryConnection(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Hold two connections at once so the pool cannot hand back the same one.
	c1, err := s.DB().Conn(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer c1.Close()
	c2, err := s.DB().Conn(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer c2.Close()

	want := map[string]string{"journal_mode": "wal", "foreign_keys": "1", "synchronous": "1", "busy_timeout": "5000"}
	for i, c := range []*sql.Conn{c1, c2} {
		for pragma, v := range want {
			var got string
			if err := c.QueryRowContext(ctx, "PRAGMA "+pragma).Scan(&got); err != nil {
				t.Fatalf("conn %d PRAGMA %s: %v", i, pragma, err)
			}
			if got != v {
				t.Errorf("conn %d PRAGMA %s = %q, want %q", i, pragma, got, v)
			}
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"llm_request_events", "session_results"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.ResultRepo().AppendResult(ctx, Result{SessionID: "s1", Modality: "multiple-choice", Correct: 1, Total: 2, Percent: 50}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.ResultRepo().ListResults(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("results = %d, want 1", len(got))
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "measurement-hint", InputTokens: 100, OutputTokens: 40, LatencyMs: 900, Success: true, RequestBody: "[user]\nPR 240", ResponseBody: "Start at the P onset."},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "diagnosis-eval", InputTokens: 300, OutputTokens: 80, LatencyMs: 1500, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-20250514", Purpose: "measurement-hint", LatencyMs: 100, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("events = %d, want 3", len(all))
	}
	if all[0].ErrorMessage != "rate limited" {
		t.Errorf("newest event error = %q, want rate limited", all[0].ErrorMessage)
	}
	if all[0].Timestamp.IsZero() {
		t.Error("timestamp not set")
	}

	hints, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "measurement-hint", Limit: 1})
	if err != nil {
		t.Fatalf("query purpose: %v", err)
	}
	if len(hints) != 1 || hints[0].Success {
		t.Errorf("limited purpose query = %+v, want the failed hint", hints)
	}

	failed, err := repo.QueryLLMEvents(ctx, QueryOpts{FailedOnly: true})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(failed) != 1 || failed[0].ErrorMessage != "rate limited" {
		t.Errorf("failed-only query = %+v", failed)
	}

	first, err := repo.GetLLMEvent(ctx, all[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first == nil || first.ResponseBody != "Start at the P onset." {
		t.Errorf("GetLLMEvent body = %+v", first)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("GetLLMEvent(9999) = %+v, want nil", missing)
	}
}

func TestEventRepo_Usage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Model: "gpt-4o", Purpose: "measurement-hint", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
		{Model: "gpt-4o", Purpose: "measurement-hint", InputTokens: 20, OutputTokens: 5, LatencyMs: 300, Success: true},
		{Model: "gemini-2.5-flash", Purpose: "diagnosis-eval", InputTokens: 7, OutputTokens: 3, LatencyMs: 50, Success: true},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	hint := byPurpose[1]
	if hint.Purpose != "measurement-hint" || hint.Calls != 2 || hint.InputTokens != 30 || hint.AvgLatencyMs != 200 {
		t.Errorf("measurement-hint usage = %+v", hint)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "gemini-2.5-flash" {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestResultRepo_ListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	for i, pct := range []int{50, 75, 100} {
		_, err := repo.AppendResult(ctx, Result{
			SessionID:  "sess",
			Name:       "Ana",
			Experience: "Beginner",
			Modality:   "visual-measurement",
			Correct:    pct / 25,
			Total:      4,
			Percent:    pct,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.ListResults(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("results = %d, want 2", len(got))
	}
	if got[0].Percent != 100 || got[1].Percent != 75 {
		t.Errorf("order = %d, %d, want 100, 75", got[0].Percent, got[1].Percent)
	}
	if got[0].RecordedAt.IsZero() {
		t.Error("recorded_at not set")
	}
}

func TestResultRepo_KeepsRecordedAt(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	id, err := repo.AppendResult(ctx, Result{
		SessionID:  "sess",
		DocumentID: "CC-1020",
		Modality:   "multiple-choice",
		RecordedAt: at,
		Correct:    3,
		Total:      4,
		Percent:    75,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.ListResults(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != id {
		t.Fatalf("results = %+v, want id %d", got, id)
	}
	if !got[0].RecordedAt.Equal(at) {
		t.Errorf("recorded_at = %v, want %v", got[0].RecordedAt, at)
	}
	if got[0].DocumentID != "CC-1020" || got[0].Name != "" {
		t.Errorf("row = %+v", got[0])
	}

	n, err := s.Client().SessionResult.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestEventRepo_UsageEmptyLog(t *testing.T) {
	s := openTestStore(t)
	usage, err := s.EventRepo().LLMUsageByPurpose(context.Background())
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	if len(usage) != 0 {
		t.Errorf("usage = %+v, want none", usage)
	}
}
