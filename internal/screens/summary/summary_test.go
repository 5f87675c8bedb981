package summary

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/router"
	sess "github.com/aureus/cardiosim/internal/session"
	"github.com/aureus/cardiosim/internal/sink"
)

const testBank = `{
  "visual": [],
  "open": [],
  "multiple_choice": [
    {"id": "mc1", "topic": "Conduction", "question": "Upper PR limit?",
     "options": {"120 ms": "Lower limit.", "200 ms": "Right."}, "correct_answer": "200 ms"},
    {"id": "mc2", "topic": "Rate", "question": "Three large squares?",
     "options": {"100 bpm": "Right.", "150 bpm": "Two squares."}, "correct_answer": "100 bpm"}
  ]
}`

type fakeSink struct {
	err     error
	records []sink.Record
}

func (f *fakeSink) Append(_ context.Context, r sink.Record) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, r)
	return nil
}

func (f *fakeSink) Name() string { return "fake" }

func completedSession(t *testing.T, sk sink.Sink) *sess.Session {
	t.Helper()
	b, err := bank.Parse([]byte(testBank), "test", "")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	s := sess.New(sess.Options{Bank: b, Sink: sk})
	if err := s.Start(bank.ModalityChoice); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	for _, label := range []string{"200 ms", "150 bpm"} {
		if _, err := s.SubmitChoice(label); err != nil {
			t.Fatalf("SubmitChoice(%q) error = %v", label, err)
		}
		if _, err := s.Advance(sess.Next); err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
	}
	if !s.Completed() {
		t.Fatal("session should be completed")
	}
	return s
}

// run executes a save command and settles its reply the way the app does.
func run(t *testing.T, s *SummaryScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(ResultSavedMsg)
	if !ok {
		t.Fatal("expected a ResultSavedMsg")
	}
	msg.Settle(s.session)
}

func TestSummaryScreen_SavesOnce(t *testing.T) {
	sk := &fakeSink{}
	s := New(completedSession(t, sk))

	run(t, s, s.Init())
	if len(sk.records) != 1 {
		t.Fatalf("records = %d, want 1", len(sk.records))
	}
	if r := sk.records[0]; r.Correct != 1 || r.Total != 2 || r.Percent != 50 {
		t.Errorf("record = %d/%d %d%%, want 1/2 50%%", r.Correct, r.Total, r.Percent)
	}

	// Re-entering the screen must not append again.
	again := New(s.session)
	if cmd := again.Init(); cmd != nil {
		t.Error("second Init should not save")
	}
	if !strings.Contains(s.View(100, 40), "Result saved.") {
		t.Error("view should confirm the save")
	}
}

func TestSummaryScreen_RetryAfterFailure(t *testing.T) {
	sk := &fakeSink{err: errors.New("disk full")}
	s := New(completedSession(t, sk))

	run(t, s, s.Init())
	if s.session.SaveState().Err == nil {
		t.Fatal("expected a save error")
	}
	if !strings.Contains(s.View(100, 40), "disk full") {
		t.Error("view should show the save error")
	}

	sk.err = nil
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	run(t, s, cmd)
	if !s.session.SaveState().Saved {
		t.Error("retry should save")
	}
	if len(sk.records) != 1 {
		t.Errorf("records = %d, want 1", len(sk.records))
	}

	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); cmd != nil {
		t.Error("retry after success should do nothing")
	}
}

func TestSummaryScreen_View(t *testing.T) {
	s := New(completedSession(t, sink.Nop{}))
	view := s.View(100, 40)
	for _, want := range []string{"1 / 2 correct", "50%", "Needs reinforcement", "Fair", "Conduction", "Rate"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Enter(t *testing.T) {
	s := New(completedSession(t, sink.Nop{}))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
}

func TestSummaryScreen_NewSession(t *testing.T) {
	se := completedSession(t, sink.Nop{})
	s := New(se)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if se.Completed() || se.Ledger().Len() != 0 {
		t.Error("restart should clear the session")
	}
}

func TestSummaryScreen_PendingSave(t *testing.T) {
	sk := &fakeSink{err: errors.New("disk full")}
	s := New(completedSession(t, sk))

	cmd := s.Init()
	if !strings.Contains(s.View(100, 40), "Saving result...") {
		t.Error("view should show the save in progress")
	}
	if _, again := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); again != nil {
		t.Error("retry while saving should do nothing")
	}
	if _, restart := s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"}); restart != nil {
		t.Error("restart while saving should do nothing")
	}
	run(t, s, cmd)
	if !strings.Contains(s.View(100, 40), "Press R to try again.") {
		t.Error("view should offer a retry after the failure")
	}
}
