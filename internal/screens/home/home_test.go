package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/router"
	sessionscreen "github.com/aureus/cardiosim/internal/screens/session"
	"github.com/aureus/cardiosim/internal/screens/summary"
	sess "github.com/aureus/cardiosim/internal/session"
)

const testBank = `{
  "visual": [],
  "multiple_choice": [
    {"id": "mc1", "topic": "Conduction", "question": "Upper PR limit?",
     "options": {"120 ms": "Lower limit.", "200 ms": "Right."}, "correct_answer": "200 ms"}
  ],
  "open": []
}`

func testHome(t *testing.T) (*HomeScreen, *sess.Session) {
	t.Helper()
	b, err := bank.Parse([]byte(testBank), "test", "")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	s := sess.New(sess.Options{Bank: b})
	return New(s, nil), s
}

func enter(h *HomeScreen) tea.Cmd {
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestHome_SkipsEmptyModalities(t *testing.T) {
	h, _ := testHome(t)
	if got := h.menu.Items[h.menu.Selected].Label; got != "MULTIPLE CHOICE" {
		t.Errorf("selected = %q, want MULTIPLE CHOICE", got)
	}
	for _, item := range h.menu.Items {
		if item.Label == "PAST RESULTS" && !item.Disabled {
			t.Error("past results should be disabled without a repo")
		}
	}
}

func TestHome_OpenModality(t *testing.T) {
	h, s := testHome(t)
	cmd := enter(h)
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*sessionscreen.SessionScreen); !ok {
		t.Errorf("pushed %T, want *SessionScreen", msg.Screen)
	}
	if s.Modality() != bank.ModalityChoice {
		t.Errorf("Modality() = %q, want %q", s.Modality(), bank.ModalityChoice)
	}
}

func TestHome_CompletedShowsReport(t *testing.T) {
	h, s := testHome(t)
	if err := s.Start(bank.ModalityChoice); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, err := s.Advance(sess.Finish); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}

	msg, ok := enter(h)().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("pushed %T, want *SummaryScreen", msg.Screen)
	}
	if !strings.Contains(h.View(100, 40), "Session complete") {
		t.Error("status should mention completion")
	}
}

func TestHome_Restart(t *testing.T) {
	h, s := testHome(t)
	_ = s.Start(bank.ModalityChoice)
	_, _ = s.SubmitChoice("200 ms")
	oldID := s.ID()

	// Items: three modalities, past results (disabled), restart, exit.
	h.menu.Selected = len(h.menu.Items) - 2
	enter(h)

	if s.Ledger().Len() != 0 || s.ID() == oldID {
		t.Error("restart should clear progress and start a new session")
	}
	if h.notice == "" {
		t.Error("expected a notice after restart")
	}
}
