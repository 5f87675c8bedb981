package consent

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/participant"
	"github.com/aureus/cardiosim/internal/router"
	"github.com/aureus/cardiosim/internal/screen"
	sess "github.com/aureus/cardiosim/internal/session"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestSession(t *testing.T) *sess.Session {
	t.Helper()
	b, err := bank.Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return sess.New(sess.Options{Bank: b})
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func TestSubmitIncompleteShowsErrors(t *testing.T) {
	s := newTestSession(t)
	c := New(s, func() screen.Screen { return &stubScreen{} })

	_, cmd := c.Update(enter())
	if cmd != nil {
		t.Fatal("incomplete form should not navigate")
	}
	if c.formErr == nil || !c.formErr.Consent || len(c.formErr.Fields) == 0 {
		t.Errorf("formErr = %+v, want missing fields and consent", c.formErr)
	}
	if c.View(100, 40) == "" {
		t.Error("expected non-empty view")
	}
}

func TestSubmitValidReplacesScreen(t *testing.T) {
	s := newTestSession(t)
	_ = s.SetParticipant(participant.Participant{
		Name: "Ana", DocumentID: "1", Sex: participant.SexOptions[0], Country: "CO",
		University: "UdeA", AcademicLevel: participant.AcademicLevels[1],
		Experience: participant.ExperienceLevels[0], FormalTraining: "No",
		ClinicalFrequency: participant.ClinicalFrequencies[2], Consent: true,
	})

	calls := 0
	c := New(s, func() screen.Screen { calls++; return &stubScreen{} })
	if got := c.Participant(); got.AcademicLevel != participant.AcademicLevels[1] || !got.Consent {
		t.Fatalf("prefill = %+v", got)
	}

	_, cmd := c.Update(enter())
	if cmd == nil {
		t.Fatal("valid form should navigate")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
	if _, cmd := c.Update(enter()); cmd != nil || calls != 1 {
		t.Error("form should submit only once")
	}
}
