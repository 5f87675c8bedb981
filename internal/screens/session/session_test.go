package session

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/exercise"
	"github.com/aureus/cardiosim/internal/feedback"
	"github.com/aureus/cardiosim/internal/router"
	"github.com/aureus/cardiosim/internal/screen"
	sess "github.com/aureus/cardiosim/internal/session"
	"github.com/aureus/cardiosim/internal/ui/components"
)

const testBank = `{
  "visual": [
    {"id": "v1", "topic": "PR interval", "correct_ms": 160, "tolerance_ms": 20, "instruction": "Measure the PR interval"}
  ],
  "multiple_choice": [
    {"id": "mc1", "topic": "Conduction", "question": "Upper PR limit?",
     "options": {"120 ms": "Lower limit.", "200 ms": "Right."}, "correct_answer": "200 ms"},
    {"id": "mc2", "topic": "Rate", "question": "Three large squares?",
     "options": {"100 bpm": "Right.", "150 bpm": "Two squares."}, "correct_answer": "100 bpm"}
  ],
  "open": [
    {"id": "o1", "question": "Interpret.", "correct_diagnosis": "Atrial fibrillation", "key_features": ["irregular rhythm"]}
  ]
}`

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(keyPress(r))
	}
	return s
}

func testScreen(t *testing.T, m bank.Modality) (*SessionScreen, *sess.Session) {
	t.Helper()
	b, err := bank.Parse([]byte(testBank), "test", "")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	se := sess.New(sess.Options{Bank: b})
	if err := se.Start(m); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	sc := New(se)
	sc.Init()
	return sc, se
}

func TestChoice_AnswerThenNavigateToSummary(t *testing.T) {
	sc, se := testScreen(t, bank.ModalityChoice)

	sc.Update(keyPress('b'))
	if !sc.locked() {
		t.Fatal("question should be locked after answering")
	}
	if !strings.Contains(sc.View(100, 30), "Correct!") {
		t.Error("view should show the verdict")
	}

	sc.Update(keyPress('n'))
	if i, _ := se.Position(); i != 1 {
		t.Fatalf("Position() = %d, want 1", i)
	}
	if sc.locked() {
		t.Fatal("new question should not be locked")
	}

	sc.Update(keyPress('b'))
	_, cmd := sc.Update(keyPress('n'))
	if cmd == nil {
		t.Fatal("finishing the module should navigate")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the summary")
	}
	if score := se.Ledger().Score(); score.Correct != 1 || score.Total != 2 {
		t.Errorf("score = %+v, want 1/2", score)
	}
}

func TestChoice_SameTopicNotice(t *testing.T) {
	sc, _ := testScreen(t, bank.ModalityChoice)
	sc.Update(keyPress('a'))
	sc.Update(keyPress('s'))
	if sc.notice == "" {
		t.Error("expected a notice when no same-topic question remains")
	}
}

func TestMeasurement_RetryWithHint(t *testing.T) {
	sc, se := testScreen(t, bank.ModalityVisual)

	typeText(sc, "100")
	sc.Update(specialKey(tea.KeyEnter))
	m, _ := se.CurrentMeasurement()
	if m.Phase() != exercise.PhaseNeedsRationale {
		t.Fatalf("Phase() = %v, want needs-rationale", m.Phase())
	}

	typeText(sc, "from P peak")
	_, cmd := sc.Update(specialKey(tea.KeyEnter))
	if cmd == nil || !sc.waiting {
		t.Fatal("rationale should start the hint request")
	}

	sc.Update(hintReadyMsg{QuestionID: "v1", Text: "Start at the P onset."})
	if sc.waiting {
		t.Error("waiting should stop when the hint arrives")
	}
	if sc.hint != "Start at the P onset." {
		t.Errorf("hint = %q", sc.hint)
	}

	typeText(sc, "165")
	sc.Update(specialKey(tea.KeyEnter))
	if m.Phase() != exercise.PhaseSolved {
		t.Errorf("Phase() = %v, want solved", m.Phase())
	}
	if !strings.Contains(sc.View(100, 30), "Correct!") {
		t.Error("view should show success")
	}
}

func TestMeasurement_NonNumericValue(t *testing.T) {
	sc, se := testScreen(t, bank.ModalityVisual)
	sc.Update(specialKey(tea.KeyEnter))
	if sc.notice == "" {
		t.Error("empty value should show a notice")
	}
	if se.Ledger().Len() != 0 {
		t.Error("nothing should be recorded")
	}
}

func TestMeasurement_StaleHintIgnored(t *testing.T) {
	sc, _ := testScreen(t, bank.ModalityVisual)
	sc.Update(hintReadyMsg{QuestionID: "v1", Text: "late"})
	if sc.hint != "" {
		t.Error("hint without a pending request should be ignored")
	}
}

func fillForm(f *components.Form) {
	for i := range f.Fields {
		field := &f.Fields[i]
		switch field.Kind {
		case components.FieldSelect:
			field.Selector.Index = 0
		case components.FieldText:
			field.Input.Model.SetValue("irregularly irregular")
		}
	}
}

func TestDiagnosis_IncompleteForm(t *testing.T) {
	sc, _ := testScreen(t, bank.ModalityOpen)
	_, cmd := sc.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("incomplete form should not start an evaluation")
	}
	if len(sc.invalid) == 0 {
		t.Error("expected invalid fields")
	}
}

func TestDiagnosis_OfflineThenSkip(t *testing.T) {
	sc, se := testScreen(t, bank.ModalityOpen)
	fillForm(&sc.form)

	_, cmd := sc.Update(specialKey(tea.KeyEnter))
	if cmd == nil || !sc.waiting {
		t.Fatal("complete form should start an evaluation")
	}
	sc.Update(verdictReadyMsg{QuestionID: "o1", Err: feedback.ErrOffline})
	if sc.waiting {
		t.Error("waiting should stop after a failed evaluation")
	}
	if !strings.Contains(sc.notice, "not configured") {
		t.Errorf("notice = %q", sc.notice)
	}
	d, _ := se.CurrentDiagnosis()
	if d.Phase() != exercise.DiagnosisInput {
		t.Errorf("Phase() = %v, want input", d.Phase())
	}

	_, cmd = sc.Update(tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("skipping the last case should complete the module")
	}
	if !se.Completed() {
		t.Error("session should be completed")
	}
}

func TestDiagnosis_Graded(t *testing.T) {
	sc, se := testScreen(t, bank.ModalityOpen)
	fillForm(&sc.form)
	sc.Update(specialKey(tea.KeyEnter))
	sc.Update(verdictReadyMsg{QuestionID: "o1", Verdict: feedback.Verdict{Correct: true, Text: "Diagnosis correct! Well read."}})

	if !sc.locked() {
		t.Fatal("graded case should be locked")
	}
	if se.Ledger().Len() != 1 {
		t.Errorf("ledger len = %d, want 1", se.Ledger().Len())
	}
	if !strings.Contains(sc.View(100, 40), "Atrial fibrillation") {
		t.Error("view should show the expected diagnosis")
	}
}

func TestResumePendingHint(t *testing.T) {
	sc, se := testScreen(t, bank.ModalityVisual)
	typeText(sc, "100")
	sc.Update(specialKey(tea.KeyEnter))
	typeText(sc, "guess")
	sc.Update(specialKey(tea.KeyEnter))

	// The learner leaves and comes back before the reply arrives.
	again := New(se)
	if cmd := again.Init(); cmd == nil || !again.waiting {
		t.Fatal("re-entered screen should resume the hint request")
	}
}

func TestParseMarks(t *testing.T) {
	got, err := parseMarks("120, 185")
	if err != nil || len(got) != 2 || got[0] != 120 || got[1] != 185 {
		t.Errorf("parseMarks() = %v, %v", got, err)
	}
	if got, err := parseMarks("  "); err != nil || got != nil {
		t.Errorf("parseMarks(blank) = %v, %v; want nil, nil", got, err)
	}
	if _, err := parseMarks("12 abc"); err == nil {
		t.Error("parseMarks should reject non-numbers")
	}
}
