package exercise

import (
	"errors"
	"testing"

	"github.com/aureus/cardiosim/internal/bank"
)

func topicList(topics ...string) []bank.Question {
	out := make([]bank.Question, len(topics))
	for i, tp := range topics {
		out[i] = bank.Question{ID: string(rune('1' + i)), Topic: tp}
	}
	return out
}

func TestNavigation(t *testing.T) {
	list := topicList("A", "A", "B")

	if j, ok := SameTopic(list, 0); !ok || j != 1 {
		t.Errorf("SameTopic(0) = %d, %v; want 1, true", j, ok)
	}
	if j, ok := DifferentTopic(list, 0); !ok || j != 2 {
		t.Errorf("DifferentTopic(0) = %d, %v; want 2, true", j, ok)
	}
	if _, ok := SameTopic(list, 2); ok {
		t.Error("SameTopic(2) should find nothing")
	}
	if _, ok := DifferentTopic(list, 2); ok {
		t.Error("DifferentTopic(2) should find nothing")
	}
	if _, ok := SameTopic(list, 5); ok {
		t.Error("SameTopic out of range should find nothing")
	}
}

func TestContinue_PrefersSameTopic(t *testing.T) {
	list := topicList("A", "B", "A")
	if j, ok := Continue(list, 0); !ok || j != 2 {
		t.Errorf("Continue(0) = %d, %v; want 2, true", j, ok)
	}
	if j, ok := Continue(list, 1); !ok || j != 2 {
		t.Errorf("Continue(1) = %d, %v; want 2, true", j, ok)
	}
}

func TestTrack_StateLifecycle(t *testing.T) {
	list := topicList("A", "A", "B")
	tr := NewTrack(list, NewChoice)

	q, st, ok := tr.Current()
	if !ok || q.ID != "1" {
		t.Fatalf("Current() = %v, %v", q, ok)
	}
	_, again, _ := tr.Current()
	if st != again {
		t.Error("Current should return the same state until the cursor moves")
	}
	if !tr.HasState("1") {
		t.Error("expected state for question 1")
	}

	if !tr.DifferentTopic() {
		t.Fatal("DifferentTopic should move to B")
	}
	if tr.Index() != 2 {
		t.Errorf("Index = %d, want 2", tr.Index())
	}
	if tr.HasState("1") {
		t.Error("state for question 1 should be dropped after advancing")
	}

	if tr.SameTopic() || tr.DifferentTopic() {
		t.Error("no further question should resolve from the last one")
	}
	tr.Finish()
	if !tr.Done() || tr.Index() != tr.Len() {
		t.Errorf("after Finish: Done=%v Index=%d Len=%d", tr.Done(), tr.Index(), tr.Len())
	}
	if _, _, ok := tr.Current(); ok {
		t.Error("Current should report false after Finish")
	}
}

func TestTrack_NextRunsOffTheEnd(t *testing.T) {
	tr := NewTrack(topicList("A", "B"), NewChoice)
	tr.Next()
	tr.Next()
	if !tr.Done() {
		t.Error("expected track done after two Next calls")
	}
	tr.Next()
	if tr.Index() != 2 {
		t.Errorf("Index = %d, want 2", tr.Index())
	}
	tr.Reset()
	if tr.Done() || tr.Index() != 0 {
		t.Error("Reset should rewind")
	}
}

func measureQuestion() *bank.Question {
	return &bank.Question{ID: "v1", Topic: "PR", CorrectMs: 160, ToleranceMs: 20}
}

func TestMeasurement_ToleranceBoundary(t *testing.T) {
	tests := []struct {
		value int
		want  bool
	}{
		{160, true},
		{180, true},
		{140, true},
		{181, false},
		{139, false},
	}
	for _, tt := range tests {
		m := NewMeasurement(measureQuestion())
		g, err := m.Submit(tt.value, nil)
		if err != nil {
			t.Fatalf("Submit(%d): %v", tt.value, err)
		}
		if g.Outcome.Correct != tt.want {
			t.Errorf("Submit(%d) correct = %v, want %v", tt.value, g.Outcome.Correct, tt.want)
		}
	}
}

func TestMeasurement_FirstTryLocks(t *testing.T) {
	m := NewMeasurement(measureQuestion())
	g, err := m.Submit(165, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Terminal || g.Outcome.Tag() != "correct-first-try" {
		t.Errorf("grade = %+v", g)
	}
	if !m.Locked() {
		t.Fatal("expected locked after correct first try")
	}

	for _, v := range []int{160, 999} {
		if _, err := m.Submit(v, nil); !errors.Is(err, ErrLocked) {
			t.Errorf("Submit(%d) on locked = %v, want ErrLocked", v, err)
		}
	}
	if m.Phase() != PhaseSolved || m.FirstValue() != 165 {
		t.Errorf("state changed after locked submit: phase=%v first=%d", m.Phase(), m.FirstValue())
	}
}

func TestMeasurement_RationaleGate(t *testing.T) {
	m := NewMeasurement(measureQuestion())
	g, err := m.Submit(250, nil)
	if err != nil {
		t.Fatal(err)
	}
	if g.Terminal || g.Outcome.Tag() != "failed-first-try" {
		t.Errorf("grade = %+v, want non-terminal failed-first-try", g)
	}

	if _, err := m.Submit(160, nil); !errors.Is(err, ErrRationaleRequired) {
		t.Errorf("second submit before rationale = %v, want ErrRationaleRequired", err)
	}
	if err := m.SubmitRationale("   ", nil); !IsValidation(err) {
		t.Errorf("blank rationale = %v, want validation error", err)
	}
	if m.Phase() != PhaseNeedsRationale {
		t.Fatalf("phase = %v, want needs-rationale", m.Phase())
	}

	if err := m.SubmitRationale("I measured to the peak of R", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Submit(160, nil); !errors.Is(err, ErrRationaleRequired) {
		t.Errorf("submit while awaiting feedback = %v, want ErrRationaleRequired", err)
	}

	if err := m.ReceiveFeedback("Check where the QRS starts."); err != nil {
		t.Fatal(err)
	}
	if err := m.ReceiveFeedback("again"); !errors.Is(err, ErrNotAwaitingFeedback) {
		t.Errorf("duplicate feedback = %v, want ErrNotAwaitingFeedback", err)
	}

	text, ok := m.TakeFeedback()
	if !ok || text != "Check where the QRS starts." {
		t.Errorf("TakeFeedback = %q, %v", text, ok)
	}
	if _, ok := m.TakeFeedback(); ok {
		t.Error("feedback should be shown only once")
	}

	g, err = m.Submit(175, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !g.Terminal || g.Outcome.Tag() != "correct-second-try" {
		t.Errorf("grade = %+v, want correct-second-try", g)
	}
	if _, err := m.Submit(175, nil); !errors.Is(err, ErrLocked) {
		t.Errorf("submit after solve = %v, want ErrLocked", err)
	}
}

func TestMeasurement_SecondMissReveals(t *testing.T) {
	q := measureQuestion()
	q.CorrectedImage = "marked.png"
	m := NewMeasurement(q)

	if _, _, ok := m.Reveal(); ok {
		t.Error("nothing should be revealed before failing")
	}
	m.Submit(300, nil)
	m.SubmitRationale("guess", nil)
	m.ReceiveFeedback("hint")
	g, err := m.Submit(300, nil)
	if err != nil {
		t.Fatal(err)
	}
	if g.Outcome.Tag() != "failed-second-try" || !m.Locked() {
		t.Errorf("grade = %+v locked=%v", g, m.Locked())
	}
	ms, img, ok := m.Reveal()
	if !ok || ms != 160 || img != "marked.png" {
		t.Errorf("Reveal = %d, %q, %v", ms, img, ok)
	}
}

func TestMeasurement_RationaleOutsideRetry(t *testing.T) {
	m := NewMeasurement(measureQuestion())
	if err := m.SubmitRationale("why", nil); !errors.Is(err, ErrNoRationaleNeeded) {
		t.Errorf("rationale on first attempt = %v, want ErrNoRationaleNeeded", err)
	}
}

func TestMeasurement_Zones(t *testing.T) {
	q := measureQuestion()
	q.ZonePairs = []bank.ZonePair{{XMin: 40, XMax: 210}, {XMin: 330, XMax: 500}}

	tests := []struct {
		name  string
		marks []float64
		valid bool
	}{
		{"same zone", []float64{50, 200}, true},
		{"bounds inclusive", []float64{330, 500}, true},
		{"split across zones", []float64{100, 400}, false},
		{"outside", []float64{10, 20}, false},
		{"one mark", []float64{50}, false},
		{"no marks", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMeasurement(q)
			_, err := m.Submit(160, tt.marks)
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid {
				if !IsValidation(err) {
					t.Errorf("err = %v, want validation error", err)
				}
				if m.Phase() != PhaseFirstAttempt {
					t.Errorf("phase = %v, rejected marks must not change state", m.Phase())
				}
			}
		})
	}
}

func choiceQuestion() *bank.Question {
	return &bank.Question{
		ID:    "mc1",
		Topic: "Conduction",
		Options: bank.Options{
			{Label: "a", Explanation: "wrong because"},
			{Label: "b", Explanation: "right because"},
		},
		CorrectOption: "b",
	}
}

func TestChoice(t *testing.T) {
	c := NewChoice(choiceQuestion())
	if _, err := c.Submit(""); !IsValidation(err) {
		t.Errorf("empty selection = %v, want validation error", err)
	}
	if _, err := c.Submit("z"); !IsValidation(err) {
		t.Errorf("unknown option = %v, want validation error", err)
	}
	if c.Answered() {
		t.Fatal("invalid submissions must not answer the question")
	}

	o, err := c.Submit("a")
	if err != nil {
		t.Fatal(err)
	}
	if o.Correct || o.Tag() != "fail" {
		t.Errorf("outcome = %+v, want fail", o)
	}
	if c.Explanation() != "wrong because" {
		t.Errorf("Explanation = %q", c.Explanation())
	}
	if _, err := c.Submit("b"); !errors.Is(err, ErrLocked) {
		t.Errorf("resubmit = %v, want ErrLocked", err)
	}
	if c.Selected() != "a" {
		t.Errorf("Selected = %q, want a", c.Selected())
	}
}

func completeFindings() Findings {
	f := Findings{}
	for _, field := range FormFields {
		if field.FreeText() {
			f[field.Key] = "some text"
		} else {
			f[field.Key] = field.Options[0]
		}
	}
	return f
}

func TestFindings_Validate(t *testing.T) {
	if err := completeFindings().Validate(); err != nil {
		t.Fatalf("complete form rejected: %v", err)
	}

	f := completeFindings()
	delete(f, FieldST)
	f[FieldJustification] = "  "
	f[FieldAxis] = "Select..."
	err := f.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if len(ve.Fields) != 3 {
		t.Errorf("Fields = %v, want 3 entries", ve.Fields)
	}
}

func TestDiagnosis_Flow(t *testing.T) {
	d := NewDiagnosis(&bank.Question{ID: "o1", Topic: "ECG diagnosis", Diagnosis: "AF"})

	if err := d.Submit(Findings{}); !IsValidation(err) {
		t.Fatalf("empty form = %v, want validation error", err)
	}
	if d.Phase() != DiagnosisInput {
		t.Fatal("invalid form must not start grading")
	}

	if err := d.Submit(completeFindings()); err != nil {
		t.Fatal(err)
	}
	if err := d.Submit(completeFindings()); !errors.Is(err, ErrGrading) {
		t.Errorf("submit while grading = %v, want ErrGrading", err)
	}

	d.Abort()
	if d.Phase() != DiagnosisInput {
		t.Fatal("Abort should return to input")
	}
	if _, err := d.Grade("x", true); !errors.Is(err, ErrNotGrading) {
		t.Errorf("Grade without submit = %v, want ErrNotGrading", err)
	}

	if err := d.Submit(completeFindings()); err != nil {
		t.Fatal(err)
	}
	o, err := d.Grade("Diagnosis correct. Well argued.", true)
	if err != nil {
		t.Fatal(err)
	}
	if !o.Correct || o.Tag() != "correct" {
		t.Errorf("outcome = %+v", o)
	}
	if err := d.Submit(completeFindings()); !errors.Is(err, ErrLocked) {
		t.Errorf("resubmit after grading = %v, want ErrLocked", err)
	}
}
