package session

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/exercise"
	"github.com/aureus/cardiosim/internal/feedback"
	"github.com/aureus/cardiosim/internal/llm"
	"github.com/aureus/cardiosim/internal/participant"
	"github.com/aureus/cardiosim/internal/sink"
)

const testBank = `{
  "visual": [
    {"id": "v1", "topic": "PR interval", "correct_ms": 160, "tolerance_ms": 20},
    {"id": "v2", "topic": "QT interval", "correct_ms": 400, "tolerance_ms": 30}
  ],
  "multiple_choice": [
    {"id": "mc1", "topic": "Conduction", "question": "Upper PR limit?",
     "options": {"120 ms": "Lower limit.", "200 ms": "Right."}, "correct_answer": "200 ms"},
    {"id": "mc2", "topic": "Rate", "question": "Three large squares?",
     "options": {"100 bpm": "Right.", "150 bpm": "Two squares."}, "correct_answer": "100 bpm"}
  ],
  "open": [
    {"id": "o1", "topic": "ECG diagnosis", "question": "Interpret.",
     "correct_diagnosis": "Atrial fibrillation", "key_features": ["irregular rhythm"]}
  ]
}`

type countingSink struct {
	mu      sync.Mutex
	records []sink.Record
	err     error
}

func (c *countingSink) Append(_ context.Context, r sink.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, r)
	return c.err
}

func (c *countingSink) Name() string { return "counting" }

func (c *countingSink) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

func newTestSession(t *testing.T, provider llm.Provider, s sink.Sink) *Session {
	t.Helper()
	b, err := bank.Parse([]byte(testBank), "test", "")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	var advisor *feedback.Advisor
	if provider != nil {
		advisor = feedback.NewAdvisor(provider, feedback.DefaultConfig(), nil)
	}
	return New(Options{
		Bank:    b,
		Advisor: advisor,
		Sink:    s,
		Now:     func() time.Time { return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) },
	})
}

func completeFindings() exercise.Findings {
	f := exercise.Findings{}
	for _, field := range exercise.FormFields {
		if field.FreeText() {
			f[field.Key] = "irregular narrow complex tachycardia"
			continue
		}
		f[field.Key] = field.Options[0]
	}
	return f
}

func TestChoiceModule_AllCorrectSavesOnce(t *testing.T) {
	cs := &countingSink{}
	s := newTestSession(t, nil, cs)
	if err := s.SetParticipant(participant.Participant{
		Name: "Ana", DocumentID: "123", Sex: participant.SexOptions[0], Country: "Colombia",
		University: "UdeA", AcademicLevel: participant.AcademicLevels[0], Experience: participant.ExperienceLevels[0],
		FormalTraining: "Yes", ClinicalFrequency: participant.ClinicalFrequencies[0], Consent: true,
	}); err != nil {
		t.Fatalf("SetParticipant() error = %v", err)
	}
	if err := s.Start(bank.ModalityChoice); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	for _, label := range []string{"200 ms", "100 bpm"} {
		o, err := s.SubmitChoice(label)
		if err != nil {
			t.Fatalf("SubmitChoice(%q) error = %v", label, err)
		}
		if !o.Correct {
			t.Errorf("SubmitChoice(%q) correct = false, want true", label)
		}
		if _, err := s.Advance(Next); err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
	}

	if !s.Completed() {
		t.Fatal("session should be completed after the last question")
	}
	sum := s.Summary()
	if sum.Score.Percent != 100 || !sum.Passed || sum.Rating != "Excellent" {
		t.Errorf("Summary() = %+v, want 100%% passed Excellent", sum)
	}

	ctx := context.Background()
	for range 3 {
		_ = s.Summary()
		if err := s.SaveResult(ctx); err != nil {
			t.Fatalf("SaveResult() error = %v", err)
		}
	}
	if got := cs.count(); got != 1 {
		t.Fatalf("sink appends = %d, want 1", got)
	}
	r := cs.records[0]
	if r.SessionID != s.ID() || r.Modality != bank.ModalityChoice || r.Total != 2 || r.Percent != 100 {
		t.Errorf("record = %+v", r)
	}
	if r.Participant.Name != "Ana" {
		t.Errorf("record participant = %q, want Ana", r.Participant.Name)
	}
	if st := s.SaveState(); !st.Saved || st.Err != nil {
		t.Errorf("SaveState() = %+v, want saved", st)
	}
}

func TestSaveResult_FailureCanBeRetried(t *testing.T) {
	cs := &countingSink{err: errors.New("offline")}
	s := newTestSession(t, nil, cs)
	_ = s.Start(bank.ModalityChoice)
	_, _ = s.Advance(Finish)

	if !s.NeedsSave() {
		t.Fatal("NeedsSave() = false after completion")
	}
	if err := s.SaveResult(context.Background()); err == nil {
		t.Fatal("SaveResult() error = nil, want sink error")
	}
	if s.NeedsSave() {
		t.Error("NeedsSave() should be false once attempted")
	}
	st := s.SaveState()
	if !st.Attempted || st.Saved || st.Err == nil {
		t.Errorf("SaveState() = %+v", st)
	}

	cs.err = nil
	if err := s.SaveResult(context.Background()); err != nil {
		t.Fatalf("retry error = %v", err)
	}
	if got := cs.count(); got != 2 {
		t.Errorf("sink appends = %d, want 2", got)
	}
	if err := s.SaveResult(context.Background()); err != nil || cs.count() != 2 {
		t.Errorf("save after success appended again")
	}
}

func TestSaveResult_NotCompleted(t *testing.T) {
	cs := &countingSink{}
	s := newTestSession(t, nil, cs)
	if err := s.SaveResult(context.Background()); err != nil {
		t.Fatalf("SaveResult() error = %v", err)
	}
	if cs.count() != 0 {
		t.Error("incomplete session should not be saved")
	}
}

func TestMeasurement_HintFlow(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Check the P wave onset.")})
	s := newTestSession(t, mock, nil)
	_ = s.Start(bank.ModalityVisual)

	g, err := s.SubmitMeasurement(100, nil)
	if err != nil {
		t.Fatalf("SubmitMeasurement() error = %v", err)
	}
	if g.Terminal {
		t.Fatal("missed first attempt should not be terminal")
	}
	if s.Ledger().Len() != 0 {
		t.Error("missed first attempt should not be recorded")
	}

	req, err := s.SubmitRationale("I measured from the peak of P", nil)
	if err != nil {
		t.Fatalf("SubmitRationale() error = %v", err)
	}
	if req.Measured != 100 || req.Question.ID != "v1" {
		t.Errorf("hint request = %+v", req)
	}
	text, err := s.FetchHint(context.Background(), req)
	if err := s.ReceiveHint("v1", text, err); err != nil {
		t.Fatalf("ReceiveHint() error = %v", err)
	}
	m, _ := s.CurrentMeasurement()
	if got, ok := m.TakeFeedback(); !ok || got != "Check the P wave onset." {
		t.Errorf("TakeFeedback() = %q, %v", got, ok)
	}

	g, err = s.SubmitMeasurement(170, nil)
	if err != nil {
		t.Fatalf("second SubmitMeasurement() error = %v", err)
	}
	if !g.Terminal || !g.Outcome.Correct || g.Outcome.Attempt != 2 {
		t.Errorf("second grade = %+v", g)
	}
	if got := s.Ledger().Records()[0].Outcome.Tag(); got != "correct-second-try" {
		t.Errorf("recorded tag = %q, want correct-second-try", got)
	}
}

func TestMeasurement_OfflineHint(t *testing.T) {
	s := newTestSession(t, nil, nil)
	_ = s.Start(bank.ModalityVisual)
	_, _ = s.SubmitMeasurement(0, nil)
	req, err := s.SubmitRationale("guess", nil)
	if err != nil {
		t.Fatalf("SubmitRationale() error = %v", err)
	}
	text, err := s.FetchHint(context.Background(), req)
	if err != nil || text != feedback.OfflineHint {
		t.Errorf("FetchHint() = %q, %v; want offline hint", text, err)
	}
}

func TestMeasurement_HintErrorStillUnlocks(t *testing.T) {
	s := newTestSession(t, nil, nil)
	_ = s.Start(bank.ModalityVisual)
	_, _ = s.SubmitMeasurement(0, nil)
	_, _ = s.SubmitRationale("guess", nil)

	if err := s.ReceiveHint("v1", "", context.DeadlineExceeded); err != nil {
		t.Fatalf("ReceiveHint() error = %v", err)
	}
	m, _ := s.CurrentMeasurement()
	if m.Phase() != exercise.PhaseSecondAttempt {
		t.Errorf("Phase() = %v, want second-attempt", m.Phase())
	}
	if got, _ := m.TakeFeedback(); got != feedback.Describe(context.DeadlineExceeded) {
		t.Errorf("feedback = %q", got)
	}
}

func TestReceiveHint_Stale(t *testing.T) {
	s := newTestSession(t, nil, nil)
	_ = s.Start(bank.ModalityVisual)
	_, _ = s.SubmitMeasurement(0, nil)
	_, _ = s.SubmitRationale("guess", nil)
	_, _ = s.Advance(Next)

	if err := s.ReceiveHint("v1", "late", nil); !errors.Is(err, ErrStale) {
		t.Errorf("ReceiveHint() error = %v, want ErrStale", err)
	}
}

func TestDiagnosis_GradeAndLock(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Diagnosis correct! Good reading.")})
	s := newTestSession(t, mock, nil)
	_ = s.Start(bank.ModalityOpen)

	job, err := s.SubmitDiagnosis(completeFindings())
	if err != nil {
		t.Fatalf("SubmitDiagnosis() error = %v", err)
	}
	v, err := s.Evaluate(context.Background(), job)
	o, err := s.ReceiveVerdict(job.Question.ID, v, err)
	if err != nil {
		t.Fatalf("ReceiveVerdict() error = %v", err)
	}
	if !o.Correct {
		t.Error("verdict should be correct")
	}
	if _, err := s.SubmitDiagnosis(completeFindings()); !errors.Is(err, exercise.ErrLocked) {
		t.Errorf("resubmit error = %v, want ErrLocked", err)
	}
	if s.Ledger().Len() != 1 {
		t.Errorf("ledger len = %d, want 1", s.Ledger().Len())
	}
}

func TestDiagnosis_OfflineAbortsToInput(t *testing.T) {
	s := newTestSession(t, nil, nil)
	_ = s.Start(bank.ModalityOpen)

	job, err := s.SubmitDiagnosis(completeFindings())
	if err != nil {
		t.Fatalf("SubmitDiagnosis() error = %v", err)
	}
	v, err := s.Evaluate(context.Background(), job)
	if _, err := s.ReceiveVerdict(job.Question.ID, v, err); !errors.Is(err, feedback.ErrOffline) {
		t.Fatalf("ReceiveVerdict() error = %v, want ErrOffline", err)
	}
	d, _ := s.CurrentDiagnosis()
	if d.Phase() != exercise.DiagnosisInput {
		t.Errorf("Phase() = %v, want input", d.Phase())
	}
	if s.Ledger().Len() != 0 {
		t.Error("aborted evaluation should not be recorded")
	}
}

func TestDiagnosis_IncompleteForm(t *testing.T) {
	s := newTestSession(t, nil, nil)
	_ = s.Start(bank.ModalityOpen)
	f := completeFindings()
	delete(f, exercise.FieldAxis)

	_, err := s.SubmitDiagnosis(f)
	var verr *exercise.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("SubmitDiagnosis() error = %v, want ValidationError", err)
	}
}

func TestStartAndNavigation(t *testing.T) {
	s := newTestSession(t, nil, nil)
	if _, err := s.SubmitChoice("200 ms"); !errors.Is(err, ErrNoQuestion) {
		t.Errorf("SubmitChoice before Start error = %v, want ErrNoQuestion", err)
	}
	if _, err := s.Advance(Next); !errors.Is(err, ErrNoModality) {
		t.Errorf("Advance before Start error = %v, want ErrNoModality", err)
	}
	if err := s.Start("audio"); err == nil {
		t.Error("Start(unknown) should fail")
	}

	_ = s.Start(bank.ModalityVisual)
	if moved, _ := s.Advance(SameTopic); moved {
		t.Error("SameTopic should find no other PR interval question")
	}
	if moved, _ := s.Advance(DifferentTopic); !moved {
		t.Error("DifferentTopic should move to the QT question")
	}
	if i, n := s.Position(); i != 1 || n != 2 {
		t.Errorf("Position() = %d/%d, want 1/2", i, n)
	}
	if s.Topic() != "QT interval" {
		t.Errorf("Topic() = %q", s.Topic())
	}

	_ = s.Start(bank.ModalityChoice)
	_, _ = s.SubmitChoice("120 ms")
	_ = s.Start(bank.ModalityVisual)
	if i, _ := s.Position(); i != 1 {
		t.Errorf("visual cursor = %d after switching back, want 1", i)
	}
	if s.Ledger().Len() != 1 {
		t.Errorf("ledger len = %d, want 1", s.Ledger().Len())
	}
}

func TestCompletedThenRestart(t *testing.T) {
	s := newTestSession(t, nil, nil)
	s.participant = participant.Participant{Name: "Ana"}
	_ = s.Start(bank.ModalityChoice)
	_, _ = s.SubmitChoice("120 ms")
	_, _ = s.Advance(Finish)

	if err := s.Start(bank.ModalityVisual); !errors.Is(err, ErrCompleted) {
		t.Errorf("Start after completion error = %v, want ErrCompleted", err)
	}
	if s.Summary().Passed {
		t.Error("0% should not pass")
	}

	id := s.ID()
	s.Restart()
	if s.ID() == id {
		t.Error("Restart should assign a new session id")
	}
	if s.Completed() || s.Ledger().Len() != 0 || s.Modality() != "" {
		t.Error("Restart should clear progress")
	}
	if s.Participant().Name != "Ana" {
		t.Error("Restart should keep the participant")
	}
	if err := s.Start(bank.ModalityVisual); err != nil {
		t.Errorf("Start after Restart error = %v", err)
	}
}

func TestPendingHint_KeepsMarks(t *testing.T) {
	s := newTestSession(t, nil, nil)
	_ = s.Start(bank.ModalityVisual)
	_, _ = s.SubmitMeasurement(0, nil)

	marks := []float64{0.21, 0.37}
	first, err := s.SubmitRationale("from P onset to R peak", marks)
	if err != nil {
		t.Fatalf("SubmitRationale() error = %v", err)
	}
	marks[0] = 0.9

	again, ok := s.PendingHint()
	if !ok {
		t.Fatal("PendingHint() ok = false")
	}
	want := []float64{0.21, 0.37}
	if !slices.Equal(first.Marks, want) || !slices.Equal(again.Marks, want) {
		t.Errorf("marks = %v then %v, want %v both times", first.Marks, again.Marks, want)
	}
}

func TestPendingRequests(t *testing.T) {
	s := newTestSession(t, nil, nil)
	_ = s.Start(bank.ModalityVisual)
	if _, ok := s.PendingHint(); ok {
		t.Error("PendingHint() before a miss should be false")
	}
	_, _ = s.SubmitMeasurement(0, nil)
	_, _ = s.SubmitRationale("guess", nil)
	req, ok := s.PendingHint()
	if !ok || req.Rationale != "guess" {
		t.Errorf("PendingHint() = %+v, %v", req, ok)
	}

	_ = s.Start(bank.ModalityOpen)
	if _, ok := s.PendingDiagnosis(); ok {
		t.Error("PendingDiagnosis() before submit should be false")
	}
	_, _ = s.SubmitDiagnosis(completeFindings())
	job, ok := s.PendingDiagnosis()
	if !ok || job.Question.ID != "o1" {
		t.Errorf("PendingDiagnosis() = %+v, %v", job, ok)
	}
}

func TestSaveResult_PendingBlocksSecondDelivery(t *testing.T) {
	cs := &countingSink{}
	s := newTestSession(t, nil, cs)
	_ = s.Start(bank.ModalityChoice)
	_, _ = s.Advance(Finish)

	r, ok := s.BeginSave()
	if !ok {
		t.Fatal("BeginSave() ok = false")
	}
	if !s.SaveState().Pending {
		t.Error("SaveState().Pending = false while delivering")
	}
	if _, again := s.BeginSave(); again {
		t.Error("BeginSave() must refuse while a delivery is in flight")
	}

	s.FinishSave("other-session", nil)
	if !s.SaveState().Pending {
		t.Error("a reply for another session must not settle this one")
	}

	s.FinishSave(r.SessionID, errors.New("offline"))
	if st := s.SaveState(); st.Pending || st.Err == nil {
		t.Errorf("SaveState() = %+v, want settled with error", st)
	}
	// A duplicate reply is ignored.
	s.FinishSave(r.SessionID, nil)
	if st := s.SaveState(); st.Saved {
		t.Errorf("duplicate reply changed state: %+v", st)
	}
}
