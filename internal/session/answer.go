package session

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/exercise"
	"github.com/aureus/cardiosim/internal/feedback"
	"github.com/aureus/cardiosim/internal/progress"
)

// CurrentChoice returns the multiple-choice question under the cursor.
// ok is false unless multiple choice is the active modality.
func (s *Session) CurrentChoice() (*exercise.Choice, bool) {
	if s.active != bank.ModalityChoice {
		return nil, false
	}
	_, st, ok := s.choice.Current()
	return st, ok
}

// CurrentMeasurement returns the measurement question under the cursor.
func (s *Session) CurrentMeasurement() (*exercise.Measurement, bool) {
	if s.active != bank.ModalityVisual {
		return nil, false
	}
	_, st, ok := s.visual.Current()
	return st, ok
}

// CurrentDiagnosis returns the open-diagnosis case under the cursor.
func (s *Session) CurrentDiagnosis() (*exercise.Diagnosis, bool) {
	if s.active != bank.ModalityOpen {
		return nil, false
	}
	_, st, ok := s.open.Current()
	return st, ok
}

func (s *Session) record(q *bank.Question, o progress.Outcome) {
	if !s.ledger.Record(q.ID, q.Topic, q.Modality, o) {
		s.logger.Warn("duplicate outcome ignored", zap.String("question", q.ID))
		return
	}
	s.logger.Info("question graded",
		zap.String("session", s.id),
		zap.String("question", q.ID),
		zap.String("topic", q.Topic),
		zap.String("outcome", o.Tag()),
	)
}

// SubmitChoice grades the selected option of the current question.
func (s *Session) SubmitChoice(label string) (progress.Outcome, error) {
	c, ok := s.CurrentChoice()
	if !ok {
		return progress.Outcome{}, ErrNoQuestion
	}
	o, err := c.Submit(label)
	if err != nil {
		return o, err
	}
	s.record(c.Question, o)
	return o, nil
}

// SubmitMeasurement grades a measured value and the learner's two marks.
// A missed first attempt is not recorded; the learner must explain it.
func (s *Session) SubmitMeasurement(value int, marks []float64) (exercise.Grade, error) {
	m, ok := s.CurrentMeasurement()
	if !ok {
		return exercise.Grade{}, ErrNoQuestion
	}
	g, err := m.Submit(value, marks)
	if err != nil {
		return g, err
	}
	if g.Terminal {
		s.record(m.Question, g.Outcome)
	}
	return g, nil
}

// SubmitRationale stores the explanation of a missed first attempt and
// returns the hint request to run with FetchHint.
func (s *Session) SubmitRationale(text string, marks []float64) (feedback.HintRequest, error) {
	m, ok := s.CurrentMeasurement()
	if !ok {
		return feedback.HintRequest{}, ErrNoQuestion
	}
	if err := m.SubmitRationale(text, marks); err != nil {
		return feedback.HintRequest{}, err
	}

	return s.hintRequest(m), nil
}

func (s *Session) hintRequest(m *exercise.Measurement) feedback.HintRequest {
	req := feedback.HintRequest{
		Question:  m.Question,
		Measured:  m.FirstValue(),
		Rationale: m.Rationale(),
		Marks:     m.Marks(),
	}
	img, mime, err := s.bank.ReadImage(m.Question.Image)
	switch {
	case err == nil:
		req.Image, req.ImageMIME = img, mime
	case !errors.Is(err, bank.ErrNoImage):
		s.logger.Warn("tracing unavailable for hint", zap.String("question", m.Question.ID), zap.Error(err))
	}
	return req
}

// PendingHint returns the hint request of a current measurement whose
// reply was never received, e.g. after the learner left the screen.
func (s *Session) PendingHint() (feedback.HintRequest, bool) {
	m, ok := s.CurrentMeasurement()
	if !ok || m.Phase() != exercise.PhaseAwaitingFeedback {
		return feedback.HintRequest{}, false
	}
	return s.hintRequest(m), true
}

// FetchHint runs the hint request. It only reads from the session and is
// safe to call off the update loop.
func (s *Session) FetchHint(ctx context.Context, req feedback.HintRequest) (string, error) {
	return s.advisor.MeasurementHint(ctx, req)
}

// ReceiveHint unlocks the second attempt of questionID. A failed hint
// request still unlocks it, with the error shown as the feedback.
func (s *Session) ReceiveHint(questionID, text string, err error) error {
	m, ok := s.CurrentMeasurement()
	if !ok || m.Question.ID != questionID {
		return ErrStale
	}
	if err != nil {
		s.logger.Warn("hint request failed", zap.String("question", questionID), zap.Error(err))
		text = feedback.Describe(err)
	}
	return m.ReceiveFeedback(text)
}

// DiagnosisJob is a submitted diagnosis awaiting evaluation.
type DiagnosisJob struct {
	Question *bank.Question
	Findings exercise.Findings
}

// SubmitDiagnosis validates the form of the current case and starts grading.
// A case that already has a recorded outcome is locked.
func (s *Session) SubmitDiagnosis(f exercise.Findings) (DiagnosisJob, error) {
	d, ok := s.CurrentDiagnosis()
	if !ok {
		return DiagnosisJob{}, ErrNoQuestion
	}
	if s.ledger.Has(d.Question.ID) {
		return DiagnosisJob{}, exercise.ErrLocked
	}
	if err := d.Submit(f); err != nil {
		return DiagnosisJob{}, err
	}
	return DiagnosisJob{Question: d.Question, Findings: d.Findings()}, nil
}

// Evaluate grades a job. It only reads from the session and is safe to
// call off the update loop.
func (s *Session) Evaluate(ctx context.Context, job DiagnosisJob) (feedback.Verdict, error) {
	return s.advisor.EvaluateDiagnosis(ctx, job.Question, job.Findings)
}

// PendingDiagnosis returns the job of a current case still in grading.
func (s *Session) PendingDiagnosis() (DiagnosisJob, bool) {
	d, ok := s.CurrentDiagnosis()
	if !ok || d.Phase() != exercise.DiagnosisGrading {
		return DiagnosisJob{}, false
	}
	return DiagnosisJob{Question: d.Question, Findings: d.Findings()}, true
}

// ReceiveVerdict records the evaluation of questionID. On an evaluation
// error the case returns to input and the error is handed back for display.
func (s *Session) ReceiveVerdict(questionID string, v feedback.Verdict, err error) (progress.Outcome, error) {
	d, ok := s.CurrentDiagnosis()
	if !ok || d.Question.ID != questionID {
		return progress.Outcome{}, ErrStale
	}
	if err != nil {
		d.Abort()
		s.logger.Warn("diagnosis evaluation failed", zap.String("question", questionID), zap.Error(err))
		return progress.Outcome{}, err
	}
	o, gerr := d.Grade(v.Text, v.Correct)
	if gerr != nil {
		return o, gerr
	}
	s.record(d.Question, o)
	return o, nil
}
