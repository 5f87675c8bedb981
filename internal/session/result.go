package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aureus/cardiosim/internal/progress"
	"github.com/aureus/cardiosim/internal/sink"
)

// Summary computes the report over the ledger.
func (s *Session) Summary() progress.Summary {
	return progress.Summarize(s.ledger)
}

// SaveState describes the result delivery of a completed session.
type SaveState struct {
	Attempted bool
	// Pending is set between BeginSave and FinishSave.
	Pending bool
	Saved   bool
	Err     error
}

// SaveState reports the last save outcome.
func (s *Session) SaveState() SaveState {
	return SaveState{Attempted: s.saveAttempted, Pending: s.saving, Saved: s.saved, Err: s.saveErr}
}

// NeedsSave reports whether the completed session has not yet been
// delivered or attempted. Views call SaveResult only when this is true,
// so re-rendering never appends twice.
func (s *Session) NeedsSave() bool {
	return s.completed && !s.saveAttempted
}

// ResultRecord builds the row delivered to the sink.
func (s *Session) ResultRecord() sink.Record {
	score := s.ledger.Score()
	return sink.Record{
		Timestamp:   s.now(),
		SessionID:   s.id,
		Participant: s.participant,
		Modality:    s.active,
		Correct:     score.Correct,
		Total:       score.Total,
		Percent:     score.Percent,
	}
}

// BeginSave marks the save as attempted and returns the record to
// deliver. ok is false when there is nothing to save: the session is not
// complete, it was already saved, or a delivery is still in flight.
func (s *Session) BeginSave() (sink.Record, bool) {
	if !s.completed || s.saved || s.saving {
		return sink.Record{}, false
	}
	s.saveAttempted = true
	s.saving = true
	return s.ResultRecord(), true
}

// Deliver appends the record to the sink. It only reads from the session
// and is safe to call off the update loop.
func (s *Session) Deliver(ctx context.Context, r sink.Record) error {
	if err := s.sink.Append(ctx, r); err != nil {
		return fmt.Errorf("save result to %s: %w", s.sink.Name(), err)
	}
	return nil
}

// FinishSave stores the delivery outcome of sessionID.
func (s *Session) FinishSave(sessionID string, err error) {
	if sessionID != s.id || !s.saving {
		return
	}
	s.saving = false
	s.saveErr = err
	s.saved = err == nil
	if err != nil {
		s.logger.Error("result not saved", zap.String("session", s.id), zap.Error(err))
		return
	}
	s.logger.Info("result saved", zap.String("session", s.id), zap.String("sink", s.sink.Name()))
}

// SaveResult delivers the result synchronously: BeginSave, Deliver,
// FinishSave.
func (s *Session) SaveResult(ctx context.Context) error {
	r, ok := s.BeginSave()
	if !ok {
		return nil
	}
	err := s.Deliver(ctx, r)
	s.FinishSave(r.SessionID, err)
	return err
}
