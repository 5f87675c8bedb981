package session

import (
	"go.uber.org/zap"

	"github.com/aureus/cardiosim/internal/bank"
)

// Policy picks the next question.
type Policy int

const (
	// Next moves in list order and completes after the last question.
	Next Policy = iota
	// SameTopic moves to the next question of the current topic.
	SameTopic
	// DifferentTopic moves to the next question of another topic.
	DifferentTopic
	// Continue tries SameTopic, then DifferentTopic.
	Continue
	// Finish ends the modality.
	Finish
)

// Advance moves the active modality's cursor. It reports false when the
// policy found no question, leaving the cursor in place. Moving past the
// end completes the session.
func (s *Session) Advance(p Policy) (bool, error) {
	c, err := s.cursorFor(s.active)
	if err != nil {
		return false, err
	}
	if c.Done() {
		return false, ErrNoQuestion
	}

	moved := true
	switch p {
	case Next:
		c.Next()
	case SameTopic:
		moved = c.SameTopic()
	case DifferentTopic:
		moved = c.DifferentTopic()
	case Continue:
		moved = c.Continue()
	case Finish:
		c.Finish()
	}

	if c.Done() {
		s.completed = true
		s.logger.Info("modality completed",
			zap.String("session", s.id),
			zap.String("modality", string(s.active)),
			zap.Int("answered", s.ledger.Len()),
		)
	}
	return moved, nil
}

// Current returns the active modality's current question.
func (s *Session) Current() (*bank.Question, bool) {
	var q *bank.Question
	switch s.active {
	case bank.ModalityVisual:
		q, _, _ = s.visual.Current()
	case bank.ModalityChoice:
		q, _, _ = s.choice.Current()
	case bank.ModalityOpen:
		q, _, _ = s.open.Current()
	}
	return q, q != nil
}

// Topic returns the topic of the active modality's current question.
func (s *Session) Topic() string {
	if q, ok := s.Current(); ok {
		return q.Topic
	}
	return ""
}
