// Package session holds one learner's practice session: the attempt
// ledger, a cursor per modality, and the per-question exercise states.
// A Session is not safe for concurrent use; the TUI mutates it only from
// its update loop.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/exercise"
	"github.com/aureus/cardiosim/internal/feedback"
	"github.com/aureus/cardiosim/internal/participant"
	"github.com/aureus/cardiosim/internal/progress"
	"github.com/aureus/cardiosim/internal/sink"
)

var (
	// ErrNoQuestion is returned when the active modality has no current question.
	ErrNoQuestion = errors.New("no question to answer")

	// ErrNoModality is returned before a modality is started.
	ErrNoModality = errors.New("no modality selected")

	// ErrCompleted is returned when starting a modality after the session
	// has completed; restart first.
	ErrCompleted = errors.New("session already completed")

	// ErrStale is returned for a reply to a question the learner has left.
	ErrStale = errors.New("reply for a question that is no longer active")
)

// Options configures a Session.
type Options struct {
	Bank    *bank.Bank
	Advisor *feedback.Advisor
	Sink    sink.Sink
	Logger  *zap.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Session is the state of one learner's practice.
type Session struct {
	id          string
	participant participant.Participant

	bank    *bank.Bank
	advisor *feedback.Advisor
	sink    sink.Sink
	logger  *zap.Logger
	now     func() time.Time

	ledger *progress.Ledger
	visual *exercise.Track[*exercise.Measurement]
	choice *exercise.Track[*exercise.Choice]
	open   *exercise.Track[*exercise.Diagnosis]

	active    bank.Modality
	completed bool

	saveAttempted bool
	saving        bool
	saved         bool
	saveErr       error
}

// New creates a session over the bank.
func New(opts Options) *Session {
	s := &Session{
		bank:    opts.Bank,
		advisor: opts.Advisor,
		sink:    opts.Sink,
		logger:  opts.Logger,
		now:     opts.Now,
	}
	if s.advisor == nil {
		s.advisor = feedback.NewAdvisor(nil, feedback.DefaultConfig(), nil)
	}
	if s.sink == nil {
		s.sink = sink.Nop{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.id = uuid.NewString()
	s.ledger = progress.NewLedger()
	s.visual = exercise.NewTrack(s.bank.List(bank.ModalityVisual), exercise.NewMeasurement)
	s.choice = exercise.NewTrack(s.bank.List(bank.ModalityChoice), exercise.NewChoice)
	s.open = exercise.NewTrack(s.bank.List(bank.ModalityOpen), exercise.NewDiagnosis)
	s.active = ""
	s.completed = false
	s.saveAttempted = false
	s.saving = false
	s.saved = false
	s.saveErr = nil
}

// Restart clears all progress and starts a new session id. The
// participant is kept.
func (s *Session) Restart() {
	old := s.id
	s.reset()
	s.logger.Info("session restarted", zap.String("previous", old), zap.String("session", s.id))
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Bank returns the question bank.
func (s *Session) Bank() *bank.Bank { return s.bank }

// Ledger returns the attempt ledger.
func (s *Session) Ledger() *progress.Ledger { return s.ledger }

// Advisor returns the feedback advisor.
func (s *Session) Advisor() *feedback.Advisor { return s.advisor }

// SetParticipant validates and stores the consent form.
func (s *Session) SetParticipant(p participant.Participant) error {
	p = p.Trimmed()
	if err := p.Validate(); err != nil {
		return err
	}
	s.participant = p
	s.logger.Info("participant registered", zap.String("session", s.id), zap.String("university", p.University))
	return nil
}

// Participant returns the stored consent form.
func (s *Session) Participant() participant.Participant { return s.participant }

// Start makes m the active modality. Cursors keep their positions when
// switching back and forth.
func (s *Session) Start(m bank.Modality) error {
	if s.completed {
		return ErrCompleted
	}
	if _, err := s.cursorFor(m); err != nil {
		return err
	}
	s.active = m
	s.logger.Debug("modality started", zap.String("session", s.id), zap.String("modality", string(m)))
	return nil
}

// Modality returns the active modality, or "" before Start.
func (s *Session) Modality() bank.Modality { return s.active }

// Completed reports whether a modality's list has been exhausted.
func (s *Session) Completed() bool { return s.completed }

// Position returns the cursor index and list length of the active modality.
func (s *Session) Position() (index, total int) {
	c, err := s.cursorFor(s.active)
	if err != nil {
		return 0, 0
	}
	return c.Index(), c.Len()
}

// cursor is the navigation surface shared by all tracks.
type cursor interface {
	Next()
	SameTopic() bool
	DifferentTopic() bool
	Continue() bool
	Finish()
	Done() bool
	Index() int
	Len() int
}

func (s *Session) cursorFor(m bank.Modality) (cursor, error) {
	switch m {
	case bank.ModalityVisual:
		return s.visual, nil
	case bank.ModalityChoice:
		return s.choice, nil
	case bank.ModalityOpen:
		return s.open, nil
	case "":
		return nil, ErrNoModality
	}
	return nil, fmt.Errorf("unknown modality %q", m)
}
