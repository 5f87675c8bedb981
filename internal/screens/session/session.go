// Package session is the practice screen: it shows the current question
// of the active modality and routes answers to the session state.
package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/exercise"
	"github.com/aureus/cardiosim/internal/feedback"
	"github.com/aureus/cardiosim/internal/router"
	"github.com/aureus/cardiosim/internal/screen"
	sess "github.com/aureus/cardiosim/internal/session"
	"github.com/aureus/cardiosim/internal/ui/components"
	"github.com/aureus/cardiosim/internal/ui/layout"
)

// SessionScreen implements screen.Screen for the active modality.
type SessionScreen struct {
	session *sess.Session

	// shownID is the question the inputs below were prepared for.
	shownID string

	// Interval measurement.
	marks      components.TextInput
	value      components.TextInput
	rationale  components.TextInput
	marksFocus bool
	lastMarks  []float64
	hint       string

	// Multiple choice.
	mc components.MultiChoice

	// Full diagnosis.
	form    components.Form
	invalid []string

	waiting bool
	spin    int
	notice  string
	errMsg  string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates the practice screen. The session must have an active modality.
func New(s *sess.Session) *SessionScreen {
	sc := &SessionScreen{session: s}
	sc.prepare()
	return sc
}

func (s *SessionScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.focusCmd()}

	// Resume a request whose reply was lost when the learner left.
	if req, ok := s.session.PendingHint(); ok {
		cmds = append(cmds, s.startWaiting(), fetchHint(s.session, req))
	}
	if job, ok := s.session.PendingDiagnosis(); ok {
		cmds = append(cmds, s.startWaiting(), evaluate(s.session, job))
	}
	return tea.Batch(cmds...)
}

func (s *SessionScreen) Title() string {
	return s.session.Modality().DisplayName()
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.waiting:
		return []layout.KeyHint{{Key: "Esc", Description: "Home"}}
	case s.locked():
		return []layout.KeyHint{
			{Key: "N", Description: "Next"},
			{Key: "S", Description: "Same topic"},
			{Key: "D", Description: "Other topic"},
			{Key: "F", Description: "Finish"},
		}
	}
	switch s.session.Modality() {
	case bank.ModalityVisual:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Marks/Value"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Home"},
		}
	case bank.ModalityChoice:
		return []layout.KeyHint{
			{Key: "A-Z", Description: "Answer"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Submit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Tab/↑↓", Description: "Field"},
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+N", Description: "Skip"},
		}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case hintReadyMsg:
		return s.handleHint(msg)

	case verdictReadyMsg:
		return s.handleVerdict(msg)

	case spinnerTickMsg:
		if !s.waiting {
			return s, nil
		}
		s.spin++
		return s, spinnerTick()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, s.forward(msg)
}

// prepare resets the inputs when the cursor lands on a new question.
func (s *SessionScreen) prepare() {
	q, ok := s.session.Current()
	if !ok {
		s.errMsg = "no question available in this module"
		return
	}
	if q.ID == s.shownID {
		return
	}
	s.shownID = q.ID
	s.notice = ""
	s.invalid = nil

	switch q.Modality {
	case bank.ModalityVisual:
		s.prepareMeasurement(q)
	case bank.ModalityChoice:
		s.prepareChoice(q)
	case bank.ModalityOpen:
		s.prepareDiagnosis()
	}
}

// locked reports whether the current question is graded and only
// navigation remains.
func (s *SessionScreen) locked() bool {
	switch s.session.Modality() {
	case bank.ModalityVisual:
		m, ok := s.session.CurrentMeasurement()
		return ok && m.Locked()
	case bank.ModalityChoice:
		c, ok := s.session.CurrentChoice()
		return ok && c.Answered()
	case bank.ModalityOpen:
		d, ok := s.session.CurrentDiagnosis()
		return ok && d.Phase() == exercise.DiagnosisGraded
	}
	return false
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.waiting {
		return s, nil
	}
	if s.locked() {
		return s.navigate(msg.String())
	}
	if msg.String() == "ctrl+n" {
		// Skip without an answer, e.g. when AI grading is unavailable.
		return s.navigate("n")
	}

	switch s.session.Modality() {
	case bank.ModalityVisual:
		return s.handleMeasurementKey(msg)
	case bank.ModalityChoice:
		return s.handleChoiceKey(msg)
	case bank.ModalityOpen:
		return s.handleDiagnosisKey(msg)
	}
	return s, nil
}

var navKeys = map[string]sess.Policy{
	"n":     sess.Next,
	"enter": sess.Next,
	"s":     sess.SameTopic,
	"d":     sess.DifferentTopic,
	"c":     sess.Continue,
	"f":     sess.Finish,
}

func (s *SessionScreen) navigate(key string) (screen.Screen, tea.Cmd) {
	p, ok := navKeys[key]
	if !ok {
		return s, nil
	}
	moved, err := s.session.Advance(p)
	if err != nil {
		s.notice = err.Error()
		return s, nil
	}
	if s.session.Completed() {
		next := newSummaryScreen(s.session)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	if !moved {
		switch p {
		case sess.SameTopic:
			s.notice = "No more questions on this topic. Try another topic or finish."
		default:
			s.notice = "No questions left on other topics."
		}
		return s, nil
	}
	s.prepare()
	return s, s.focusCmd()
}

// focusCmd focuses the input the current phase types into.
func (s *SessionScreen) focusCmd() tea.Cmd {
	if s.session.Modality() != bank.ModalityVisual {
		return nil
	}
	if in := s.focusedInput(); in != nil {
		return in.Focus()
	}
	return nil
}

// forward passes non-key messages, e.g. cursor blinks, to the focused input.
func (s *SessionScreen) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.session.Modality() {
	case bank.ModalityVisual:
		if in := s.focusedInput(); in != nil {
			*in, cmd = in.Update(msg)
		}
	case bank.ModalityOpen:
		s.form, cmd = s.form.Update(msg)
	}
	return cmd
}

func (s *SessionScreen) startWaiting() tea.Cmd {
	if s.waiting {
		return nil
	}
	s.waiting = true
	s.spin = 0
	return spinnerTick()
}

func fetchHint(se *sess.Session, req feedback.HintRequest) tea.Cmd {
	return func() tea.Msg {
		text, err := se.FetchHint(context.Background(), req)
		return hintReadyMsg{QuestionID: req.Question.ID, Text: text, Err: err}
	}
}

func evaluate(se *sess.Session, job sess.DiagnosisJob) tea.Cmd {
	return func() tea.Msg {
		v, err := se.Evaluate(context.Background(), job)
		return verdictReadyMsg{QuestionID: job.Question.ID, Verdict: v, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
