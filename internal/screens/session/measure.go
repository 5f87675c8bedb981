package session

import (
	"errors"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/exercise"
	"github.com/aureus/cardiosim/internal/screen"
	"github.com/aureus/cardiosim/internal/ui/components"
)

func newMarksInput() components.TextInput {
	return components.NewTextInput("x1 x2", 24, components.Coordinates)
}

func newValueInput() components.TextInput {
	return components.NewTextInput("ms", 5, components.Digits)
}

func newRationaleInput() components.TextInput {
	return components.NewTextInput("How did you place your marks?", 400, nil)
}

func (s *SessionScreen) prepareMeasurement(q *bank.Question) {
	s.marks = newMarksInput()
	s.value = newValueInput()
	s.rationale = newRationaleInput()
	s.marksFocus = q.HasZones()
	s.lastMarks = nil
	s.hint = ""
	s.marks.Blur()
	s.value.Blur()
	s.rationale.Blur()
}

// focusedInput returns the text input the current phase types into.
func (s *SessionScreen) focusedInput() *components.TextInput {
	m, ok := s.session.CurrentMeasurement()
	if !ok {
		return nil
	}
	switch m.Phase() {
	case exercise.PhaseNeedsRationale:
		return &s.rationale
	case exercise.PhaseFirstAttempt, exercise.PhaseSecondAttempt:
		if s.marksFocus {
			return &s.marks
		}
		return &s.value
	}
	return nil
}

func (s *SessionScreen) handleMeasurementKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	m, ok := s.session.CurrentMeasurement()
	if !ok {
		return s, nil
	}

	switch m.Phase() {
	case exercise.PhaseNeedsRationale:
		if msg.String() == "enter" {
			return s.submitRationale()
		}
	case exercise.PhaseFirstAttempt, exercise.PhaseSecondAttempt:
		switch msg.String() {
		case "tab", "shift+tab":
			if in := s.focusedInput(); in != nil {
				in.Blur()
			}
			s.marksFocus = !s.marksFocus
			return s, s.focusCmd()
		case "enter":
			return s.submitMeasurement()
		}
	}

	var cmd tea.Cmd
	if in := s.focusedInput(); in != nil {
		*in, cmd = in.Update(msg)
	}
	return s, cmd
}

func (s *SessionScreen) submitMeasurement() (screen.Screen, tea.Cmd) {
	marks, err := parseMarks(s.marks.Value())
	if err != nil {
		s.notice = err.Error()
		return s, nil
	}
	value, err := s.value.NumericValue()
	if err != nil {
		s.notice = "Enter the measured interval in milliseconds."
		return s, nil
	}

	g, err := s.session.SubmitMeasurement(value, marks)
	if err != nil {
		s.notice = err.Error()
		return s, nil
	}
	s.notice = ""
	s.lastMarks = marks
	if g.Terminal {
		s.marks.Blur()
		s.value.Blur()
		return s, nil
	}

	s.marks.Blur()
	s.value.Blur()
	s.value.Reset()
	return s, s.rationale.Focus()
}

func (s *SessionScreen) submitRationale() (screen.Screen, tea.Cmd) {
	req, err := s.session.SubmitRationale(s.rationale.Value(), s.lastMarks)
	if err != nil {
		s.notice = err.Error()
		return s, nil
	}
	s.notice = ""
	s.rationale.Blur()
	return s, tea.Batch(s.startWaiting(), fetchHint(s.session, req))
}

func (s *SessionScreen) handleHint(msg hintReadyMsg) (screen.Screen, tea.Cmd) {
	if !s.waiting {
		return s, nil
	}
	if err := s.session.ReceiveHint(msg.QuestionID, msg.Text, msg.Err); err != nil {
		// Duplicate or stale reply.
		if _, pending := s.session.PendingHint(); !pending {
			s.waiting = false
		}
		return s, nil
	}
	s.waiting = false
	if m, ok := s.session.CurrentMeasurement(); ok {
		s.hint, _ = m.TakeFeedback()
		s.marksFocus = m.Question.HasZones()
	}
	return s, s.focusCmd()
}

// parseMarks reads "x1 x2" or "x1,x2" pixel positions. Empty input
// means no marks.
func parseMarks(text string) ([]float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.New("marks must be pixel positions, e.g. 120 185")
		}
		out = append(out, x)
	}
	return out, nil
}
