package session

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/screen"
	"github.com/aureus/cardiosim/internal/ui/components"
)

func (s *SessionScreen) prepareChoice(q *bank.Question) {
	s.mc = components.NewMultiChoice(q.Options.Labels())
	if c, ok := s.session.CurrentChoice(); ok && c.Answered() {
		s.mc.Selected = slices.Index(s.mc.Options, c.Selected())
		s.mc.MarkGraded(q.CorrectOption)
	}
}

func (s *SessionScreen) handleChoiceKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	var done bool
	s.mc, done = s.mc.Update(msg)
	if !done {
		return s, nil
	}

	c, ok := s.session.CurrentChoice()
	if !ok {
		return s, nil
	}
	if _, err := s.session.SubmitChoice(s.mc.Value()); err != nil {
		s.notice = err.Error()
		return s, nil
	}
	s.notice = ""
	s.mc.MarkGraded(c.Question.CorrectOption)
	return s, nil
}
