package session

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/aureus/cardiosim/internal/exercise"
	"github.com/aureus/cardiosim/internal/feedback"
	"github.com/aureus/cardiosim/internal/screen"
	sess "github.com/aureus/cardiosim/internal/session"
	"github.com/aureus/cardiosim/internal/ui/components"
)

func (s *SessionScreen) prepareDiagnosis() {
	fields := make([]components.FormField, 0, len(exercise.FormFields))
	for _, f := range exercise.FormFields {
		if f.FreeText() {
			fields = append(fields, components.TextField(f.Key, f.Label, "", 600))
			continue
		}
		fields = append(fields, components.SelectField(f.Key, f.Label, f.Options))
	}
	s.form = components.NewForm(fields...)
}

func (s *SessionScreen) handleDiagnosisKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "enter" {
		return s.submitDiagnosis()
	}
	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *SessionScreen) submitDiagnosis() (screen.Screen, tea.Cmd) {
	job, err := s.session.SubmitDiagnosis(exercise.Findings(s.form.Values()))
	if err != nil {
		var verr *exercise.ValidationError
		if errors.As(err, &verr) {
			s.invalid = verr.Fields
		}
		s.notice = err.Error()
		return s, nil
	}
	s.notice = ""
	s.invalid = nil
	return s, tea.Batch(s.startWaiting(), evaluate(s.session, job))
}

func (s *SessionScreen) handleVerdict(msg verdictReadyMsg) (screen.Screen, tea.Cmd) {
	if !s.waiting {
		return s, nil
	}
	_, err := s.session.ReceiveVerdict(msg.QuestionID, msg.Verdict, msg.Err)
	if _, pending := s.session.PendingDiagnosis(); !pending {
		s.waiting = false
	}
	switch {
	case err == nil, errors.Is(err, sess.ErrStale), errors.Is(err, exercise.ErrNotGrading):
		return s, nil
	}
	s.notice = feedback.Describe(err)
	return s, nil
}
