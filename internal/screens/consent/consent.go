// Package consent is the identification and data-consent form shown
// before any practice.
package consent

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aureus/cardiosim/internal/participant"
	"github.com/aureus/cardiosim/internal/router"
	"github.com/aureus/cardiosim/internal/screen"
	sess "github.com/aureus/cardiosim/internal/session"
	"github.com/aureus/cardiosim/internal/ui/components"
	"github.com/aureus/cardiosim/internal/ui/layout"
	"github.com/aureus/cardiosim/internal/ui/theme"
)

const terms = "Your answers and score are stored for research on ECG teaching. " +
	"Identification data is kept confidential and reported only in aggregate."

// Field keys.
const (
	keyName       = "name"
	keyDocument   = "document"
	keySex        = "sex"
	keyCountry    = "country"
	keyUniversity = "university"
	keyLevel      = "level"
	keyExperience = "experience"
	keyTraining   = "training"
	keyFrequency  = "frequency"
	keyConsent    = "consent"
)

// ConsentScreen collects the participant details.
type ConsentScreen struct {
	session *sess.Session
	next    func() screen.Screen
	form    components.Form
	formErr *participant.FormError
	errMsg  string
	done    bool
}

var _ screen.Screen = (*ConsentScreen)(nil)
var _ screen.KeyHintProvider = (*ConsentScreen)(nil)

// New creates the form. next builds the screen shown after a valid submit.
func New(s *sess.Session, next func() screen.Screen) *ConsentScreen {
	p := s.Participant()
	form := components.NewForm(
		components.TextField(keyName, "Full name", "Ana María Pérez", 80),
		components.TextField(keyDocument, "Document ID", "", 30),
		components.SelectField(keySex, "Sex", participant.SexOptions),
		components.TextField(keyCountry, "Country", "", 50),
		components.TextField(keyUniversity, "University", "", 80),
		components.SelectField(keyLevel, "Academic level", participant.AcademicLevels),
		components.SelectField(keyExperience, "ECG experience", participant.ExperienceLevels),
		components.SelectField(keyTraining, "Formal ECG training", participant.TrainingOptions),
		components.SelectField(keyFrequency, "Clinical ECG frequency", participant.ClinicalFrequencies),
		components.ToggleField(keyConsent, "I accept the data processing terms"),
	)
	prefill(&form, p)
	return &ConsentScreen{session: s, next: next, form: form}
}

// prefill restores a previously accepted form, e.g. after a restart.
func prefill(f *components.Form, p participant.Participant) {
	text := map[string]string{keyName: p.Name, keyDocument: p.DocumentID, keyCountry: p.Country, keyUniversity: p.University}
	for k, v := range text {
		if v != "" {
			f.Field(k).Input.Model.SetValue(v)
		}
	}
	choice := map[string]string{keySex: p.Sex, keyLevel: p.AcademicLevel, keyExperience: p.Experience, keyTraining: p.FormalTraining, keyFrequency: p.ClinicalFrequency}
	for k, v := range choice {
		sel := &f.Field(k).Selector
		for i, opt := range sel.Options {
			if opt == v {
				sel.Index = i
			}
		}
	}
	f.Field(keyConsent).Checked = p.Consent
}

func (c *ConsentScreen) Init() tea.Cmd {
	return c.form.Fields[c.form.Focus].Input.Init()
}

func (c *ConsentScreen) Title() string {
	return "Participant details"
}

func (c *ConsentScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Field"},
		{Key: "←→", Description: "Choose"},
		{Key: "Space", Description: "Accept"},
		{Key: "Enter", Description: "Continue"},
	}
}

func (c *ConsentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return c, c.submit()
	}
	var cmd tea.Cmd
	c.form, cmd = c.form.Update(msg)
	return c, cmd
}

// Participant returns the form contents.
func (c *ConsentScreen) Participant() participant.Participant {
	v := c.form.Values()
	return participant.Participant{
		Name:              v[keyName],
		DocumentID:        v[keyDocument],
		Sex:               v[keySex],
		Country:           v[keyCountry],
		University:        v[keyUniversity],
		AcademicLevel:     v[keyLevel],
		Experience:        v[keyExperience],
		FormalTraining:    v[keyTraining],
		ClinicalFrequency: v[keyFrequency],
		Consent:           v[keyConsent] != "",
	}
}

func (c *ConsentScreen) submit() tea.Cmd {
	if c.done {
		return nil
	}
	err := c.session.SetParticipant(c.Participant())
	if err != nil {
		c.formErr = nil
		errors.As(err, &c.formErr)
		c.errMsg = err.Error()
		return nil
	}
	c.done = true
	next := c.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (c *ConsentScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(terms))
	b.WriteString("\n\n")

	var invalid []string
	if c.formErr != nil {
		invalid = c.formErr.Fields
		if c.formErr.Consent {
			invalid = append(invalid, "I accept the data processing terms")
		}
	}
	b.WriteString(c.form.View(invalid))

	if c.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Error).Render(c.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, components.Panel(b.String(), cw))
}
