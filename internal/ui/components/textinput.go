package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// Accept decides whether a typed rune may enter an input.
type Accept func(r rune) bool

// Digits accepts 0-9, for millisecond values.
func Digits(r rune) bool { return r >= '0' && r <= '9' }

// Coordinates accepts pixel positions separated by spaces or commas.
func Coordinates(r rune) bool {
	return Digits(r) || strings.ContainsRune(" .,;", r)
}

// TextInput is a bubbles text input that can refuse keystrokes.
type TextInput struct {
	Model  textinput.Model
	Accept Accept // nil accepts everything
}

// NewTextInput returns a blurred input. limit caps its length when
// positive.
func NewTextInput(placeholder string, limit int, accept Accept) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	if limit > 0 {
		m.CharLimit = limit
	}
	return TextInput{Model: m, Accept: accept}
}

func (t TextInput) Init() tea.Cmd { return t.Model.Focus() }

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && t.Accept != nil && k.Text != "" {
		for _, r := range k.Text {
			if !t.Accept(r) {
				return t, nil
			}
		}
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string  { return t.Model.View() }
func (t TextInput) Value() string { return t.Model.Value() }

// NumericValue parses the trimmed value as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(strings.TrimSpace(t.Model.Value()))
}

func (t *TextInput) Focus() tea.Cmd { return t.Model.Focus() }
func (t *TextInput) Blur()          { t.Model.Blur() }
func (t *TextInput) Reset()         { t.Model.Reset() }
