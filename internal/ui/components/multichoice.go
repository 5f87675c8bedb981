package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aureus/cardiosim/internal/ui/theme"
)

// MultiChoice is a lettered option selector. It only tracks the cursor;
// grading and the correct answer come from the caller.
type MultiChoice struct {
	Options  []string
	Selected int

	// Set after grading to colour the result.
	Chosen  int
	Correct int
	Graded  bool
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Chosen:  -1,
		Correct: -1,
	}
}

// Letter returns the shortcut letter of option i.
func Letter(i int) string {
	return string(rune('A' + i))
}

// Update handles arrow navigation and letter shortcuts. It reports true
// when the learner confirmed a choice, with Enter or a letter key.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	if m.Graded {
		return m, false
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, false
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, false
	case "enter":
		return m, len(m.Options) > 0
	}

	if len(key) == 1 {
		i := int(strings.ToUpper(key)[0]) - 'A'
		if i >= 0 && i < len(m.Options) {
			m.Selected = i
			return m, true
		}
	}
	return m, false
}

// Value returns the label under the cursor.
func (m MultiChoice) Value() string {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return ""
	}
	return m.Options[m.Selected]
}

// MarkGraded freezes the selector and records which option was right.
func (m *MultiChoice) MarkGraded(correctLabel string) {
	m.Graded = true
	m.Chosen = m.Selected
	for i, opt := range m.Options {
		if opt == correctLabel {
			m.Correct = i
		}
	}
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Graded {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, Letter(i), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Graded && i == m.Correct:
			style = style.Foreground(theme.Success).Bold(true)
		case m.Graded && i == m.Chosen:
			style = style.Foreground(theme.Error).Bold(true)
		case m.Graded:
			style = style.Foreground(theme.TextDim)
		case i == m.Selected:
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
