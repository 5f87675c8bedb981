package components

import (
	"charm.land/lipgloss/v2"

	"github.com/aureus/cardiosim/internal/ui/theme"
)

// Selector is a single-line choice field cycled with left/right, used
// inside forms where a vertical list would not fit.
type Selector struct {
	Label   string
	Options []string

	// Index is -1 until the learner picks a value.
	Index int
}

// NewSelector creates an empty selector.
func NewSelector(label string, options []string) Selector {
	return Selector{Label: label, Options: options, Index: -1}
}

// Next moves to the following option, wrapping around.
func (s *Selector) Next() {
	if len(s.Options) == 0 {
		return
	}
	s.Index = (s.Index + 1) % len(s.Options)
}

// Prev moves to the previous option, wrapping around.
func (s *Selector) Prev() {
	if len(s.Options) == 0 {
		return
	}
	if s.Index <= 0 {
		s.Index = len(s.Options) - 1
		return
	}
	s.Index--
}

// Value returns the picked option or "".
func (s Selector) Value() string {
	if s.Index < 0 || s.Index >= len(s.Options) {
		return ""
	}
	return s.Options[s.Index]
}

// View renders "Label: ‹ value ›".
func (s Selector) View(focused bool) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label + ": ")
	v := s.Value()
	if v == "" {
		v = "select"
	}
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if focused {
		style = style.Foreground(theme.Primary).Bold(true)
		v = "‹ " + v + " ›"
	}
	return label + style.Render(v)
}
