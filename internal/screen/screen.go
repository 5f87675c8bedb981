// Package screen holds the contract between the router and the pages of
// the trainer.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/aureus/cardiosim/internal/ui/layout"
)

// Screen is one page on the router stack. The app frame draws the header
// and footer; View only fills the area between them.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title labels the page in the header bar.
	Title() string
}

// KeyHintProvider lets a screen replace the footer's default hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
