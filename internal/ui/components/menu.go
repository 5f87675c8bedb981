package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aureus/cardiosim/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Disabled entries are drawn dimmed and
// never take the cursor.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions driven by arrows, j/k, digit
// shortcuts and enter.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu puts the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.step(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// step moves the cursor to the next enabled item in direction dir and
// leaves it alone when there is none.
func (m *Menu) step(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) activate() tea.Cmd {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return nil
	}
	it := m.Items[m.Selected]
	if it.Disabled || it.Action == nil {
		return nil
	}
	return it.Action()
}

// Update moves the cursor or runs the selected action.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch s := k.String(); s {
	case "up", "k":
		m.step(-1)
	case "down", "j":
		m.step(1)
	case "enter":
		return m, m.activate()
	default:
		// 1-9 jump straight to an item.
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(m.Items) && !m.Items[n-1].Disabled {
			m.Selected = n - 1
			return m, m.activate()
		}
	}
	return m, nil
}

// View draws each item as a bordered button of the given width.
func (m Menu) View(buttonWidth int) string {
	rows := make([]string, len(m.Items))
	for i, it := range m.Items {
		rows[i] = button(it.Label, m.state(i), buttonWidth)
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// CompactView draws one plain line per item.
func (m Menu) CompactView() string {
	rows := make([]string, len(m.Items))
	for i, it := range m.Items {
		switch m.state(i) {
		case buttonSelected:
			rows[i] = lipgloss.NewStyle().Bold(true).
				Foreground(theme.BgDark).Background(theme.Highlight).
				Render(" ▸ " + it.Label + " ")
		case buttonDisabled:
			rows[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render("   " + it.Label)
		default:
			rows[i] = theme.Body.Render("   " + it.Label)
		}
	}
	return strings.Join(rows, "\n")
}

func (m Menu) state(i int) buttonState {
	switch {
	case m.Items[i].Disabled:
		return buttonDisabled
	case i == m.Selected:
		return buttonSelected
	}
	return buttonIdle
}
