package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/router"
	"github.com/aureus/cardiosim/internal/screen"
	"github.com/aureus/cardiosim/internal/screens/results"
	sessionscreen "github.com/aureus/cardiosim/internal/screens/session"
	"github.com/aureus/cardiosim/internal/screens/summary"
	sess "github.com/aureus/cardiosim/internal/session"
	"github.com/aureus/cardiosim/internal/store"
	"github.com/aureus/cardiosim/internal/ui/components"
	"github.com/aureus/cardiosim/internal/ui/layout"
	"github.com/aureus/cardiosim/internal/ui/theme"
)

const titleFull = `╭─╮  ╭╮
│ ╰──╯╰╮ ╭──╮  ╭─ CARDIOSIM
╯      ╰─╯  ╰──╯`

const titleCompact = "C A R D I O S I M"

const buttonWidth = 30

// HomeScreen is the modality menu.
type HomeScreen struct {
	session *sess.Session
	menu    components.Menu
	notice  string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home menu. results may be nil when no result store is
// configured.
func New(s *sess.Session, repo store.ResultRepo) *HomeScreen {
	h := &HomeScreen{session: s}

	var items []components.MenuItem
	for _, m := range bank.Modalities {
		n := len(s.Bank().List(m))
		items = append(items, components.MenuItem{
			Label:    strings.ToUpper(m.DisplayName()),
			Disabled: n == 0,
			Action:   func() tea.Cmd { return h.open(m) },
		})
	}
	items = append(items,
		components.MenuItem{Label: "PAST RESULTS", Disabled: repo == nil, Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: results.New(repo)} }
		}},
		components.MenuItem{Label: "RESTART", Action: func() tea.Cmd {
			s.Restart()
			h.notice = "Progress cleared. Choose a module to start again."
			return nil
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	h.menu = components.NewMenu(items)
	return h
}

// open starts a modality, or shows the report once the session is over.
func (h *HomeScreen) open(m bank.Modality) tea.Cmd {
	if h.session.Completed() {
		return func() tea.Msg { return router.PushScreenMsg{Screen: summary.New(h.session)} }
	}
	if err := h.session.Start(m); err != nil {
		h.notice = err.Error()
		return nil
	}
	h.notice = ""
	return func() tea.Msg { return router.PushScreenMsg{Screen: sessionscreen.New(h.session)} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.Compact(width, height+8)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, h.renderTitle(cw, compact))
	sections = append(sections, h.renderStatus(cw))
	if compact {
		sections = append(sections, h.menu.CompactView())
	} else {
		sections = append(sections, h.menu.View(buttonWidth))
	}
	if h.notice != "" {
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Foreground(theme.Accent).Render(h.notice))
	}

	content := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(strings.Join(sections, "\n\n"))
	return components.MonitorFrame(content, width, height)
}

func (h *HomeScreen) renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(style.Render(art))
}

// renderStatus shows who is practicing, the running score and whether
// AI feedback is available.
func (h *HomeScreen) renderStatus(cw int) string {
	score := h.session.Ledger().Score()
	name := h.session.Participant().Name
	if name == "" {
		name = "guest"
	}

	ai := lipgloss.NewStyle().Foreground(theme.TextDim).Render("AI feedback off")
	if h.session.Advisor().Online() {
		ai = lipgloss.NewStyle().Foreground(theme.Monitor).Render("AI feedback on")
	}

	stats := fmt.Sprintf("%s  %s  %s",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(name),
		lipgloss.NewStyle().Foreground(theme.Highlight).Render(fmt.Sprintf("%d/%d correct", score.Correct, score.Total)),
		ai,
	)
	if h.session.Completed() {
		stats += "\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render("Session complete: open any module for the report")
	}
	if st := h.session.SaveState(); st.Err != nil && !st.Pending {
		stats += "\n" + theme.Incorrect.Render("Result not saved: open the report and press R")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Monitor).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
