// Package app is the root Bubble Tea model: a router of screens inside a
// header and footer.
package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/aureus/cardiosim/internal/router"
	"github.com/aureus/cardiosim/internal/screen"
	"github.com/aureus/cardiosim/internal/screens/consent"
	"github.com/aureus/cardiosim/internal/screens/home"
	"github.com/aureus/cardiosim/internal/screens/summary"
	"github.com/aureus/cardiosim/internal/screens/welcome"
	sess "github.com/aureus/cardiosim/internal/session"
	"github.com/aureus/cardiosim/internal/store"
	"github.com/aureus/cardiosim/internal/ui/layout"
)

// Options configures the terminal app.
type Options struct {
	Session *sess.Session

	// Results backs the past-results screen; nil hides it.
	Results store.ResultRepo

	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *sess.Session
	width   int
	height  int
}

var (
	quitHint = layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}
	backHint = layout.KeyHint{Key: "Esc", Description: "Back"}
)

// newAppModel starts on the welcome splash; a key press leads to the
// consent form, and submitting it to the home menu.
func newAppModel(opts Options) AppModel {
	homeScreen := func() screen.Screen { return home.New(opts.Session, opts.Results) }
	consentScreen := func() screen.Screen { return consent.New(opts.Session, homeScreen) }
	return AppModel{
		router:  router.New(welcome.New(consentScreen)),
		session: opts.Session,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case summary.ResultSavedMsg:
		// The learner may have left the report while the row was in flight.
		msg.Settle(m.session)
		return m, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() == 1 {
				return m, nil
			}
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return m, m.router.Update(msg)
}

// hints returns the footer for the active screen. Screens that list their
// own keys replace the default back hint.
func (m AppModel) hints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), quitHint)
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{backHint, quitHint}
	}
	return []layout.KeyHint{quitHint}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	switch {
	case m.width == 0 || m.height == 0:
		return v
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	var title string
	if active != nil {
		title = active.Title()
	}
	score := m.session.Ledger().Score()

	header := layout.RenderHeader(title, score.Correct, score.Total, m.width)
	footer := layout.RenderFooter(m.hints(active), m.width)
	body := m.router.View(m.width, max(0, m.height-lipgloss.Height(header)-lipgloss.Height(footer)))

	v.SetContent(layout.RenderFrame(header, body, footer, m.width, m.height))
	return v
}

// Run blocks until the learner quits.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("session", opts.Session.ID()))
	logger.Info("app started")

	if _, err := tea.NewProgram(newAppModel(opts)).Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		return err
	}
	logger.Info("app exited", zap.Int("answered", opts.Session.Ledger().Len()))
	return nil
}
