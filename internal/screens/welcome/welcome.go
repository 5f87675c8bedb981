// Package welcome is the splash screen: a monitor that starts flat,
// picks up a sinus rhythm and then shows the banner.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aureus/cardiosim/internal/router"
	"github.com/aureus/cardiosim/internal/screen"
	"github.com/aureus/cardiosim/internal/ui/theme"
)

const frameRate = 100 * time.Millisecond

// One lead II complex. The sweep scrolls one rune per frame.
const complex = "───╮╭──╮╭─╯╰╮╭──────"

const sweepWidth = 40

type stage int

const (
	flatline stage = iota
	rhythm
	ready
)

// Frames at which each later stage begins.
var stageAt = [...]int{rhythm: 5, ready: 15}

type frameMsg time.Time

type WelcomeScreen struct {
	next   func() screen.Screen
	frames int
	done   bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New returns the splash. next builds the screen that replaces it on the
// first key press.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (w *WelcomeScreen) stage() stage {
	switch {
	case w.frames >= stageAt[ready]:
		return ready
	case w.frames >= stageAt[rhythm]:
		return rhythm
	}
	return flatline
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		w.frames++
		return w, nextFrame()
	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		next := w.next()
		return w, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return w, nil
}

// sweep returns sweepWidth runes of the repeating complex, offset by the
// frame count.
func (w *WelcomeScreen) sweep() string {
	unit := []rune(complex)
	line := []rune(strings.Repeat(complex, sweepWidth/len(unit)+2))
	off := w.frames % len(unit)
	return string(line[off : off+sweepWidth])
}

func (w *WelcomeScreen) View(width, height int) string {
	trace := lipgloss.NewStyle().Foreground(theme.Secondary)
	lines := []string{trace.Render(strings.Repeat("─", sweepWidth))}
	if w.stage() >= rhythm {
		lines[0] = trace.Render(w.sweep())
	}
	if w.stage() == ready {
		lines = append(lines,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Learn to read the ECG"),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}
