// Package summary shows the report of a completed modality and delivers
// its result row.
package summary

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aureus/cardiosim/internal/progress"
	"github.com/aureus/cardiosim/internal/router"
	"github.com/aureus/cardiosim/internal/screen"
	sess "github.com/aureus/cardiosim/internal/session"
	"github.com/aureus/cardiosim/internal/ui/components"
	"github.com/aureus/cardiosim/internal/ui/layout"
	"github.com/aureus/cardiosim/internal/ui/theme"
)

// ResultSavedMsg reports the end of a result delivery. The reply can
// arrive after the learner has left this screen, so the app settles it
// on the session with Settle rather than leaving it to whichever screen
// is active.
type ResultSavedMsg struct {
	SessionID string
	Err       error
}

// Settle records the delivery outcome on s.
func (m ResultSavedMsg) Settle(s *sess.Session) {
	s.FinishSave(m.SessionID, m.Err)
}

// SummaryScreen displays the final score and the per-topic breakdown.
type SummaryScreen struct {
	session *sess.Session
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen for a completed session.
func New(s *sess.Session) *SummaryScreen {
	return &SummaryScreen{session: s}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if !s.session.NeedsSave() {
		return nil
	}
	return s.save()
}

// save starts one delivery of the result row.
func (s *SummaryScreen) save() tea.Cmd {
	r, ok := s.session.BeginSave()
	if !ok {
		return nil
	}
	se := s.session
	return func() tea.Msg {
		err := se.Deliver(context.Background(), r)
		return ResultSavedMsg{SessionID: r.SessionID, Err: err}
	}
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "N", Description: "New session"},
	}
	if st := s.session.SaveState(); st.Err != nil && !st.Pending {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry save"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		st := s.session.SaveState()
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "n":
			if st.Pending {
				return s, nil
			}
			s.session.Restart()
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "r":
			if st.Pending || st.Err == nil {
				return s, nil
			}
			return s, s.save()
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.session.Summary()
	w := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(w).Render(s.session.Modality().DisplayName() + " complete"))
	b.WriteString("\n\n")

	score := fmt.Sprintf("%d / %d correct  ·  %d%%", sum.Score.Correct, sum.Score.Total, sum.Score.Percent)
	b.WriteString(lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).Render(score))
	b.WriteString("\n")

	verdict := theme.Incorrect
	if sum.Passed {
		verdict = theme.Correct
	}
	line := verdict.Render(sum.Verdict) + theme.Hint.Render("  ·  rating: ") + theme.Body.Render(sum.Rating)
	b.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Center, line))
	b.WriteString("\n\n")

	if len(sum.Topics) > 0 {
		b.WriteString(s.renderTopics(sum, w))
		b.WriteString("\n")
	}

	if len(sum.WeakTopics) > 0 {
		b.WriteString(theme.Hint.Render("Review: " + strings.Join(sum.WeakTopics, ", ")))
		b.WriteString("\n\n")
	}

	b.WriteString(s.renderSaveState())

	return components.MonitorFrame(b.String(), width, height)
}

func (s *SummaryScreen) renderTopics(sum progress.Summary, w int) string {
	labelWidth := 0
	for _, t := range sum.Topics {
		labelWidth = max(labelWidth, lipgloss.Width(t.Topic))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("By topic"))
	b.WriteString("\n")
	for _, t := range sum.Topics {
		label := fmt.Sprintf("%-*s", labelWidth, t.Topic)
		bar := components.NewProgressBar(label, float64(t.Percent)/100, true, max(w-24, 30))
		bar.Mark = float64(progress.PassThreshold) / 100
		bar.Fill = levelColor(t.Level)
		b.WriteString(bar.View())
		b.WriteString("  ")
		b.WriteString(levelStyle(t.Level).Render(t.Level.DisplayName()))
		b.WriteString("\n")
	}
	return b.String()
}

func levelColor(lv progress.Level) color.Color {
	switch lv {
	case progress.LevelExcellent:
		return theme.Success
	case progress.LevelAcceptable:
		return theme.Accent
	default:
		return theme.Error
	}
}

func levelStyle(lv progress.Level) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(levelColor(lv)).Bold(true)
}

func (s *SummaryScreen) renderSaveState() string {
	st := s.session.SaveState()
	switch {
	case st.Pending:
		return theme.Hint.Render("Saving result...")
	case st.Saved:
		return lipgloss.NewStyle().Foreground(theme.Monitor).Render("Result saved.")
	case st.Err != nil:
		return theme.Incorrect.Render("Result not saved: "+st.Err.Error()) + "\n" +
			theme.Hint.Render("Press R to try again.")
	}
	return ""
}
