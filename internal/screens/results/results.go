// Package results lists saved session results.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/progress"
	"github.com/aureus/cardiosim/internal/router"
	"github.com/aureus/cardiosim/internal/screen"
	"github.com/aureus/cardiosim/internal/store"
	"github.com/aureus/cardiosim/internal/ui/layout"
	"github.com/aureus/cardiosim/internal/ui/theme"
)

const listLimit = 50

type resultsLoadedMsg struct {
	Results []store.Result
	Err     error
}

// ResultsScreen displays past results, newest first.
type ResultsScreen struct {
	repo     store.ResultRepo
	results  []store.Result
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(repo store.ResultRepo) *ResultsScreen {
	return &ResultsScreen{
		repo:     repo,
		expanded: make(map[int]bool),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		rs, err := repo.ListResults(context.Background(), listLimit)
		return resultsLoadedMsg{Results: rs, Err: err}
	}
}

func (s *ResultsScreen) Title() string {
	return "Past Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading results...")
	}
	if len(s.results) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No results yet. Finish a module to record one.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, r := range s.results {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %-22s  %-20s  %d/%d  %3d%%",
			prefix,
			r.RecordedAt.Local().Format("Jan 02, 2006 15:04"),
			truncate(r.Name, 22),
			bank.Modality(r.Modality).DisplayName(),
			r.Correct, r.Total, r.Percent)
		if r.Total > 0 && r.Percent >= progress.PassThreshold {
			line += "  ✓"
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render(details(r))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func details(r store.Result) string {
	return fmt.Sprintf("    %s · %s · %s · %s\n    experience %s · training %s · reads ECGs %s",
		r.Country, r.University, r.AcademicLevel, r.Sex,
		r.Experience, r.FormalTraining, r.ClinicalFrequency)
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}
