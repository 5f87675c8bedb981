// Package theme is the bedside-monitor palette: trace green and teal
// readouts on a near-black ward background, crimson for the brand.
package theme

import "charm.land/lipgloss/v2"

var (
	Primary   = lipgloss.Color("#E11D48")
	Secondary = lipgloss.Color("#22C55E") // trace
	Monitor   = lipgloss.Color("#2DD4BF") // numeric readouts
	Accent    = lipgloss.Color("#F59E0B")
	Highlight = lipgloss.Color("#FACC15")

	Success = Secondary
	Error   = lipgloss.Color("#F43F5E")

	Text    = lipgloss.Color("#F8FAFC")
	TextDim = lipgloss.Color("#94A3B8")
	Border  = lipgloss.Color("#334155")
	BgDark  = lipgloss.Color("#0B1220")
	BgCard  = lipgloss.Color("#1E293B")
)

var (
	Title = lipgloss.NewStyle().Foreground(Primary).Bold(true).Align(lipgloss.Center)
	Body  = lipgloss.NewStyle().Foreground(Text)
	Hint  = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	Correct   = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)
)
