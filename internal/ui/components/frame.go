package components

import (
	"charm.land/lipgloss/v2"

	"github.com/aureus/cardiosim/internal/ui/theme"
)

const (
	maxContentWidth = 72
	minContentWidth = 20
	// double border plus two columns of padding each side
	frameChrome = 6
)

// ContentWidth is the inner width shared by every box on a framed screen,
// so stacked boxes line up.
func ContentWidth(frameWidth int) int {
	return max(minContentWidth, min(maxContentWidth, frameWidth-frameChrome))
}

// MonitorFrame centers content inside a crimson double border that fills
// width x height.
func MonitorFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Panel is a rounded card whose outer width is cw.
func Panel(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Width(cw - 2).
		Render(content)
}

type buttonState int

const (
	buttonIdle buttonState = iota
	buttonSelected
	buttonDisabled
)

// button renders a fixed-width bordered label.
func button(label string, state buttonState, width int) string {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width).
		Align(lipgloss.Center)
	switch state {
	case buttonSelected:
		return s.Bold(true).
			Foreground(theme.BgDark).Background(theme.Highlight).
			BorderForeground(theme.Highlight).
			Render("▸ " + label)
	case buttonDisabled:
		s = s.Foreground(theme.TextDim)
	default:
		s = s.Foreground(theme.Text)
	}
	return s.BorderForeground(theme.Border).Render(label)
}
