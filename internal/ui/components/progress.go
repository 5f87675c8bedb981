package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/aureus/cardiosim/internal/ui/theme"
)

// ProgressBar is a one-line gauge drawn as a monitor strip. Mark, when
// positive, draws a tick at that fraction, e.g. the pass line.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0..1
	Mark        float64
	ShowPercent bool
	Width       int
	Fill        color.Color
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width, Fill: theme.Secondary}
}

func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(theme.Body.Render(p.Label))
		b.WriteString("  ")
	}
	suffix := ""
	if p.ShowPercent {
		suffix = fmt.Sprintf(" %3d%%", int(p.Percent*100+0.5))
	}

	n := max(p.Width-lipgloss.Width(b.String())-len(suffix), 4)
	filled := max(0, min(int(float64(n)*p.Percent), n))
	tick := -1
	if p.Mark > 0 && p.Mark < 1 {
		tick = int(float64(n) * p.Mark)
	}

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}
	on := lipgloss.NewStyle().Foreground(fill)
	off := lipgloss.NewStyle().Foreground(theme.Border)
	for i := range n {
		switch {
		case i == tick:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("│"))
		case i < filled:
			b.WriteString(on.Render("█"))
		default:
			b.WriteString(off.Render("░"))
		}
	}
	if suffix != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix))
	}
	return b.String()
}
