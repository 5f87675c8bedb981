package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/aureus/cardiosim/internal/ui/theme"
)

// Smallest terminal the tracing and the diagnosis form fit in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one "key action" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Compact reports whether screens should drop decorations such as the
// large title art.
func Compact(width, height int) bool {
	return width < 100 || height < 30
}

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("The ECG view needs at least %d×%d.\nThis terminal is %d×%d.\n\nResize to continue.",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Body.Render(msg))
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader draws the app name on the left, the screen title in the
// middle and, once anything is graded, the running score on the right.
func RenderHeader(title string, correct, total int, width int) string {
	inner := max(width-4, 0)
	third := inner / 3

	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" ♥ CardioSim")
	score := ""
	if total > 0 {
		score = lipgloss.NewStyle().Foreground(theme.Monitor).Render(fmt.Sprintf("%d/%d correct ", correct, total))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(third, lipgloss.Left, brand),
		lipgloss.PlaceHorizontal(inner-2*third, lipgloss.Center, theme.Body.Render(title)),
		lipgloss.PlaceHorizontal(third, lipgloss.Right, score),
	)
	return bar.Width(width).Render(row)
}

// RenderFooter lists key hints separated by dots.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	items := make([]string, len(hints))
	for i, h := range hints {
		items[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar.Width(width).Render(" " + strings.Join(items, desc.Render("  ·  ")))
}

// RenderFrame stacks header, content and footer, giving the content all
// rows the bars leave over.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).MaxHeight(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
