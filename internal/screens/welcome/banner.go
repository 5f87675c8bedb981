package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/aureus/cardiosim/internal/ui/theme"
)

const banner = `
  ██████╗ █████╗ ██████╗ ██████╗ ██╗ ██████╗ ███████╗██╗███╗   ███╗
 ██╔════╝██╔══██╗██╔══██╗██╔══██╗██║██╔═══██╗██╔════╝██║████╗ ████║
 ██║     ███████║██████╔╝██║  ██║██║██║   ██║███████╗██║██╔████╔██║
 ██║     ██╔══██║██╔══██╗██║  ██║██║██║   ██║╚════██║██║██║╚██╔╝██║
 ╚██████╗██║  ██║██║  ██║██████╔╝██║╚██████╔╝███████║██║██║ ╚═╝ ██║
  ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚═╝ ╚═════╝ ╚══════╝╚═╝╚═╝     ╚═╝`

// RenderBanner draws the block-letter name, or spaced capitals when the
// terminal is under 70 columns.
func RenderBanner(width int) string {
	if width < 70 {
		return theme.Title.Render("C A R D I O S I M")
	}
	return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(banner)
}
