package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRenderHeader_Score(t *testing.T) {
	h := RenderHeader("PR interval", 0, 0, 90)
	if strings.Contains(h, "correct") {
		t.Errorf("header shows a score before anything is graded: %q", h)
	}
	h = RenderHeader("PR interval", 3, 4, 90)
	for _, want := range []string{"CardioSim", "PR interval", "3/4 correct"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Home", 0, 0, 80)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}, {Key: "Ctrl+C", Description: "Quit"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
	if !strings.Contains(frame, "Esc") || !strings.Contains(frame, "Quit") {
		t.Error("footer hints missing")
	}
}

func TestSizeChecks(t *testing.T) {
	if !IsTooSmall(79, 30) || !IsTooSmall(120, 23) || IsTooSmall(80, 24) {
		t.Error("IsTooSmall thresholds wrong")
	}
	if !Compact(90, 40) || Compact(120, 40) {
		t.Error("Compact thresholds wrong")
	}
	if msg := RenderMinSizeMessage(60, 20); !strings.Contains(msg, "60×20") {
		t.Errorf("min size message = %q", msg)
	}
}
