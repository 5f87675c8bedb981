package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/aureus/cardiosim/internal/router"
	"github.com/aureus/cardiosim/internal/screen"
)

type consentStub struct{}

func (consentStub) Init() tea.Cmd                             { return nil }
func (c consentStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return c, nil }
func (consentStub) View(int, int) string                      { return "consent" }
func (consentStub) Title() string                             { return "Participant details" }

// splash returns a welcome screen and a counter of how often it built
// the next screen.
func splash() (*WelcomeScreen, *int) {
	built := new(int)
	return New(func() screen.Screen {
		*built++
		return consentStub{}
	}), built
}

func advance(w *WelcomeScreen, frames int) {
	for range frames {
		w.Update(frameMsg(time.Now()))
	}
}

func TestStages(t *testing.T) {
	w, _ := splash()
	tests := []struct {
		frames int
		want   stage
		banner bool
	}{
		{0, flatline, false},
		{4, flatline, false},
		{5, rhythm, false},
		{15, ready, true},
		{40, ready, true},
	}
	for _, tt := range tests {
		advance(w, tt.frames-w.frames)
		if got := w.stage(); got != tt.want {
			t.Errorf("frame %d: stage = %d, want %d", tt.frames, got, tt.want)
		}
		if got := strings.Contains(w.View(100, 30), "read the ECG"); got != tt.banner {
			t.Errorf("frame %d: banner shown = %v", tt.frames, got)
		}
	}
}

func TestSweep(t *testing.T) {
	w, _ := splash()
	advance(w, 6)
	before := w.sweep()
	advance(w, 1)
	if w.sweep() == before {
		t.Error("sweep did not move")
	}
	if n := len([]rune(before)); n != sweepWidth {
		t.Errorf("sweep width = %d", n)
	}
	if !strings.Contains(w.View(100, 30), w.sweep()) {
		t.Error("view does not show the sweep")
	}
}

func TestKeyReplacesOnce(t *testing.T) {
	w, built := splash()
	advance(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if cmd == nil {
		t.Fatal("key press should hand over")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok || msg.Screen == nil {
		t.Fatalf("cmd() = %#v, want ReplaceScreenMsg", msg)
	}

	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("second key press produced a command")
	}
	if _, cmd := w.Update(frameMsg(time.Now())); cmd != nil {
		t.Error("animation kept running after hand-over")
	}
	if *built != 1 {
		t.Errorf("next screen built %d times", *built)
	}
}

func TestWaitsForKey(t *testing.T) {
	w, built := splash()
	advance(w, 100)
	if *built != 0 {
		t.Error("handed over without a key press")
	}
}
