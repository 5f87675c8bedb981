package router

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/aureus/cardiosim/internal/screen"
)

type fakeScreen struct {
	name  string
	inits int
	seen  []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd { f.inits++; return nil }

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.seen = append(f.seen, msg)
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

// titles lists the stack bottom to top.
func titles(r *Router) string {
	names := make([]string, len(r.stack))
	for i, s := range r.stack {
		names[i] = s.Title()
	}
	return strings.Join(names, ">")
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want string
	}{
		{"push", []tea.Msg{PushScreenMsg{&fakeScreen{name: "session"}}}, "welcome>session"},
		{"pop", []tea.Msg{PushScreenMsg{&fakeScreen{name: "session"}}, PopScreenMsg{}}, "welcome"},
		{"pop at root", []tea.Msg{PopScreenMsg{}, PopScreenMsg{}}, "welcome"},
		{"replace root", []tea.Msg{ReplaceScreenMsg{&fakeScreen{name: "consent"}}}, "consent"},
		{"replace top", []tea.Msg{
			PushScreenMsg{&fakeScreen{name: "session"}},
			ReplaceScreenMsg{&fakeScreen{name: "summary"}},
		}, "welcome>summary"},
		{"to root", []tea.Msg{
			PushScreenMsg{&fakeScreen{name: "session"}},
			PushScreenMsg{&fakeScreen{name: "summary"}},
			PopToRootMsg{},
		}, "welcome"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeScreen{name: "welcome"})
			for _, m := range tt.msgs {
				r.Update(m)
			}
			if got := titles(r); got != tt.want {
				t.Errorf("stack = %s, want %s", got, tt.want)
			}
			if r.Depth() != strings.Count(tt.want, ">")+1 {
				t.Errorf("Depth = %d", r.Depth())
			}
		})
	}
}

func TestInitRuns(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	session := &fakeScreen{name: "session"}
	r.Update(PushScreenMsg{session})
	summary := &fakeScreen{name: "summary"}
	r.Update(ReplaceScreenMsg{summary})
	if session.inits != 1 || summary.inits != 1 {
		t.Errorf("inits: session %d, summary %d; want 1 each", session.inits, summary.inits)
	}

	r.Update(PopScreenMsg{})
	if home.inits != 0 {
		t.Error("Pop re-initialized the revealed screen")
	}

	r.Update(PushScreenMsg{&fakeScreen{name: "results"}})
	r.Update(PopToRootMsg{})
	if home.inits != 1 {
		t.Errorf("home inits = %d after PopToRoot, want 1", home.inits)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)
	session := &fakeScreen{name: "session"}
	r.Push(session)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if len(session.seen) != 1 || len(home.seen) != 0 {
		t.Errorf("seen: session %d, home %d", len(session.seen), len(home.seen))
	}
	if r.View(80, 24) != "session" {
		t.Errorf("View = %q", r.View(80, 24))
	}
}
