package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMultiChoice_LetterShortcut(t *testing.T) {
	mc := NewMultiChoice([]string{"60 bpm", "100 bpm", "150 bpm"})

	mc, done := mc.Update(key('b'))
	if !done {
		t.Fatal("letter key should confirm")
	}
	if mc.Value() != "100 bpm" {
		t.Errorf("Value() = %q, want 100 bpm", mc.Value())
	}

	mc, done = mc.Update(key('z'))
	if done {
		t.Error("letter beyond the options should be ignored")
	}
}

func TestMultiChoice_ArrowsThenEnter(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b"})
	mc, _ = mc.Update(special(tea.KeyDown))
	mc, _ = mc.Update(special(tea.KeyDown))
	if mc.Selected != 1 {
		t.Errorf("Selected = %d, want 1 (clamped)", mc.Selected)
	}
	_, done := mc.Update(special(tea.KeyEnter))
	if !done {
		t.Error("enter should confirm")
	}
}

func TestMultiChoice_GradedIsFrozen(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b"})
	mc.MarkGraded("b")
	if mc.Correct != 1 || mc.Chosen != 0 {
		t.Errorf("Correct, Chosen = %d, %d; want 1, 0", mc.Correct, mc.Chosen)
	}
	if _, done := mc.Update(key('a')); done {
		t.Error("graded selector should ignore input")
	}
}

func TestSelector_Cycles(t *testing.T) {
	s := NewSelector("Sex", []string{"F", "M"})
	if s.Value() != "" {
		t.Errorf("initial Value() = %q, want empty", s.Value())
	}
	s.Next()
	s.Next()
	s.Next()
	if s.Value() != "F" {
		t.Errorf("Value() = %q, want F after wrap", s.Value())
	}
	s.Prev()
	if s.Value() != "M" {
		t.Errorf("Value() = %q, want M", s.Value())
	}
}

func TestForm_FocusAndValues(t *testing.T) {
	f := NewForm(
		TextField("name", "Name", "", 40),
		SelectField("level", "Level", []string{"Intern", "Resident"}),
		ToggleField("consent", "I agree"),
	)

	f, _ = f.Update(key('A'))
	f, _ = f.Update(key('n'))
	f, _ = f.Update(special(tea.KeyTab))
	f, _ = f.Update(special(tea.KeyRight))
	f, _ = f.Update(special(tea.KeyRight))
	f, _ = f.Update(special(tea.KeyDown))
	f, _ = f.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})

	v := f.Values()
	if v["name"] != "An" {
		t.Errorf("name = %q, want An", v["name"])
	}
	if v["level"] != "Resident" {
		t.Errorf("level = %q, want Resident", v["level"])
	}
	if v["consent"] != "yes" {
		t.Errorf("consent = %q, want yes", v["consent"])
	}

	f, _ = f.Update(special(tea.KeyDown))
	if f.Focus != 0 {
		t.Errorf("Focus = %d, want 0 after wrap", f.Focus)
	}
}

func TestProgressBar_Clamps(t *testing.T) {
	view := NewProgressBar("", 1.5, false, 10).View()
	if strings.Count(view, "█") != 10 {
		t.Errorf("overfull bar = %q, want 10 filled cells", view)
	}
	view = NewProgressBar("", -1, false, 10).View()
	if strings.Contains(view, "█") {
		t.Errorf("negative bar = %q, want no filled cells", view)
	}
}

func TestProgressBar_PassMark(t *testing.T) {
	bar := NewProgressBar("Rhythm", 0.5, true, 30)
	bar.Mark = 0.7
	view := bar.View()
	for _, want := range []string{"Rhythm", "│", " 50%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view = %q, missing %q", view, want)
		}
	}
}

func TestTextInput_Accept(t *testing.T) {
	in := NewTextInput("ms", 5, Digits)
	in.Focus()
	for _, r := range "1a6-0" {
		in, _ = in.Update(key(r))
	}
	if in.Value() != "160" {
		t.Errorf("Value() = %q, want 160", in.Value())
	}
	n, err := in.NumericValue()
	if err != nil || n != 160 {
		t.Errorf("NumericValue() = %d, %v", n, err)
	}

	marks := NewTextInput("x1 x2", 24, Coordinates)
	marks.Focus()
	for _, r := range "12.5, 40x" {
		marks, _ = marks.Update(key(r))
	}
	if marks.Value() != "12.5, 40" {
		t.Errorf("marks Value() = %q", marks.Value())
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var ran string
	act := func(name string) func() tea.Cmd {
		return func() tea.Cmd { ran = name; return nil }
	}
	m := NewMenu([]MenuItem{
		{Label: "LOCKED", Disabled: true},
		{Label: "PRACTICE", Action: act("practice")},
		{Label: "HISTORY", Disabled: true},
		{Label: "EXIT", Action: act("exit")},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item 1", m.Selected)
	}

	m, _ = m.Update(special(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("up past a disabled head moved cursor to %d", m.Selected)
	}
	m, _ = m.Update(key('j'))
	if m.Selected != 3 {
		t.Errorf("down = %d, want 3", m.Selected)
	}
	m.Update(special(tea.KeyEnter))
	if ran != "exit" {
		t.Errorf("enter ran %q, want exit", ran)
	}
}

func TestMenu_DigitShortcut(t *testing.T) {
	var ran string
	m := NewMenu([]MenuItem{
		{Label: "A", Action: func() tea.Cmd { ran = "a"; return nil }},
		{Label: "B", Disabled: true},
		{Label: "C", Action: func() tea.Cmd { ran = "c"; return nil }},
	})

	m, _ = m.Update(key('2'))
	if ran != "" || m.Selected != 0 {
		t.Errorf("disabled shortcut ran %q, cursor %d", ran, m.Selected)
	}
	m, _ = m.Update(key('3'))
	if ran != "c" || m.Selected != 2 {
		t.Errorf("shortcut 3 ran %q, cursor %d", ran, m.Selected)
	}
	if !strings.Contains(m.CompactView(), "▸ C") {
		t.Errorf("compact view does not mark C:\n%s", m.CompactView())
	}
}
