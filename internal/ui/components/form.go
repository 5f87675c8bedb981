package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aureus/cardiosim/internal/ui/theme"
)

// FieldKind selects how a form field takes input.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldSelect
	FieldToggle
)

// FormField is one row of a Form.
type FormField struct {
	Key   string
	Label string
	Kind  FieldKind

	Input    TextInput
	Selector Selector
	Checked  bool
}

// TextField returns a free-text field.
func TextField(key, label, placeholder string, limit int) FormField {
	in := NewTextInput(placeholder, limit, nil)
	return FormField{Key: key, Label: label, Kind: FieldText, Input: in}
}

// SelectField returns a choice field.
func SelectField(key, label string, options []string) FormField {
	return FormField{Key: key, Label: label, Kind: FieldSelect, Selector: NewSelector(label, options)}
}

// ToggleField returns a yes/no checkbox.
func ToggleField(key, label string) FormField {
	return FormField{Key: key, Label: label, Kind: FieldToggle}
}

// Value returns the field's current value. Toggles report "yes" or "".
func (f FormField) Value() string {
	switch f.Kind {
	case FieldSelect:
		return f.Selector.Value()
	case FieldToggle:
		if f.Checked {
			return "yes"
		}
		return ""
	default:
		return f.Input.Value()
	}
}

// Form is a vertical list of fields with one focused at a time.
// Tab and the arrow keys move focus; left/right cycle choices; space
// toggles checkboxes. Enter is left to the owning screen.
type Form struct {
	Fields []FormField
	Focus  int
}

// NewForm creates a form focused on its first field.
func NewForm(fields ...FormField) Form {
	f := Form{Fields: fields}
	f.focus(0)
	return f
}

func (f *Form) focus(i int) tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	if cur := &f.Fields[f.Focus]; cur.Kind == FieldText {
		cur.Input.Blur()
	}
	f.Focus = (i + len(f.Fields)) % len(f.Fields)
	if next := &f.Fields[f.Focus]; next.Kind == FieldText {
		return next.Input.Focus()
	}
	return nil
}

// Update routes a message to the focused field.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if len(f.Fields) == 0 {
		return f, nil
	}
	cur := &f.Fields[f.Focus]

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if cur.Kind == FieldText {
			var cmd tea.Cmd
			cur.Input, cmd = cur.Input.Update(msg)
			return f, cmd
		}
		return f, nil
	}

	switch kmsg.String() {
	case "tab", "down":
		return f, f.focus(f.Focus + 1)
	case "shift+tab", "up":
		return f, f.focus(f.Focus - 1)
	}

	switch cur.Kind {
	case FieldSelect:
		switch kmsg.String() {
		case "right", "l", "space", " ":
			cur.Selector.Next()
		case "left", "h":
			cur.Selector.Prev()
		}
		return f, nil
	case FieldToggle:
		switch kmsg.String() {
		case "space", " ", "x", "y":
			cur.Checked = !cur.Checked
		}
		return f, nil
	}

	var cmd tea.Cmd
	cur.Input, cmd = cur.Input.Update(msg)
	return f, cmd
}

// Values returns every field's value keyed by field key.
func (f Form) Values() map[string]string {
	out := make(map[string]string, len(f.Fields))
	for _, field := range f.Fields {
		out[field.Key] = field.Value()
	}
	return out
}

// Field returns a pointer to the field with key, or nil.
func (f *Form) Field(key string) *FormField {
	for i := range f.Fields {
		if f.Fields[i].Key == key {
			return &f.Fields[i]
		}
	}
	return nil
}

// View renders the form, marking fields listed in invalid.
func (f Form) View(invalid []string) string {
	bad := make(map[string]bool, len(invalid))
	for _, label := range invalid {
		bad[label] = true
	}

	var b strings.Builder
	for i, field := range f.Fields {
		focused := i == f.Focus
		marker := "  "
		if focused {
			marker = lipgloss.NewStyle().Foreground(theme.Primary).Render("▸ ")
		}

		var line string
		switch field.Kind {
		case FieldSelect:
			line = field.Selector.View(focused)
		case FieldToggle:
			box := "[ ]"
			if field.Checked {
				box = "[x]"
			}
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if focused {
				style = style.Foreground(theme.Primary).Bold(true)
			}
			line = style.Render(box + " " + field.Label)
		default:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render(field.Label+": ") + field.Input.View()
		}
		if bad[field.Label] {
			line += lipgloss.NewStyle().Foreground(theme.Error).Render("  *")
		}
		b.WriteString(marker + line + "\n")
	}
	return b.String()
}
