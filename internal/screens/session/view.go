package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/exercise"
	"github.com/aureus/cardiosim/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	q, ok := s.session.Current()
	if !ok {
		return renderError(width, "no question available in this module")
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(q, width))

	body := lipgloss.NewStyle().Width(min(width-8, 76))
	switch q.Modality {
	case bank.ModalityVisual:
		b.WriteString(body.Render(s.renderMeasurement(q)))
	case bank.ModalityChoice:
		b.WriteString(body.Render(s.renderChoice(q)))
	case bank.ModalityOpen:
		b.WriteString(body.Render(s.renderDiagnosis(q)))
	}

	if s.waiting {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Monitor).Render(
			spinnerFrames[s.spin%len(spinnerFrames)] + " Waiting for AI feedback..."))
	}
	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(min(width-8, 76)).Foreground(theme.Accent).Render(s.notice))
	}
	if s.locked() {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("[N] next  [S] same topic  [D] other topic  [C] continue  [F] finish"))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderInfoLine renders the topic and position above the question.
func (s *SessionScreen) renderInfoLine(q *bank.Question, width int) string {
	i, n := s.session.Position()
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("Topic: " + q.Topic)
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d/%d", i+1, n))

	line := left
	if pad := min(width-8, 76) - lipgloss.Width(left) - lipgloss.Width(right); pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(min(width-8, 76), 0)))
	return "\n" + line + "\n" + divider + "\n\n"
}

func label(text string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(text)
}

func (s *SessionScreen) renderMeasurement(q *bank.Question) string {
	m, ok := s.session.CurrentMeasurement()
	if !ok {
		return ""
	}
	var b strings.Builder

	instruction := q.Instruction
	if instruction == "" {
		instruction = "Measure the interval on the tracing."
	}
	b.WriteString(theme.Body.Bold(true).Render(instruction))
	b.WriteString("\n")
	if q.Image != "" {
		b.WriteString(label("Tracing: " + q.Image))
		b.WriteString("\n")
	}
	if q.HasZones() {
		b.WriteString(label("Place both marks on the same complex."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.hint != "" {
		b.WriteString(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Monitor).
			Padding(0, 1).
			Render("Feedback\n" + s.hint))
		b.WriteString("\n\n")
	}

	switch m.Phase() {
	case exercise.PhaseFirstAttempt, exercise.PhaseSecondAttempt:
		b.WriteString(label(fmt.Sprintf("Attempt %d of 2", m.Attempt())))
		b.WriteString("\n")
		b.WriteString("Marks (px): " + s.marks.View() + "\n")
		b.WriteString("Value (ms): " + s.value.View())
	case exercise.PhaseNeedsRationale, exercise.PhaseAwaitingFeedback:
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("%d ms is outside the tolerance.", m.FirstValue())))
		b.WriteString("\n")
		b.WriteString(label("Explain how you measured before trying again."))
		b.WriteString("\n")
		b.WriteString("Rationale: " + s.rationale.View())
	case exercise.PhaseSolved:
		b.WriteString(theme.Correct.Render(fmt.Sprintf("Correct! Expected %d ± %d ms.", q.CorrectMs, q.ToleranceMs)))
	case exercise.PhaseFailed:
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Not quite. You measured %d ms.", m.SecondValue())))
		if correct, img, ok := m.Reveal(); ok {
			b.WriteString("\n")
			b.WriteString(theme.Body.Render(fmt.Sprintf("Correct value: %d ms", correct)))
			if img != "" {
				b.WriteString("\n")
				b.WriteString(label("Annotated tracing: " + img))
			}
		}
	}
	return b.String()
}

func (s *SessionScreen) renderChoice(q *bank.Question) string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(q.Prompt))
	b.WriteString("\n\n")
	b.WriteString(s.mc.View())

	c, ok := s.session.CurrentChoice()
	if ok && c.Answered() {
		b.WriteString("\n")
		if c.Correct() {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Incorrect. The answer is " + q.CorrectOption + "."))
		}
		if exp := c.Explanation(); exp != "" {
			b.WriteString("\n")
			b.WriteString(theme.Body.Render(exp))
		}
	}
	return b.String()
}

func (s *SessionScreen) renderDiagnosis(q *bank.Question) string {
	d, ok := s.session.CurrentDiagnosis()
	if !ok {
		return ""
	}
	var b strings.Builder

	prompt := q.Prompt
	if prompt == "" {
		prompt = "Describe and interpret this ECG."
	}
	b.WriteString(theme.Body.Bold(true).Render(prompt))
	b.WriteString("\n")
	if q.Image != "" {
		b.WriteString(label("Tracing: " + q.Image))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if d.Phase() != exercise.DiagnosisGraded {
		b.WriteString(s.form.View(s.invalid))
		return b.String()
	}

	if d.Correct() {
		b.WriteString(theme.Correct.Render("Diagnosis correct"))
	} else {
		b.WriteString(theme.Incorrect.Render("Diagnosis incorrect"))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(d.Feedback()))
	b.WriteString("\n\n")
	b.WriteString(label("Expected: ") + theme.Body.Render(q.Diagnosis))
	for _, f := range q.KeyFeatures {
		b.WriteString("\n")
		b.WriteString(label("  • " + f))
	}
	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
