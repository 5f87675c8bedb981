package exercise

import (
	"slices"
	"strings"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/progress"
)

// Phase is the position of a measurement question in its retry flow.
type Phase int

const (
	PhaseFirstAttempt Phase = iota
	PhaseNeedsRationale
	PhaseAwaitingFeedback
	PhaseSecondAttempt
	PhaseSolved
	PhaseFailed
)

var phaseNames = map[Phase]string{
	PhaseFirstAttempt:     "first-attempt",
	PhaseNeedsRationale:   "needs-rationale",
	PhaseAwaitingFeedback: "awaiting-feedback",
	PhaseSecondAttempt:    "second-attempt",
	PhaseSolved:           "solved",
	PhaseFailed:           "failed",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "unknown"
}

// Grade is the result of a numeric submission. Terminal outcomes go to
// the ledger; a failed first attempt does not.
type Grade struct {
	Outcome  progress.Outcome
	Terminal bool
}

// Measurement is the two-attempt state of a visual measurement question.
//
//	first-attempt ─ok→ solved
//	first-attempt ─miss→ needs-rationale → awaiting-feedback → second-attempt
//	second-attempt ─ok→ solved | ─miss→ failed
type Measurement struct {
	Question *bank.Question

	phase       Phase
	firstValue  int
	secondValue int
	rationale   string
	marks       []float64
	feedback    string
	unread      bool
}

// NewMeasurement returns the first-attempt state for q.
func NewMeasurement(q *bank.Question) *Measurement {
	return &Measurement{Question: q}
}

// Phase returns the current phase.
func (m *Measurement) Phase() Phase { return m.phase }

// Locked reports whether the question accepts no more measurements.
func (m *Measurement) Locked() bool {
	return m.phase == PhaseSolved || m.phase == PhaseFailed
}

// Attempt returns the attempt number the next submission counts as.
func (m *Measurement) Attempt() int {
	if m.phase == PhaseFirstAttempt {
		return 1
	}
	return 2
}

// Within reports whether value is inside the tolerance, bounds included.
func (m *Measurement) Within(value int) bool {
	d := value - m.Question.CorrectMs
	if d < 0 {
		d = -d
	}
	return d <= m.Question.ToleranceMs
}

// Submit grades a measured value in milliseconds. marks holds the x
// positions of the learner's two marks; it is only checked when the
// question declares valid zones.
func (m *Measurement) Submit(value int, marks []float64) (Grade, error) {
	switch m.phase {
	case PhaseSolved, PhaseFailed:
		return Grade{}, ErrLocked
	case PhaseNeedsRationale, PhaseAwaitingFeedback:
		return Grade{}, ErrRationaleRequired
	}
	if err := m.checkMarks(marks); err != nil {
		return Grade{}, err
	}
	if value < 0 {
		return Grade{}, &ValidationError{Fields: []string{"value"}, Msg: "measurement must be positive"}
	}

	ok := m.Within(value)
	if m.phase == PhaseFirstAttempt {
		m.firstValue = value
		if ok {
			m.phase = PhaseSolved
			return Grade{Outcome: progress.OnAttempt(1, true), Terminal: true}, nil
		}
		m.phase = PhaseNeedsRationale
		return Grade{Outcome: progress.OnAttempt(1, false)}, nil
	}

	m.secondValue = value
	if ok {
		m.phase = PhaseSolved
	} else {
		m.phase = PhaseFailed
	}
	return Grade{Outcome: progress.OnAttempt(2, ok), Terminal: true}, nil
}

// checkMarks enforces that both marks fall in the same valid zone.
func (m *Measurement) checkMarks(marks []float64) error {
	if !m.Question.HasZones() {
		return nil
	}
	if len(marks) != 2 {
		return &ValidationError{Fields: []string{"marks"}, Msg: "place exactly two marks on the tracing"}
	}
	for _, z := range m.Question.ZonePairs {
		if z.Contains(marks[0]) && z.Contains(marks[1]) {
			return nil
		}
	}
	return &ValidationError{Fields: []string{"marks"}, Msg: "both marks must sit on the same complex"}
}

// SubmitRationale records the learner's explanation of a missed first
// attempt together with the marks they placed, which the hint request
// draws on the tracing. The caller then fetches feedback and hands it to
// ReceiveFeedback.
func (m *Measurement) SubmitRationale(text string, marks []float64) error {
	switch m.phase {
	case PhaseSolved, PhaseFailed:
		return ErrLocked
	case PhaseNeedsRationale:
	default:
		return ErrNoRationaleNeeded
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return &ValidationError{Fields: []string{"rationale"}, Msg: "explain how you measured"}
	}
	m.rationale = text
	m.marks = slices.Clone(marks)
	m.phase = PhaseAwaitingFeedback
	return nil
}

// ReceiveFeedback stores the hint for the second attempt and unlocks it.
func (m *Measurement) ReceiveFeedback(text string) error {
	if m.phase != PhaseAwaitingFeedback {
		return ErrNotAwaitingFeedback
	}
	m.feedback = text
	m.unread = true
	m.phase = PhaseSecondAttempt
	return nil
}

// TakeFeedback returns the pending hint once; later calls report false.
func (m *Measurement) TakeFeedback() (string, bool) {
	if !m.unread {
		return "", false
	}
	m.unread = false
	return m.feedback, true
}

// FirstValue returns the first submitted measurement.
func (m *Measurement) FirstValue() int { return m.firstValue }

// SecondValue returns the second submitted measurement.
func (m *Measurement) SecondValue() int { return m.secondValue }

// Rationale returns the learner's explanation.
func (m *Measurement) Rationale() string { return m.rationale }

// Marks returns the x positions stored with the rationale.
func (m *Measurement) Marks() []float64 { return m.marks }

// Reveal returns the correct value and annotated image after a failed
// second attempt.
func (m *Measurement) Reveal() (correctMs int, image string, ok bool) {
	if m.phase != PhaseFailed {
		return 0, "", false
	}
	return m.Question.CorrectMs, m.Question.CorrectedImage, true
}
