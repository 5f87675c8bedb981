package exercise

import (
	"slices"
	"strings"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/progress"
)

// Field describes one input of the diagnosis form. Fields without
// options are free text.
type Field struct {
	Key     string
	Label   string
	Options []string
}

// FreeText reports whether the field takes free text.
func (f Field) FreeText() bool { return len(f.Options) == 0 }

// Form field keys.
const (
	FieldRhythm        = "rhythm"
	FieldRate          = "rate"
	FieldAxis          = "axis"
	FieldPR            = "pr"
	FieldQRS           = "qrs"
	FieldST            = "st"
	FieldPWaves        = "p_waves"
	FieldDescription   = "description"
	FieldJustification = "justification"
)

// FormFields lists the diagnosis form in display order. All are required.
var FormFields = []Field{
	{Key: FieldRhythm, Label: "Rhythm", Options: []string{"Sinus", "Non-sinus", "Indeterminate"}},
	{Key: FieldRate, Label: "Heart rate", Options: []string{"<60 (bradycardia)", "60-100 (normal)", ">100 (tachycardia)"}},
	{Key: FieldAxis, Label: "Axis", Options: []string{"Normal", "Left deviation", "Right deviation", "Indeterminate"}},
	{Key: FieldPR, Label: "PR interval", Options: []string{"Normal", "Prolonged", "Short", "Not measurable"}},
	{Key: FieldQRS, Label: "QRS complex", Options: []string{"Narrow", "Wide"}},
	{Key: FieldST, Label: "ST segment", Options: []string{"Normal", "Elevated", "Depressed", "Not assessable"}},
	{Key: FieldPWaves, Label: "P waves", Options: []string{"Present", "Absent", "Abnormal"}},
	{Key: FieldDescription, Label: "Description"},
	{Key: FieldJustification, Label: "Justification"},
}

// Findings are the learner's answers keyed by field key.
type Findings map[string]string

// Validate rejects a form with any missing or unknown value.
func (f Findings) Validate() error {
	var missing []string
	for _, field := range FormFields {
		v := strings.TrimSpace(f[field.Key])
		if v == "" {
			missing = append(missing, field.Label)
			continue
		}
		if !field.FreeText() && !slices.Contains(field.Options, v) {
			missing = append(missing, field.Label)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing, Msg: "complete every field"}
	}
	return nil
}

// DiagnosisPhase is the position of an open-diagnosis question.
type DiagnosisPhase int

const (
	DiagnosisInput DiagnosisPhase = iota
	DiagnosisGrading
	DiagnosisGraded
)

// Diagnosis is the single-phase state of an open-diagnosis question:
// input → grading → graded, with grading able to fall back to input when
// the evaluation fails.
type Diagnosis struct {
	Question *bank.Question

	phase    DiagnosisPhase
	findings Findings
	feedback string
	correct  bool
}

// NewDiagnosis returns the input state for q.
func NewDiagnosis(q *bank.Question) *Diagnosis {
	return &Diagnosis{Question: q}
}

// Phase returns the current phase.
func (d *Diagnosis) Phase() DiagnosisPhase { return d.phase }

// Submit validates the form and starts grading.
func (d *Diagnosis) Submit(f Findings) error {
	switch d.phase {
	case DiagnosisGraded:
		return ErrLocked
	case DiagnosisGrading:
		return ErrGrading
	}
	if err := f.Validate(); err != nil {
		return err
	}
	d.findings = make(Findings, len(f))
	for k, v := range f {
		d.findings[k] = strings.TrimSpace(v)
	}
	d.phase = DiagnosisGrading
	return nil
}

// Grade stores the evaluator's feedback and verdict.
func (d *Diagnosis) Grade(feedback string, correct bool) (progress.Outcome, error) {
	if d.phase != DiagnosisGrading {
		return progress.Outcome{}, ErrNotGrading
	}
	d.feedback = feedback
	d.correct = correct
	d.phase = DiagnosisGraded
	return progress.Single(correct), nil
}

// Abort returns a failed evaluation to input so the learner can retry.
func (d *Diagnosis) Abort() {
	if d.phase == DiagnosisGrading {
		d.phase = DiagnosisInput
	}
}

// Findings returns the submitted form.
func (d *Diagnosis) Findings() Findings { return d.findings }

// Feedback returns the evaluator's text.
func (d *Diagnosis) Feedback() string { return d.feedback }

// Correct reports the verdict.
func (d *Diagnosis) Correct() bool { return d.correct }
