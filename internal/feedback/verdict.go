package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/exercise"
	"github.com/aureus/cardiosim/internal/llm"
)

// Verdict is the graded result of a full diagnosis.
type Verdict struct {
	Correct bool
	Text    string
}

// verdictMarkers are the affirmative phrases the prose prompt asks the
// model to use. The Spanish forms match prompts from earlier releases.
var verdictMarkers = []string{
	"diagnosis correct",
	"diagnóstico correcto",
	"diagnostico correcto",
}

// InterpretVerdict decides a prose evaluation by looking for an
// affirmative marker, case-insensitively. A reply that phrases a correct
// verdict differently reads as incorrect.
func InterpretVerdict(text string) bool {
	lower := strings.ToLower(text)
	for _, m := range verdictMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// VerdictSchema is the structured verdict requested when Config.Structured is set.
var VerdictSchema = &llm.Schema{
	Name:        "diagnosis-verdict",
	Description: "Evaluation of a student's ECG interpretation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdict": map[string]any{
				"type": "string",
				"enum": []any{"correct", "incorrect"},
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Short second-person explanation of what the student got right and wrong",
			},
		},
		"required":             []any{"verdict", "feedback"},
		"additionalProperties": false,
	},
}

type verdictOutput struct {
	Verdict  string `json:"verdict"`
	Feedback string `json:"feedback"`
}

// EvaluateDiagnosis grades a submitted diagnosis form against the gold
// diagnosis. It returns ErrOffline without a provider.
func (a *Advisor) EvaluateDiagnosis(ctx context.Context, q *bank.Question, f exercise.Findings) (Verdict, error) {
	if !a.Online() {
		return Verdict{}, ErrOffline
	}
	ctx, cancel := a.withTimeout(llm.WithPurpose(ctx, llm.PurposeVerdict))
	defer cancel()

	userMsg, err := buildVerdictMessage(q, f)
	if err != nil {
		return Verdict{}, fmt.Errorf("build verdict prompt: %w", err)
	}

	req := llm.Request{
		System:      proseVerdictPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		MaxTokens:   a.cfg.VerdictMaxTokens,
		Temperature: a.cfg.Temperature,
	}
	if a.cfg.Structured {
		req.System = structuredVerdictPrompt
		req.Schema = VerdictSchema
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return Verdict{}, fmt.Errorf("diagnosis evaluation: %w", err)
	}

	if !a.cfg.Structured {
		text := strings.TrimSpace(resp.Text())
		if text == "" {
			return Verdict{}, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("empty evaluation")}
		}
		return Verdict{Correct: InterpretVerdict(text), Text: text}, nil
	}

	var out verdictOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Verdict{}, fmt.Errorf("parse verdict: %w", err)
	}
	return Verdict{Correct: out.Verdict == "correct", Text: strings.TrimSpace(out.Feedback)}, nil
}

const proseVerdictPrompt = `You are an expert cardiologist evaluating a student's ECG interpretation.

Instructions:
- Decide whether the student's diagnosis matches the reference diagnosis.
- Start your answer with exactly "Diagnosis correct!" or "Diagnosis incorrect!".
- Then explain briefly, in the second person, what the student got right and wrong.`

const structuredVerdictPrompt = `You are an expert cardiologist evaluating a student's ECG interpretation.

Instructions:
- Set verdict to "correct" when the student's diagnosis matches the reference diagnosis, otherwise "incorrect".
- In feedback, explain briefly, in the second person, what the student got right and wrong.`

type verdictView struct {
	Diagnosis   string
	KeyFeatures []string
	Structured  []fieldValue
	Description string
	Reasoning   string
}

type fieldValue struct {
	Label string
	Value string
}

var verdictUserTemplate = template.Must(template.New("verdict").Parse(`Reference diagnosis: {{.Diagnosis}}
Key features:
{{range .KeyFeatures}}- {{.}}
{{end}}
Student's structured reading:
{{range .Structured}}- {{.Label}}: {{.Value}}
{{end}}
Description: {{.Description}}
Justification: {{.Reasoning}}`))

func buildVerdictMessage(q *bank.Question, f exercise.Findings) (string, error) {
	view := verdictView{
		Diagnosis:   q.Diagnosis,
		KeyFeatures: q.KeyFeatures,
		Description: f[exercise.FieldDescription],
		Reasoning:   f[exercise.FieldJustification],
	}
	for _, field := range exercise.FormFields {
		if field.FreeText() {
			continue
		}
		view.Structured = append(view.Structured, fieldValue{Label: field.Label, Value: f[field.Key]})
	}

	var buf bytes.Buffer
	if err := verdictUserTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
