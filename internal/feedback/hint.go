package feedback

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/llm"
)

// HintRequest describes a missed first measurement.
type HintRequest struct {
	Question  *bank.Question
	Measured  int
	Rationale string
	Marks     []float64

	// Image is the tracing the learner measured on; optional.
	Image     []byte
	ImageMIME string
}

// MeasurementHint asks for a hint that corrects the learner's method
// without giving away the value. Offline it returns OfflineHint.
func (a *Advisor) MeasurementHint(ctx context.Context, req HintRequest) (string, error) {
	if !a.Online() {
		return OfflineHint, nil
	}
	ctx, cancel := a.withTimeout(llm.WithPurpose(ctx, llm.PurposeHint))
	defer cancel()

	userMsg, err := buildHintMessage(req)
	if err != nil {
		return "", fmt.Errorf("build hint prompt: %w", err)
	}

	msg := llm.Message{Role: llm.RoleUser, Content: userMsg}
	if len(req.Image) > 0 {
		img, mime, err := MarkImage(req.Image, req.Marks)
		if err != nil {
			// The unmarked tracing still helps.
			a.logger.Debug("could not draw marks", zap.String("question", req.Question.ID), zap.Error(err))
			img, mime = req.Image, req.ImageMIME
		}
		msg.Images = []llm.Image{{MIMEType: mime, Data: img}}
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      hintSystemPrompt,
		Messages:    []llm.Message{msg},
		MaxTokens:   a.cfg.HintMaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("measurement hint: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("empty hint")}
	}
	return text, nil
}

const hintSystemPrompt = `You are an expert electrocardiography teacher reviewing a student's interval measurement.

Instructions:
- Address the student in the second person. Be concise and easy to follow.
- Never state the correct value or anything that lets the student compute it.
- Say what went wrong: mark placement, the measurement itself, or both.
- Give one short instruction on how to measure correctly.
- When an image is attached, the student's marks are drawn as red vertical lines. Be specific about where they sit in the ECG complex.`

var hintUserTemplate = template.Must(template.New("hint").Parse(`Task: {{.Question.Instruction}}
Student's measurement: {{.Measured}} ms
Correct value: {{.Question.CorrectMs}} ms (tolerance ±{{.Question.ToleranceMs}} ms). Do not reveal it.
{{if .Marks}}Marks at x = {{range $i, $m := .Marks}}{{if $i}}, {{end}}{{printf "%.0f" $m}}{{end}} px
{{end}}
Student's reasoning:
{{.Rationale}}`))

func buildHintMessage(req HintRequest) (string, error) {
	var buf bytes.Buffer
	if err := hintUserTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
