package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/exercise"
	"github.com/aureus/cardiosim/internal/llm"
)

func prQuestion() *bank.Question {
	return &bank.Question{
		ID:          "v-pr-1",
		Topic:       "PR",
		Modality:    bank.ModalityVisual,
		Instruction: "measure the PR interval",
		CorrectMs:   160,
		ToleranceMs: 20,
	}
}

func whitePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestInterpretVerdict(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Diagnosis correct! You identified the irregular rhythm.", true},
		{"DIAGNOSIS CORRECT", true},
		{"¡Diagnóstico correcto! Bien hecho.", true},
		{"diagnostico correcto", true},
		{"Diagnosis incorrect! This is atrial flutter.", false},
		{"Your diagnosis is right.", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := InterpretVerdict(tt.text); got != tt.want {
			t.Errorf("InterpretVerdict(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestMeasurementHint_Offline(t *testing.T) {
	a := NewAdvisor(nil, DefaultConfig(), nil)
	if a.Online() {
		t.Fatal("Online() = true without a provider")
	}
	got, err := a.MeasurementHint(context.Background(), HintRequest{Question: prQuestion(), Measured: 240, Rationale: "from the P peak"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != OfflineHint {
		t.Errorf("hint = %q, want OfflineHint", got)
	}
}

func TestMeasurementHint_Prompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("  Start your first mark at the P wave onset.  ")})
	a := NewAdvisor(mock, DefaultConfig(), nil)

	got, err := a.MeasurementHint(context.Background(), HintRequest{
		Question:  prQuestion(),
		Measured:  240,
		Rationale: "I measured from the P peak to the R peak",
		Marks:     []float64{60, 120},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Start your first mark at the P wave onset." {
		t.Errorf("hint = %q", got)
	}

	req := mock.Calls[0]
	if req.System != hintSystemPrompt {
		t.Error("hint request did not use the hint system prompt")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"measure the PR interval", "240 ms", "±20 ms", "x = 60, 120 px", "P peak to the R peak"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if len(req.Messages[0].Images) != 0 {
		t.Error("no image was given but one was attached")
	}
}

func TestMeasurementHint_AttachesMarkedImage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Move your second mark earlier.")})
	a := NewAdvisor(mock, DefaultConfig(), nil)

	_, err := a.MeasurementHint(context.Background(), HintRequest{
		Question:  prQuestion(),
		Measured:  240,
		Rationale: "onset to peak",
		Marks:     []float64{10, 50},
		Image:     whitePNG(t, 80, 20),
		ImageMIME: "image/png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	imgs := mock.Calls[0].Messages[0].Images
	if len(imgs) != 1 || imgs[0].MIMEType != "image/png" {
		t.Fatalf("images = %+v, want one png", imgs)
	}
	decoded, err := png.Decode(bytes.NewReader(imgs[0].Data))
	if err != nil {
		t.Fatalf("decode attached image: %v", err)
	}
	r, g, _, _ := decoded.At(50, 5).RGBA()
	if r>>8 != 220 || g>>8 != 20 {
		t.Errorf("pixel at mark = (%d,%d), want the mark color", r>>8, g>>8)
	}
	r, _, _, _ = decoded.At(30, 5).RGBA()
	if r>>8 != 255 {
		t.Error("pixel between marks was painted")
	}
}

func TestMeasurementHint_UndecodableImageSentAsIs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("hint")})
	a := NewAdvisor(mock, DefaultConfig(), nil)

	raw := []byte("not an image")
	_, err := a.MeasurementHint(context.Background(), HintRequest{
		Question: prQuestion(), Measured: 1, Rationale: "x",
		Marks: []float64{1, 2}, Image: raw, ImageMIME: "image/jpeg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img := mock.Calls[0].Messages[0].Images[0]
	if img.MIMEType != "image/jpeg" || !bytes.Equal(img.Data, raw) {
		t.Errorf("image = %s %q, want the original bytes", img.MIMEType, img.Data)
	}
}

func TestMeasurementHint_Errors(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("503")}},
		llm.MockResponse{Content: json.RawMessage("   ")},
	)
	a := NewAdvisor(mock, DefaultConfig(), nil)
	req := HintRequest{Question: prQuestion(), Measured: 240, Rationale: "x"}

	_, err := a.MeasurementHint(context.Background(), req)
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("err = %v, want ErrProviderUnavailable", err)
	}

	_, err = a.MeasurementHint(context.Background(), req)
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("err = %v, want ErrInvalidResponse for a blank hint", err)
	}
}

func afFindings() exercise.Findings {
	return exercise.Findings{
		exercise.FieldRhythm:        "Non-sinus",
		exercise.FieldRate:          ">100 (tachycardia)",
		exercise.FieldAxis:          "Normal",
		exercise.FieldPR:            "Not measurable",
		exercise.FieldQRS:           "Narrow",
		exercise.FieldST:            "Normal",
		exercise.FieldPWaves:        "Absent",
		exercise.FieldDescription:   "Irregularly irregular narrow complex tachycardia",
		exercise.FieldJustification: "No P waves and variable RR",
	}
}

func afQuestion() *bank.Question {
	return &bank.Question{
		ID:          "open-1",
		Topic:       "Arrhythmia",
		Modality:    bank.ModalityOpen,
		Diagnosis:   "Atrial fibrillation with rapid ventricular response",
		KeyFeatures: []string{"Irregularly irregular RR", "Absent P waves"},
	}
}

func TestEvaluateDiagnosis_Prose(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Diagnosis correct! You spotted the absent P waves.")},
		llm.MockResponse{Content: json.RawMessage("Diagnosis incorrect! Look again at the RR intervals.")},
	)
	a := NewAdvisor(mock, DefaultConfig(), nil)

	v, err := a.EvaluateDiagnosis(context.Background(), afQuestion(), afFindings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Correct {
		t.Errorf("Correct = false for %q", v.Text)
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Reference diagnosis: Atrial fibrillation",
		"- Absent P waves",
		"- Rhythm: Non-sinus",
		"- P waves: Absent",
		"Justification: No P waves and variable RR",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if mock.Calls[0].Schema != nil {
		t.Error("prose mode should not request a schema")
	}

	v, err = a.EvaluateDiagnosis(context.Background(), afQuestion(), afFindings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Correct {
		t.Errorf("Correct = true for %q", v.Text)
	}
}

func TestEvaluateDiagnosis_Structured(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"verdict":"correct","feedback":"You read the rhythm well."}`),
	})
	cfg := DefaultConfig()
	cfg.Structured = true
	a := NewAdvisor(mock, cfg, nil)

	v, err := a.EvaluateDiagnosis(context.Background(), afQuestion(), afFindings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Correct || v.Text != "You read the rhythm well." {
		t.Errorf("verdict = %+v", v)
	}
	if mock.Calls[0].Schema != VerdictSchema {
		t.Error("structured mode did not request the verdict schema")
	}
}

func TestEvaluateDiagnosis_Offline(t *testing.T) {
	a := NewAdvisor(nil, DefaultConfig(), nil)
	_, err := a.EvaluateDiagnosis(context.Background(), afQuestion(), afFindings())
	if !errors.Is(err, ErrOffline) {
		t.Errorf("err = %v, want ErrOffline", err)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrOffline, "not configured"},
		{context.DeadlineExceeded, "too long"},
		{&llm.ErrRateLimit{RetryAfter: 3 * time.Second}, "Try again in 3s"},
		{&llm.ErrRateLimit{}, "Try again shortly"},
		{&llm.ErrProviderUnavailable{}, "unavailable"},
		{&llm.ErrMaxTokensExceeded{}, "cut off"},
		{&llm.ErrInvalidResponse{Err: errors.New("bad")}, "unusable"},
		{&llm.ErrAuth{Err: errors.New("401")}, "API key"},
		{&llm.ErrRejected{Status: 400, Err: errors.New("400")}, "could not process"},
		{errors.New("boom"), "Could not get AI feedback: boom"},
	}
	for _, tt := range tests {
		got := Describe(tt.err)
		if tt.want == "" && got != "" {
			t.Errorf("Describe(nil) = %q, want empty", got)
			continue
		}
		if !strings.Contains(got, tt.want) {
			t.Errorf("Describe(%v) = %q, want it to contain %q", tt.err, got, tt.want)
		}
	}
}

func TestMarkImage_OutOfBounds(t *testing.T) {
	if _, _, err := MarkImage(whitePNG(t, 40, 10), []float64{10, 400}); err == nil {
		t.Error("expected an error for a mark past the right edge")
	}
	if _, _, err := MarkImage(whitePNG(t, 40, 10), nil); err == nil {
		t.Error("expected an error with no marks")
	}
}
