package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Modality identifies the kind of exercise a question belongs to.
type Modality string

const (
	ModalityVisual Modality = "visual-measurement"
	ModalityChoice Modality = "multiple-choice"
	ModalityOpen   Modality = "open-diagnostic"
)

// Modalities lists every modality in menu order.
var Modalities = []Modality{ModalityVisual, ModalityChoice, ModalityOpen}

// DisplayName returns a human-readable modality name.
func (m Modality) DisplayName() string {
	switch m {
	case ModalityVisual:
		return "Interval measurement"
	case ModalityChoice:
		return "Multiple choice"
	case ModalityOpen:
		return "Full diagnosis"
	default:
		return string(m)
	}
}

// Default topics for questions that don't declare one.
const (
	DefaultVisualTopic = "General"
	DefaultChoiceTopic = "ECG theory"
	DefaultOpenTopic   = "ECG diagnosis"
)

// ZonePair is a horizontal interval (in image pixels) that both
// measurement marks must fall into.
type ZonePair struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
}

// Contains reports whether x lies inside the zone, bounds included.
func (z ZonePair) Contains(x float64) bool {
	return x >= z.XMin && x <= z.XMax
}

// Option is one labelled answer of a multiple-choice question.
type Option struct {
	Label       string
	Explanation string
}

// Options keeps multiple-choice options in document order.
type Options []Option

// UnmarshalJSON decodes a label → explanation object, preserving key order.
func (o *Options) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("options: expected object, got %v", tok)
	}

	var out Options
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("options: expected string key, got %v", keyTok)
		}
		var explanation string
		if err := dec.Decode(&explanation); err != nil {
			return fmt.Errorf("options[%q]: %w", label, err)
		}
		out = append(out, Option{Label: label, Explanation: explanation})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*o = out
	return nil
}

// MarshalJSON encodes options back into an ordered object.
func (o Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, opt := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(opt.Label)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(opt.Explanation)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Lookup returns the option with the given label.
func (o Options) Lookup(label string) (Option, bool) {
	for _, opt := range o {
		if opt.Label == label {
			return opt, true
		}
	}
	return Option{}, false
}

// Labels returns the option labels in order.
func (o Options) Labels() []string {
	out := make([]string, len(o))
	for i, opt := range o {
		out[i] = opt.Label
	}
	return out
}

// Question is a single immutable exercise from the bank. Only the fields
// relevant to its Modality are populated.
type Question struct {
	ID       string   `json:"id"`
	Topic    string   `json:"topic,omitempty"`
	Modality Modality `json:"-"`
	Image    string   `json:"image,omitempty"`

	// Visual measurement.
	Instruction    string     `json:"instruction,omitempty"`
	CorrectMs      int        `json:"correct_ms,omitempty"`
	ToleranceMs    int        `json:"tolerance_ms,omitempty"`
	ZonePairs      []ZonePair `json:"valid_zone_pairs,omitempty"`
	CorrectedImage string     `json:"corrected_image,omitempty"`

	// Multiple choice and open diagnosis.
	Prompt        string  `json:"question,omitempty"`
	Options       Options `json:"options,omitempty"`
	CorrectOption string  `json:"correct_answer,omitempty"`

	// Open diagnosis.
	Diagnosis   string   `json:"correct_diagnosis,omitempty"`
	KeyFeatures []string `json:"key_features,omitempty"`
}

// HasZones reports whether the question constrains where marks may go.
func (q *Question) HasZones() bool {
	return len(q.ZonePairs) > 0
}
