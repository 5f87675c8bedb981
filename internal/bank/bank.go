package bank

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

//go:embed data/sample.json
var sampleBank []byte

// SampleSource names the embedded bank in errors and listings.
const SampleSource = "embedded sample"

// LoadError reports a question bank that could not be loaded.
// It is fatal at startup.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load question bank %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ErrNoImage is returned by ReadImage for questions without a readable image.
var ErrNoImage = errors.New("question has no image")

// Bank is the read-only catalog of exercises.
type Bank struct {
	Source         string
	Visual         []Question
	MultipleChoice []Question
	Open           []Question

	// dir resolves relative image paths. Empty for the embedded bank.
	dir string
}

type document struct {
	Visual         []Question `json:"visual"`
	MultipleChoice []Question `json:"multiple_choice"`
	Open           []Question `json:"open"`
}

// Load reads the bank at path. An empty path loads the embedded sample.
func Load(path string) (*Bank, error) {
	if path == "" {
		return Parse(sampleBank, SampleSource, "")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return Parse(data, path, filepath.Dir(path))
}

// Parse validates and decodes a bank document. dir is used to resolve
// image paths and may be empty.
func Parse(data []byte, source, dir string) (*Bank, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := validateDocument(raw); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	b := &Bank{
		Source:         source,
		Visual:         doc.Visual,
		MultipleChoice: doc.MultipleChoice,
		Open:           doc.Open,
		dir:            dir,
	}
	if err := b.normalize(); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return b, nil
}

// normalize fills modality and default topics and checks cross-field rules
// the schema can't express.
func (b *Bank) normalize() error {
	seen := make(map[string]Modality)
	check := func(q *Question, m Modality) error {
		q.Modality = m
		if prev, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicate question id %q (%s and %s)", q.ID, prev, m)
		}
		seen[q.ID] = m
		return nil
	}

	for i := range b.Visual {
		q := &b.Visual[i]
		if err := check(q, ModalityVisual); err != nil {
			return err
		}
		if q.Topic == "" {
			q.Topic = DefaultVisualTopic
		}
		for _, z := range q.ZonePairs {
			if z.XMin > z.XMax {
				return fmt.Errorf("question %q: zone x_min %.0f > x_max %.0f", q.ID, z.XMin, z.XMax)
			}
		}
	}

	for i := range b.MultipleChoice {
		q := &b.MultipleChoice[i]
		if err := check(q, ModalityChoice); err != nil {
			return err
		}
		if q.Topic == "" {
			q.Topic = DefaultChoiceTopic
		}
		if _, ok := q.Options.Lookup(q.CorrectOption); !ok {
			return fmt.Errorf("question %q: correct_answer %q is not one of its options", q.ID, q.CorrectOption)
		}
	}

	for i := range b.Open {
		q := &b.Open[i]
		if err := check(q, ModalityOpen); err != nil {
			return err
		}
		if q.Topic == "" {
			q.Topic = DefaultOpenTopic
		}
	}
	return nil
}

// List returns the questions of one modality in bank order.
func (b *Bank) List(m Modality) []Question {
	switch m {
	case ModalityVisual:
		return b.Visual
	case ModalityChoice:
		return b.MultipleChoice
	case ModalityOpen:
		return b.Open
	}
	return nil
}

// Count returns the total number of questions.
func (b *Bank) Count() int {
	return len(b.Visual) + len(b.MultipleChoice) + len(b.Open)
}

// Topics returns the distinct topics of a modality in first-seen order.
func (b *Bank) Topics(m Modality) []string {
	var out []string
	seen := make(map[string]bool)
	for _, q := range b.List(m) {
		if !seen[q.Topic] {
			seen[q.Topic] = true
			out = append(out, q.Topic)
		}
	}
	return out
}

// ReadImage loads the bytes and MIME type of an image referenced by the
// question, resolved relative to the bank file.
func (b *Bank) ReadImage(name string) ([]byte, string, error) {
	if name == "" || b.dir == "" {
		return nil, "", ErrNoImage
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(b.dir, name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read image %s: %w", name, err)
	}
	mt := mime.TypeByExtension(filepath.Ext(path))
	if mt == "" {
		mt = "image/png"
	}
	return data, mt, nil
}
