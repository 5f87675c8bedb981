package bank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmbeddedSample(t *testing.T) {
	b, err := Load("")
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if b.Source != SampleSource {
		t.Errorf("Source = %q, want %q", b.Source, SampleSource)
	}
	if len(b.Visual) == 0 || len(b.MultipleChoice) == 0 || len(b.Open) == 0 {
		t.Fatalf("expected every modality to be populated, got %d/%d/%d",
			len(b.Visual), len(b.MultipleChoice), len(b.Open))
	}
	for _, m := range Modalities {
		for _, q := range b.List(m) {
			if q.Modality != m {
				t.Errorf("question %s modality = %q, want %q", q.ID, q.Modality, m)
			}
			if q.Topic == "" {
				t.Errorf("question %s has empty topic", q.ID)
			}
		}
	}
}

func TestParse_DefaultTopics(t *testing.T) {
	doc := `{
		"visual": [{"id": "v1", "correct_ms": 160, "tolerance_ms": 20}],
		"multiple_choice": [{"id": "m1", "question": "Q?", "options": {"a": "x", "b": "y"}, "correct_answer": "a"}],
		"open": [{"id": "o1", "correct_diagnosis": "Sinus rhythm", "key_features": []}]
	}`
	b, err := Parse([]byte(doc), "test", "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := b.Visual[0].Topic; got != DefaultVisualTopic {
		t.Errorf("visual topic = %q, want %q", got, DefaultVisualTopic)
	}
	if got := b.MultipleChoice[0].Topic; got != DefaultChoiceTopic {
		t.Errorf("choice topic = %q, want %q", got, DefaultChoiceTopic)
	}
	if got := b.Open[0].Topic; got != DefaultOpenTopic {
		t.Errorf("open topic = %q, want %q", got, DefaultOpenTopic)
	}
}

func TestParse_OptionOrderPreserved(t *testing.T) {
	doc := `{
		"visual": [],
		"multiple_choice": [{"id": "m1", "question": "Q?", "options": {"zeta": "1", "alpha": "2", "mid": "3"}, "correct_answer": "mid"}],
		"open": []
	}`
	b, err := Parse([]byte(doc), "test", "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	labels := b.MultipleChoice[0].Options.Labels()
	want := []string{"zeta", "alpha", "mid"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
	opt, ok := b.MultipleChoice[0].Options.Lookup("alpha")
	if !ok || opt.Explanation != "2" {
		t.Errorf("Lookup(alpha) = %+v, %v", opt, ok)
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"visual": [`},
		{"missing key", `{"visual": [], "multiple_choice": []}`},
		{"visual missing tolerance", `{"visual": [{"id": "v1", "topic": "PR", "correct_ms": 160}], "multiple_choice": [], "open": []}`},
		{"negative tolerance", `{"visual": [{"id": "v1", "topic": "PR", "correct_ms": 160, "tolerance_ms": -1}], "multiple_choice": [], "open": []}`},
		{"choice answer not an option", `{"visual": [], "multiple_choice": [{"id": "m1", "question": "Q?", "options": {"a": "x", "b": "y"}, "correct_answer": "c"}], "open": []}`},
		{"duplicate id", `{"visual": [{"id": "x", "topic": "PR", "correct_ms": 1, "tolerance_ms": 1}], "multiple_choice": [], "open": [{"id": "x", "correct_diagnosis": "d", "key_features": []}]}`},
		{"inverted zone", `{"visual": [{"id": "v1", "topic": "PR", "correct_ms": 1, "tolerance_ms": 1, "valid_zone_pairs": [{"x_min": 10, "x_max": 5}]}], "multiple_choice": [], "open": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), "test", "")
			if err == nil {
				t.Fatal("expected error")
			}
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("expected *LoadError, got %T", err)
			}
			if le.Source != "test" {
				t.Errorf("Source = %q, want %q", le.Source, "test")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestTopics_FirstSeenOrder(t *testing.T) {
	b, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	topics := b.Topics(ModalityVisual)
	want := []string{"PR interval", "QRS duration", "QT interval"}
	if len(topics) != len(want) {
		t.Fatalf("Topics = %v, want %v", topics, want)
	}
	for i := range want {
		if topics[i] != want[i] {
			t.Errorf("Topics[%d] = %q, want %q", i, topics[i], want[i])
		}
	}
}

func TestReadImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ecg.png"), []byte("png-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	b := &Bank{dir: dir}

	data, mt, err := b.ReadImage("ecg.png")
	if err != nil {
		t.Fatalf("ReadImage: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("data = %q", data)
	}
	if mt != "image/png" {
		t.Errorf("mime = %q, want image/png", mt)
	}

	embedded, _ := Load("")
	if _, _, err := embedded.ReadImage("images/pr_normal.png"); !errors.Is(err, ErrNoImage) {
		t.Errorf("embedded ReadImage err = %v, want ErrNoImage", err)
	}
}

func TestZonePair_Contains(t *testing.T) {
	z := ZonePair{XMin: 10, XMax: 20}
	cases := map[float64]bool{9.9: false, 10: true, 15: true, 20: true, 20.1: false}
	for x, want := range cases {
		if got := z.Contains(x); got != want {
			t.Errorf("Contains(%v) = %v, want %v", x, got, want)
		}
	}
}
