package participant

import (
	"errors"
	"slices"
	"testing"
)

func complete() Participant {
	return Participant{
		Name:              "Ana Gómez",
		DocumentID:        "1020304050",
		Sex:               "Female",
		Country:           "Colombia",
		University:        "Universidad de Antioquia",
		AcademicLevel:     "Intern",
		Experience:        ExperienceLevels[1],
		FormalTraining:    "Yes",
		ClinicalFrequency: "Weekly",
		Consent:           true,
	}
}

func TestValidate_Complete(t *testing.T) {
	if err := complete().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(p *Participant)
		wantFields  []string
		wantConsent bool
	}{
		{"blank name", func(p *Participant) { p.Name = "  " }, []string{"Full name"}, false},
		{"unknown sex", func(p *Participant) { p.Sex = "x" }, []string{"Sex"}, false},
		{"no level or frequency", func(p *Participant) { p.AcademicLevel = ""; p.ClinicalFrequency = "" }, []string{"Academic level", "Clinical ECG frequency"}, false},
		{"no consent", func(p *Participant) { p.Consent = false }, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := complete()
			tt.mutate(&p)
			err := p.Validate()
			var fe *FormError
			if !errors.As(err, &fe) {
				t.Fatalf("Validate() = %v, want *FormError", err)
			}
			if !slices.Equal(fe.Fields, tt.wantFields) {
				t.Errorf("Fields = %v, want %v", fe.Fields, tt.wantFields)
			}
			if fe.Consent != tt.wantConsent {
				t.Errorf("Consent = %v, want %v", fe.Consent, tt.wantConsent)
			}
		})
	}
}

func TestTrimmed(t *testing.T) {
	p := complete()
	p.Name = "  Ana  "
	if got := p.Trimmed().Name; got != "Ana" {
		t.Errorf("Trimmed().Name = %q, want Ana", got)
	}
}
