// Package participant holds the identity and research-consent details a
// learner gives before practicing.
package participant

import (
	"fmt"
	"slices"
	"strings"
)

// Choice lists for the consent form.
var (
	SexOptions = []string{"Female", "Male", "Other", "Prefer not to say"}

	AcademicLevels = []string{
		"Medical student, early years",
		"Medical student, clinical years",
		"Intern",
		"Resident",
		"Graduate or specialist",
	}

	ExperienceLevels = []string{
		"Beginner (none or very little)",
		"Intermediate (lectures, little practice)",
		"Advanced (regular clinical practice)",
	}

	TrainingOptions = []string{"Yes", "No"}

	ClinicalFrequencies = []string{"Never or almost never", "Monthly", "Weekly", "Daily"}
)

// Participant is one learner's identity and consent.
type Participant struct {
	Name              string
	DocumentID        string
	Sex               string
	Country           string
	University        string
	AcademicLevel     string
	Experience        string
	FormalTraining    string
	ClinicalFrequency string
	Consent           bool
}

// FormError lists the fields that are missing or invalid.
type FormError struct {
	Fields  []string
	Consent bool // consent was not given
}

func (e *FormError) Error() string {
	var parts []string
	if len(e.Fields) > 0 {
		parts = append(parts, "complete the required fields: "+strings.Join(e.Fields, ", "))
	}
	if e.Consent {
		parts = append(parts, "accept the data processing terms to continue")
	}
	return strings.Join(parts, "; ")
}

// Validate checks that every field is filled and consent was given.
func (p Participant) Validate() error {
	e := &FormError{}
	text := func(label, v string) {
		if strings.TrimSpace(v) == "" {
			e.Fields = append(e.Fields, label)
		}
	}
	choice := func(label, v string, options []string) {
		if !slices.Contains(options, v) {
			e.Fields = append(e.Fields, label)
		}
	}

	text("Full name", p.Name)
	text("Document ID", p.DocumentID)
	choice("Sex", p.Sex, SexOptions)
	text("Country", p.Country)
	text("University", p.University)
	choice("Academic level", p.AcademicLevel, AcademicLevels)
	choice("ECG experience", p.Experience, ExperienceLevels)
	choice("Formal ECG training", p.FormalTraining, TrainingOptions)
	choice("Clinical ECG frequency", p.ClinicalFrequency, ClinicalFrequencies)
	e.Consent = !p.Consent

	if len(e.Fields) > 0 || e.Consent {
		return e
	}
	return nil
}

// Trimmed returns p with surrounding whitespace removed from free-text fields.
func (p Participant) Trimmed() Participant {
	p.Name = strings.TrimSpace(p.Name)
	p.DocumentID = strings.TrimSpace(p.DocumentID)
	p.Country = strings.TrimSpace(p.Country)
	p.University = strings.TrimSpace(p.University)
	return p
}

func (p Participant) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.University)
}
