package sink

import (
	"context"

	"github.com/aureus/cardiosim/internal/store"
)

// SQLite writes records to the local results table.
type SQLite struct {
	repo store.ResultRepo
}

// NewSQLite creates a sink over repo.
func NewSQLite(repo store.ResultRepo) *SQLite {
	return &SQLite{repo: repo}
}

func (s *SQLite) Name() string { return "sqlite" }

func (s *SQLite) Append(ctx context.Context, r Record) error {
	p := r.Participant
	_, err := s.repo.AppendResult(ctx, store.Result{
		SessionID:         r.SessionID,
		RecordedAt:        r.Timestamp,
		Name:              p.Name,
		DocumentID:        p.DocumentID,
		Sex:               p.Sex,
		Country:           p.Country,
		AcademicLevel:     p.AcademicLevel,
		University:        p.University,
		Experience:        p.Experience,
		FormalTraining:    p.FormalTraining,
		ClinicalFrequency: p.ClinicalFrequency,
		Modality:          string(r.Modality),
		Correct:           r.Correct,
		Total:             r.Total,
		Percent:           r.Percent,
	})
	return err
}
