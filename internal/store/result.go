package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aureus/cardiosim/ent"
	"github.com/aureus/cardiosim/ent/sessionresult"
)

// Result is one finished practice session as stored in the results table.
type Result struct {
	ID                int
	SessionID         string
	RecordedAt        time.Time
	Name              string
	DocumentID        string
	Sex               string
	Country           string
	AcademicLevel     string
	University        string
	Experience        string
	FormalTraining    string
	ClinicalFrequency string
	Modality          string
	Correct           int
	Total             int
	Percent           int
}

// ResultRepo persists session results.
type ResultRepo interface {
	AppendResult(ctx context.Context, r Result) (int, error)

	// ListResults returns results newest first; limit 0 means all.
	ListResults(ctx context.Context, limit int) ([]Result, error)
}

type resultRepo struct {
	client *ent.Client
}

func (r *resultRepo) AppendResult(ctx context.Context, res Result) (int, error) {
	c := r.client.SessionResult.Create().
		SetSessionID(res.SessionID).
		SetName(res.Name).
		SetDocumentID(res.DocumentID).
		SetSex(res.Sex).
		SetCountry(res.Country).
		SetAcademicLevel(res.AcademicLevel).
		SetUniversity(res.University).
		SetExperience(res.Experience).
		SetFormalTraining(res.FormalTraining).
		SetClinicalFrequency(res.ClinicalFrequency).
		SetModality(res.Modality).
		SetCorrect(res.Correct).
		SetTotal(res.Total).
		SetPercent(res.Percent)
	if !res.RecordedAt.IsZero() {
		c.SetTimestamp(res.RecordedAt)
	}

	row, err := c.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save result: %w", err)
	}
	return row.ID, nil
}

func (r *resultRepo) ListResults(ctx context.Context, limit int) ([]Result, error) {
	q := r.client.SessionResult.Query().
		Order(ent.Desc(sessionresult.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	out := make([]Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, Result{
			ID:                row.ID,
			SessionID:         row.SessionID,
			RecordedAt:        row.Timestamp,
			Name:              row.Name,
			DocumentID:        row.DocumentID,
			Sex:               row.Sex,
			Country:           row.Country,
			AcademicLevel:     row.AcademicLevel,
			University:        row.University,
			Experience:        row.Experience,
			FormalTraining:    row.FormalTraining,
			ClinicalFrequency: row.ClinicalFrequency,
			Modality:          row.Modality,
			Correct:           row.Correct,
			Total:             row.Total,
			Percent:           row.Percent,
		})
	}
	return out, nil
}
