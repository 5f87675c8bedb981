package sink

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// SheetsConfig locates the target spreadsheet.
type SheetsConfig struct {
	SpreadsheetID string
	Range         string // A1 notation of the table to append to, e.g. "Results!A1"
}

// Sheets appends records as rows of a Google Sheets table.
type Sheets struct {
	cfg    SheetsConfig
	values *sheets.SpreadsheetsValuesService
}

// NewSheets creates a sink that authenticates as the service account in
// credentialsFile.
func NewSheets(ctx context.Context, cfg SheetsConfig, credentialsFile string) (*Sheets, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read sheets credentials: %w", err)
	}
	jwt, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse sheets credentials: %w", err)
	}
	return NewSheetsWithOptions(ctx, cfg, option.WithTokenSource(jwt.TokenSource(ctx)))
}

// NewSheetsWithOptions creates a sink on a Sheets client built from opts,
// e.g. a preauthorized HTTP client and a test endpoint.
func NewSheetsWithOptions(ctx context.Context, cfg SheetsConfig, opts ...option.ClientOption) (*Sheets, error) {
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("spreadsheet id is required")
	}
	if cfg.Range == "" {
		cfg.Range = "Sheet1!A1"
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return &Sheets{cfg: cfg, values: svc.Spreadsheets.Values}, nil
}

func (s *Sheets) Name() string { return "sheets" }

// Append adds r below the last row of the configured table. Failures
// surface as *googleapi.Error when the API answered.
func (s *Sheets) Append(ctx context.Context, r Record) error {
	row := &sheets.ValueRange{Values: [][]any{Row(r)}}
	_, err := s.values.Append(s.cfg.SpreadsheetID, s.cfg.Range, row).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row to %s: %w", s.cfg.Range, err)
	}
	return nil
}

// Row lays out a record in the spreadsheet's column order.
func Row(r Record) []any {
	p := r.Participant
	return []any{
		r.Timestamp.Local().Format("2006-01-02 15:04:05"),
		r.SessionID,
		p.Name,
		p.DocumentID,
		p.Sex,
		p.Country,
		p.AcademicLevel,
		p.University,
		p.Experience,
		p.FormalTraining,
		p.ClinicalFrequency,
		r.Percent,
		r.Modality.DisplayName(),
		r.Total,
	}
}
