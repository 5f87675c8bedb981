// Package sink delivers finished-session results to external records.
package sink

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/participant"
)

// Record is one finished practice session.
type Record struct {
	Timestamp   time.Time
	SessionID   string
	Participant participant.Participant
	Modality    bank.Modality
	Correct     int
	Total       int
	Percent     int
}

// Sink appends records somewhere outside the session.
type Sink interface {
	Append(ctx context.Context, r Record) error
	Name() string
}

// Nop discards records.
type Nop struct{}

func (Nop) Append(context.Context, Record) error { return nil }
func (Nop) Name() string                           { return "none" }

// Fanout appends to every sink and joins their errors.
type Fanout []Sink

func (f Fanout) Append(ctx context.Context, r Record) error {
	var errs []error
	for _, s := range f {
		if err := s.Append(ctx, r); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) Name() string { return "fanout" }
