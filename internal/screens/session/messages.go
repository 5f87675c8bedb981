package session

import (
	"time"

	"github.com/aureus/cardiosim/internal/feedback"
)

// hintReadyMsg carries the AI hint for a missed measurement.
type hintReadyMsg struct {
	QuestionID string
	Text       string
	Err        error
}

// verdictReadyMsg carries the evaluation of a submitted diagnosis.
type verdictReadyMsg struct {
	QuestionID string
	Verdict    feedback.Verdict
	Err        error
}

// spinnerTickMsg animates the waiting indicator.
type spinnerTickMsg time.Time
