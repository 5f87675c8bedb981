package exercise

import (
	"errors"
	"strings"
)

var (
	// ErrLocked is returned for submissions on a question that is already
	// graded. Nothing changes.
	ErrLocked = errors.New("question already answered")

	// ErrRationaleRequired is returned for a second measurement before the
	// learner has explained the first one.
	ErrRationaleRequired = errors.New("explain your first measurement before trying again")

	// ErrNoRationaleNeeded is returned for a rationale outside the retry flow.
	ErrNoRationaleNeeded = errors.New("no explanation is requested for this question")

	// ErrNotAwaitingFeedback is returned when feedback arrives in the wrong phase.
	ErrNotAwaitingFeedback = errors.New("no feedback pending for this question")

	// ErrNotGrading is returned when a verdict arrives with no evaluation running.
	ErrNotGrading = errors.New("no evaluation in progress")

	// ErrGrading is returned for a resubmission while an evaluation is running.
	ErrGrading = errors.New("evaluation already in progress")
)

// ValidationError rejects a submission before any state change.
type ValidationError struct {
	Fields []string
	Msg    string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Msg
	}
	return e.Msg + ": " + strings.Join(e.Fields, ", ")
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
