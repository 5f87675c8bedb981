package progress

// Outcome is the normalized result of a graded question. Attempt is 1 or 2
// for two-phase exercises and 0 for single-phase ones.
type Outcome struct {
	Correct bool
	Attempt int
}

// Single returns the outcome of a single-phase exercise.
func Single(correct bool) Outcome {
	return Outcome{Correct: correct}
}

// OnAttempt returns the outcome of attempt n of a two-phase exercise.
func OnAttempt(n int, correct bool) Outcome {
	return Outcome{Correct: correct, Attempt: n}
}

// Tag returns the display tag for the outcome.
func (o Outcome) Tag() string {
	switch o.Attempt {
	case 1:
		if o.Correct {
			return "correct-first-try"
		}
		return "failed-first-try"
	case 2:
		if o.Correct {
			return "correct-second-try"
		}
		return "failed-second-try"
	default:
		if o.Correct {
			return "correct"
		}
		return "fail"
	}
}
