package exercise

import (
	"strings"

	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/progress"
)

// Choice is the state of a multiple-choice question:
// unanswered → answered, with no retry.
type Choice struct {
	Question *bank.Question
	selected string
	answered bool
	correct  bool
}

// NewChoice returns the unanswered state for q.
func NewChoice(q *bank.Question) *Choice {
	return &Choice{Question: q}
}

// Submit grades the selected option label.
func (c *Choice) Submit(label string) (progress.Outcome, error) {
	if c.answered {
		return progress.Outcome{}, ErrLocked
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return progress.Outcome{}, &ValidationError{Msg: "select an option"}
	}
	if _, ok := c.Question.Options.Lookup(label); !ok {
		return progress.Outcome{}, &ValidationError{Fields: []string{label}, Msg: "unknown option"}
	}

	c.selected = label
	c.answered = true
	c.correct = label == c.Question.CorrectOption
	return progress.Single(c.correct), nil
}

// Answered reports whether the question was graded.
func (c *Choice) Answered() bool { return c.answered }

// Correct reports whether the graded answer was right.
func (c *Choice) Correct() bool { return c.correct }

// Selected returns the submitted label.
func (c *Choice) Selected() string { return c.selected }

// Explanation returns the explanation of the submitted option.
func (c *Choice) Explanation() string {
	opt, _ := c.Question.Options.Lookup(c.selected)
	return opt.Explanation
}
