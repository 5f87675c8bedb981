package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aureus/cardiosim/internal/llm"
)

// Describe turns a feedback error into a message for the learner.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var (
		rl     *llm.ErrRateLimit
		unav   *llm.ErrProviderUnavailable
		inv    *llm.ErrInvalidResponse
		maxTok *llm.ErrMaxTokensExceeded
		auth   *llm.ErrAuth
		rej    *llm.ErrRejected
	)
	switch {
	case errors.Is(err, ErrOffline):
		return "AI grading is not configured. Set an API key to grade full diagnoses, or skip this case."
	case errors.Is(err, context.DeadlineExceeded):
		return "The AI service took too long to answer. Try again."
	case errors.Is(err, context.Canceled):
		return "The request was cancelled."
	case errors.As(err, &rl):
		if rl.RetryAfter > 0 {
			return fmt.Sprintf("The AI service is rate limiting requests. Try again in %s.", rl.RetryAfter.Round(time.Second))
		}
		return "The AI service is rate limiting requests. Try again shortly."
	case errors.As(err, &auth):
		return "The AI service rejected the API key. Check your llm settings."
	case errors.As(err, &rej):
		return "The AI service could not process this case. Skip it or try another provider."
	case errors.As(err, &unav):
		return "The AI service is unavailable right now. Try again."
	case errors.As(err, &maxTok):
		return "The AI answer was cut off. Try again."
	case errors.As(err, &inv):
		return "The AI service returned an unusable answer. Try again."
	}
	return "Could not get AI feedback: " + err.Error()
}
