package llm

import "context"

// Purposes tag each request so the event log can tell hint traffic from
// diagnosis grading.
const (
	PurposeHint    = "measurement-hint"
	PurposeVerdict = "diagnosis-eval"
)

type purposeKey struct{}

// WithPurpose labels requests made with ctx.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, _ := ctx.Value(purposeKey{}).(string); p != "" {
		return p
	}
	return "unknown"
}
