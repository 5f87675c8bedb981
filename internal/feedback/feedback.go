// Package feedback asks an LLM for teaching feedback on ECG answers: a
// hint after a missed measurement and a verdict on a full diagnosis.
package feedback

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/aureus/cardiosim/internal/llm"
)

// OfflineHint is shown instead of an AI hint when no provider is configured.
const OfflineHint = "AI feedback is not configured. Hint: check whether your marks sit on the onset of the P wave and the start of the QRS complex."

// ErrOffline is returned by evaluations that cannot run without a provider.
var ErrOffline = errors.New("no LLM provider configured")

// Config tunes the feedback requests.
type Config struct {
	HintMaxTokens    int
	VerdictMaxTokens int
	Temperature      float64

	// Timeout bounds one request including retries. Zero means no bound.
	Timeout time.Duration

	// Structured asks for a JSON verdict instead of sniffing the prose.
	Structured bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		HintMaxTokens:    400,
		VerdictMaxTokens: 600,
		Temperature:      0.3,
		Timeout:          60 * time.Second,
	}
}

// Advisor produces feedback through an LLM provider. A nil provider puts
// it in offline mode.
type Advisor struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

// NewAdvisor creates an Advisor.
func NewAdvisor(provider llm.Provider, cfg Config, logger *zap.Logger) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Advisor{provider: provider, cfg: cfg, logger: logger.Named("feedback")}
}

// Online reports whether a provider is configured.
func (a *Advisor) Online() bool {
	return a != nil && a.provider != nil
}

func (a *Advisor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.cfg.Timeout)
}
