package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures with jittered exponential
// backoff. A response that fails schema validation is retried once.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps p. At least one attempt is always made.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	cfg.MaxAttempts = max(cfg.MaxAttempts, 1)
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	reformatted := false
	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if attempt >= r.config.MaxAttempts || !r.retryable(err, &reformatted) {
			return nil, err
		}

		wait := r.backoff(attempt-1, err)
		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < wait {
			// The request would expire while sleeping.
			return nil, err
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

func (r *RetryProvider) retryable(err error, reformatted *bool) bool {
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *reformatted {
			return false
		}
		*reformatted = true
		return true
	}
	return Transient(err)
}

// backoff returns the wait before retry number n (zero-based).
func (r *RetryProvider) backoff(n int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := min(float64(r.config.InitialWait)*math.Pow(r.config.Multiplier, float64(n)), float64(r.config.MaxWait))
	wait *= 0.8 + 0.4*rand.Float64() // ±20%
	return time.Duration(max(wait, 0))
}
