package ai

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// RetryPolicy controls the fallback retry loop: exponential backoff
// with jitter under a wall-clock budget. AttemptTimeout bounds each
// individual call so a hung upstream cannot stall the turn.
type RetryPolicy struct {
	MaxAttempts    int
	InitialDelay   time.Duration
	Multiplier     float64
	MaxDelay       time.Duration
	Budget         time.Duration
	AttemptTimeout time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		InitialDelay:   1 * time.Second,
		Multiplier:     1.5,
		MaxDelay:       5 * time.Second,
		Budget:         60 * time.Second,
		AttemptTimeout: 30 * time.Second,
	}
}

var transientMarkers = []string{
	"503",
	"429",
	"500",
	"overloaded",
	"unavailable",
	"timeout",
	"deadline exceeded",
	"internal error",
}

// IsTransient reports whether an error is worth retrying. The Gemini
// SDK surfaces HTTP failures as formatted strings, so matching works
// on the message text.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// WithRetry runs fn up to MaxAttempts times, backing off between
// attempts. Non-transient errors abort immediately. The budget caps
// total wall-clock time so a student never waits on a dead upstream.
func WithRetry(ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) (string, error)) (string, error) {
	start := time.Now()
	delay := policy.InitialDelay

	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		result, err := runAttempt(ctx, policy.AttemptTimeout, fn)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !IsTransient(err) {
			return "", err
		}
		if attempt == policy.MaxAttempts {
			break
		}

		// Up to 50% jitter keeps simultaneous clients from retrying in
		// lockstep.
		wait := delay + time.Duration(rand.Float64()*0.5*float64(delay))
		if time.Since(start)+wait > policy.Budget {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * policy.Multiplier)
		if delay > policy.MaxDelay {
			delay = policy.MaxDelay
		}
	}

	return "", fmt.Errorf("all %d attempts failed: %w", policy.MaxAttempts, lastErr)
}

// runAttempt bounds one call to the attempt timeout. The call runs in
// its own goroutine so even a generator that ignores its context
// cannot hold the turn past the deadline.
func runAttempt(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (string, error)) (string, error) {
	if timeout <= 0 {
		return fn(ctx)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		result string
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := fn(attemptCtx)
		done <- outcome{result, err}
	}()

	select {
	case out := <-done:
		return out.result, out.err
	case <-attemptCtx.Done():
		return "", attemptCtx.Err()
	}
}
