package ai

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   1.5,
		MaxDelay:     5 * time.Millisecond,
		Budget:       time.Second,
	}
}

func TestWithRetrySucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	result, err := WithRetry(context.Background(), fastPolicy(), func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("503 service unavailable")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Errorf("result = %q", result)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestWithRetryStopsAtMaxAttempts(t *testing.T) {
	calls := 0
	_, err := WithRetry(context.Background(), fastPolicy(), func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("model is overloaded")
	})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestWithRetryAbortsOnPermanentError(t *testing.T) {
	calls := 0
	permanent := errors.New("400 invalid argument")
	_, err := WithRetry(context.Background(), fastPolicy(), func(ctx context.Context) (string, error) {
		calls++
		return "", permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("want the permanent error back, got %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on permanent errors)", calls)
	}
}

func TestWithRetryRespectsBudget(t *testing.T) {
	policy := fastPolicy()
	policy.InitialDelay = 100 * time.Millisecond
	policy.Budget = 10 * time.Millisecond

	calls := 0
	_, err := WithRetry(context.Background(), policy, func(ctx context.Context) (string, error) {
		calls++
		return "", errors.New("timeout")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (budget leaves no room for a second attempt)", calls)
	}
}

func TestWithRetryBoundsHungAttempts(t *testing.T) {
	policy := fastPolicy()
	policy.MaxAttempts = 1
	policy.AttemptTimeout = 20 * time.Millisecond

	start := time.Now()
	_, err := WithRetry(context.Background(), policy, func(ctx context.Context) (string, error) {
		// Ignores its context entirely, like a stuck upstream.
		time.Sleep(2 * time.Second)
		return "too late", nil
	})
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected a deadline error from the hung attempt")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
	if elapsed > time.Second {
		t.Errorf("WithRetry blocked %v despite a 20ms attempt timeout", elapsed)
	}
}

func TestWithRetryTimesOutEachAttemptSeparately(t *testing.T) {
	policy := fastPolicy()
	policy.MaxAttempts = 2
	policy.AttemptTimeout = 10 * time.Millisecond

	calls := 0
	_, err := WithRetry(context.Background(), policy, func(ctx context.Context) (string, error) {
		calls++
		<-ctx.Done()
		return "", ctx.Err()
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2 (deadline errors are transient and retried)", calls)
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("503 Service Unavailable"), true},
		{errors.New("the model is OVERLOADED right now"), true},
		{errors.New("context deadline exceeded"), true},
		{errors.New("429 resource exhausted"), true},
		{errors.New("400 invalid request"), false},
		{errors.New("api key not valid"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsTransient(tt.err); got != tt.want {
			t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
