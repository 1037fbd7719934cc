package providers

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimitedProviderSpacesCalls(t *testing.T) {
	inner := &flakeyProvider{}
	rl := NewRateLimitedProvider(inner, 1200, nil)

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := rl.FetchPlayByPlay(context.Background(), 1); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	// Burst of one, then 50ms per token.
	if elapsed := time.Since(start); elapsed < 90*time.Millisecond {
		t.Fatalf("expected calls to be spaced, elapsed %s", elapsed)
	}
	if inner.calls.Load() != 3 {
		t.Fatalf("expected inner provider called 3 times, got %d", inner.calls.Load())
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &flakeyProvider{}
	rl := NewRateLimitedProvider(inner, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchSchedule(ctx, "2024-01-01"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.calls.Load() != 0 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	rl := NewRateLimitedProvider(nil, 60, nil)

	if _, err := rl.FetchLanding(context.Background(), 1); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
