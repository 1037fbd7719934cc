package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/gboparai/nhl-gamebot-sub000/internal/metrics"
)

func noWait(rp DataProvider) DataProvider {
	r := rp.(*retryingProvider)
	r.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return r
}

func TestRetryingProviderRetriesAndSucceeds(t *testing.T) {
	fp := &flakeyProvider{failures: 2}
	rp := noWait(NewRetryingProvider(fp, slog.Default(), metrics.NewRecorder(), "flakey", 3, time.Millisecond))

	sched, err := rp.FetchSchedule(context.Background(), "2024-01-02")
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if len(sched.Games) != 1 || sched.Date != "2024-01-02" {
		t.Fatalf("unexpected schedule %+v", sched)
	}
	if fp.calls.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.calls.Load())
	}
}

func TestRetryingProviderStopsAfterMaxAttempts(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := noWait(NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, time.Millisecond))

	if _, err := rp.FetchPlayByPlay(context.Background(), 7); err == nil {
		t.Fatal("expected error after retries")
	}
	if fp.calls.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", fp.calls.Load())
	}
}

func TestRetryingProviderDoesNotRetryNotFound(t *testing.T) {
	fp := &flakeyProvider{failures: 5, err: fmt.Errorf("fetch landing: %w", ErrNotFound)}
	rp := noWait(NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Millisecond))

	_, err := rp.FetchLanding(context.Background(), 7)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if fp.calls.Load() != 1 {
		t.Fatalf("expected a single attempt, got %d", fp.calls.Load())
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rp.FetchBoxScore(ctx, 7)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestRetryingProviderRecordsRateLimitMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	fp := &flakeyProvider{failures: 1, err: &RateLimitError{Provider: "rl", StatusCode: 429, RetryAfter: time.Second}}
	rp := noWait(NewRetryingProvider(fp, nil, rec, "rl", 2, time.Millisecond))

	if _, err := rp.FetchSchedule(context.Background(), "2024-01-02"); err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if got := rec.RateLimitHits("rl"); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", got)
	}
	if got := rec.ProviderCalls("rl"); got != 2 {
		t.Fatalf("expected 2 provider calls, got %d", got)
	}
	if got := rec.ProviderErrors("rl"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastRetryAfter("rl"); got != time.Second {
		t.Fatalf("expected retry-after 1s, got %s", got)
	}
}

func TestNewRetryingProviderDefaults(t *testing.T) {
	rp := NewRetryingProvider(&flakeyProvider{}, nil, nil, "p", 0, 0).(*retryingProvider)
	if rp.maxAttempts != defaultRetryAttempts {
		t.Fatalf("expected default attempts, got %d", rp.maxAttempts)
	}
	b, ok := rp.newBackOff().(*backoff.ExponentialBackOff)
	if !ok || b.InitialInterval != defaultBackoff {
		t.Fatalf("expected exponential backoff with default interval, got %+v", b)
	}
}

func TestRetryingProviderStopsOnClientError(t *testing.T) {
	fp := &flakeyProvider{failures: 5, err: &StatusError{Provider: "nhlweb", StatusCode: http.StatusBadRequest}}
	rp := noWait(NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Millisecond))

	if _, err := rp.FetchBoxScore(context.Background(), 7); err == nil {
		t.Fatal("expected client error")
	}
	if fp.calls.Load() != 1 {
		t.Fatalf("expected a single attempt, got %d", fp.calls.Load())
	}
}
