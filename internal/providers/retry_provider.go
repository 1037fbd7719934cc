package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
	"github.com/gboparai/nhl-gamebot-sub000/internal/logging"
	"github.com/gboparai/nhl-gamebot-sub000/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 5 * time.Second
)

// retryingProvider wraps a DataProvider with retry/backoff behavior and per-attempt metrics.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	recorder     *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/initial are <= 0, defaults are used.
// ErrNotFound is never retried.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		recorder:     recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) FetchSchedule(ctx context.Context, date string) (game.Schedule, error) {
	return withRetry(ctx, r, "schedule", func(ctx context.Context) (game.Schedule, error) {
		return r.inner.FetchSchedule(ctx, date)
	})
}

func (r *retryingProvider) FetchPlayByPlay(ctx context.Context, gameID int64) (game.LiveFeed, error) {
	return withRetry(ctx, r, "play-by-play", func(ctx context.Context) (game.LiveFeed, error) {
		return r.inner.FetchPlayByPlay(ctx, gameID)
	})
}

func (r *retryingProvider) FetchBoxScore(ctx context.Context, gameID int64) (game.BoxScore, error) {
	return withRetry(ctx, r, "boxscore", func(ctx context.Context) (game.BoxScore, error) {
		return r.inner.FetchBoxScore(ctx, gameID)
	})
}

func (r *retryingProvider) FetchLanding(ctx context.Context, gameID int64) (game.Landing, error) {
	return withRetry(ctx, r, "landing", func(ctx context.Context) (game.Landing, error) {
		return r.inner.FetchLanding(ctx, gameID)
	})
}

func withRetry[T any](ctx context.Context, r *retryingProvider, resource string, fn func(context.Context) (T, error)) (T, error) {
	attempt := 0
	op := func() (T, error) {
		attempt++
		start := time.Now()
		res, err := fn(ctx)
		r.recorder.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			return res, nil
		}
		if rlErr, ok := AsRateLimitError(err); ok {
			r.recorder.RecordRateLimit(r.providerName, rlErr.RetryAfter)
		}
		if permanent(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1)), ctx)
	notify := func(err error, delay time.Duration) {
		r.logWarn(ctx, "provider fetch retry",
			"resource", resource,
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay", delay,
			"err", err,
		)
	}

	res, err := backoff.RetryNotifyWithData(op, policy, notify)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, ctxErr
		}
		if !errors.Is(err, ErrNotFound) {
			r.logWarn(ctx, "provider fetch failed", "resource", resource, "attempts", attempt, "err", err)
		}
		return res, err
	}
	return res, nil
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logging.Warn(providerLogger(ctx, r.logger, r.providerName), msg, args...)
}
