package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
	"github.com/gboparai/nhl-gamebot-sub000/internal/logging"
)

// rateLimitedProvider wraps a DataProvider and spaces calls with a token bucket.
type rateLimitedProvider struct {
	next    DataProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider allowing perMinute calls per minute.
// Calls block until a token is available or the context ends.
func NewRateLimitedProvider(next DataProvider, perMinute int, logger *slog.Logger) DataProvider {
	if perMinute <= 0 {
		perMinute = 60
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context, resource string) error {
	if p == nil || p.next == nil {
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logging.Warn(logging.FromContext(ctx, p.logger), "rate-limited fetch canceled", "resource", resource, "err", err)
		return err
	}
	return nil
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context, date string) (game.Schedule, error) {
	if err := p.wait(ctx, "schedule"); err != nil {
		return game.Schedule{}, err
	}
	return p.next.FetchSchedule(ctx, date)
}

func (p *rateLimitedProvider) FetchPlayByPlay(ctx context.Context, gameID int64) (game.LiveFeed, error) {
	if err := p.wait(ctx, "play-by-play"); err != nil {
		return game.LiveFeed{}, err
	}
	return p.next.FetchPlayByPlay(ctx, gameID)
}

func (p *rateLimitedProvider) FetchBoxScore(ctx context.Context, gameID int64) (game.BoxScore, error) {
	if err := p.wait(ctx, "boxscore"); err != nil {
		return game.BoxScore{}, err
	}
	return p.next.FetchBoxScore(ctx, gameID)
}

func (p *rateLimitedProvider) FetchLanding(ctx context.Context, gameID int64) (game.Landing, error) {
	if err := p.wait(ctx, "landing"); err != nil {
		return game.Landing{}, err
	}
	return p.next.FetchLanding(ctx, gameID)
}
