package providers

import (
	"context"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
)

// ScheduleProvider fetches one day of games. The date is a YYYY-MM-DD string
// in the tracked team's timezone.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, date string) (game.Schedule, error)
}

// GameFeedProvider fetches per-game live and post-game data.
type GameFeedProvider interface {
	FetchPlayByPlay(ctx context.Context, gameID int64) (game.LiveFeed, error)
	FetchBoxScore(ctx context.Context, gameID int64) (game.BoxScore, error)
	FetchLanding(ctx context.Context, gameID int64) (game.Landing, error)
}

// DataProvider combines all game data capabilities.
type DataProvider interface {
	ScheduleProvider
	GameFeedProvider
}

// OfficialsProvider reports whether the officiating crew for a team's game
// has been announced.
type OfficialsProvider interface {
	FetchOfficials(ctx context.Context, teamName string, date string) (game.Officials, error)
}
