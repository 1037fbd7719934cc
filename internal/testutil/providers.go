package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
)

// StubProvider is a scripted game data provider. Each slice is replayed in
// order; the last entry repeats once the script runs out.
type StubProvider struct {
	mu sync.Mutex

	Schedules   []game.Schedule
	ScheduleErr error
	Feeds       []game.LiveFeed
	FeedErrs    []error
	Box         game.BoxScore
	BoxErr      error
	Landings    []game.Landing
	LandingErr  error

	ScheduleCalls atomic.Int32
	FeedCalls     atomic.Int32
	BoxCalls      atomic.Int32
	LandingCalls  atomic.Int32
}

func (s *StubProvider) FetchSchedule(ctx context.Context, date string) (game.Schedule, error) {
	_ = ctx
	n := int(s.ScheduleCalls.Add(1)) - 1
	if s.ScheduleErr != nil {
		return game.Schedule{}, s.ScheduleErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Schedules) == 0 {
		return game.Schedule{Date: date}, nil
	}
	return pick(s.Schedules, n), nil
}

func (s *StubProvider) FetchPlayByPlay(ctx context.Context, gameID int64) (game.LiveFeed, error) {
	_ = ctx
	_ = gameID
	n := int(s.FeedCalls.Add(1)) - 1
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < len(s.FeedErrs) && s.FeedErrs[n] != nil {
		return game.LiveFeed{}, s.FeedErrs[n]
	}
	if len(s.Feeds) == 0 {
		return game.LiveFeed{}, nil
	}
	return pick(s.Feeds, n), nil
}

func (s *StubProvider) FetchBoxScore(ctx context.Context, gameID int64) (game.BoxScore, error) {
	_ = ctx
	_ = gameID
	s.BoxCalls.Add(1)
	return s.Box, s.BoxErr
}

func (s *StubProvider) FetchLanding(ctx context.Context, gameID int64) (game.Landing, error) {
	_ = ctx
	_ = gameID
	n := int(s.LandingCalls.Add(1)) - 1
	if s.LandingErr != nil {
		return game.Landing{}, s.LandingErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Landings) == 0 {
		return game.Landing{}, nil
	}
	return pick(s.Landings, n), nil
}

// SetFeeds replaces the play-by-play script and resets the cursor.
func (s *StubProvider) SetFeeds(feeds ...game.LiveFeed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Feeds = feeds
	s.FeedCalls.Store(0)
}

func pick[T any](items []T, n int) T {
	if n >= len(items) {
		return items[len(items)-1]
	}
	return items[n]
}

// StubOfficials returns a fixed officiating answer.
type StubOfficials struct {
	Officials game.Officials
	Err       error
	Calls     atomic.Int32
}

func (s *StubOfficials) FetchOfficials(ctx context.Context, teamName string, date string) (game.Officials, error) {
	_ = ctx
	_ = teamName
	_ = date
	s.Calls.Add(1)
	return s.Officials, s.Err
}
