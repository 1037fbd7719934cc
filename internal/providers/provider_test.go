package providers

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
)

// flakeyProvider fails the first `failures` calls of every method with err.
type flakeyProvider struct {
	failures int32
	err      error
	calls    atomic.Int32
}

func (f *flakeyProvider) attempt() error {
	n := f.calls.Add(1)
	if n <= f.failures {
		if f.err != nil {
			return f.err
		}
		return errors.New("boom")
	}
	return nil
}

func (f *flakeyProvider) FetchSchedule(ctx context.Context, date string) (game.Schedule, error) {
	if err := f.attempt(); err != nil {
		return game.Schedule{}, err
	}
	return game.Schedule{Date: date, Games: []game.TrackedGame{{ID: 1}}}, nil
}

func (f *flakeyProvider) FetchPlayByPlay(ctx context.Context, gameID int64) (game.LiveFeed, error) {
	if err := f.attempt(); err != nil {
		return game.LiveFeed{}, err
	}
	return game.LiveFeed{GameID: gameID}, nil
}

func (f *flakeyProvider) FetchBoxScore(ctx context.Context, gameID int64) (game.BoxScore, error) {
	if err := f.attempt(); err != nil {
		return game.BoxScore{}, err
	}
	return game.BoxScore{GameID: gameID}, nil
}

func (f *flakeyProvider) FetchLanding(ctx context.Context, gameID int64) (game.Landing, error) {
	if err := f.attempt(); err != nil {
		return game.Landing{}, err
	}
	return game.Landing{GameID: gameID}, nil
}

var _ DataProvider = (*flakeyProvider)(nil)
