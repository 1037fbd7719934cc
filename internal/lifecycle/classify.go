package lifecycle

import (
	"time"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
)

// Observation is what one cycle learned from upstream. Only the fields that
// matter for the current phase are read.
type Observation struct {
	// Idle
	Schedule game.Schedule
	Team     string

	// AwaitingStart
	Now                time.Time
	Start              time.Time
	PregameWindow      time.Duration
	OfficialsConfirmed bool

	// LivePlay / Intermission
	Feed      game.LiveFeed
	Delivered []game.Fact
	Pending   bool

	// Ended / RecapPending / Closed
	PostGameReady bool
}

// Classify returns the phase the machine should be in after observing obs.
func Classify(obs Observation, current game.Phase) game.Phase {
	switch current {
	case game.PhaseIdle:
		g, ok := obs.Schedule.Find(obs.Team)
		if !ok || g.State.Finished() {
			return game.PhaseIdle
		}
		return game.PhaseAwaitingStart

	case game.PhaseAwaitingStart:
		if obs.Now.Before(obs.Start.Add(-obs.PregameWindow)) || !obs.OfficialsConfirmed {
			return game.PhaseAwaitingStart
		}
		return game.PhaseLivePlay

	case game.PhaseLivePlay, game.PhaseIntermission:
		for _, f := range obs.Delivered {
			if f.Kind == game.KindGameEnd {
				return game.PhaseEnded
			}
		}
		if obs.Pending {
			return current
		}
		if obs.Feed.State.Finished() {
			return game.PhaseEnded
		}
		if obs.Feed.InIntermission {
			return game.PhaseIntermission
		}
		return game.PhaseLivePlay

	case game.PhaseEnded:
		if obs.PostGameReady {
			return game.PhaseRecapPending
		}
		return game.PhaseEnded

	case game.PhaseRecapPending:
		if obs.PostGameReady {
			return game.PhaseClosed
		}
		return game.PhaseRecapPending

	case game.PhaseClosed:
		if obs.PostGameReady {
			return game.PhaseIdle
		}
		return game.PhaseClosed

	default:
		return game.PhaseIdle
	}
}
