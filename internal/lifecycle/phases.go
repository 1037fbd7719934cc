package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
	"github.com/gboparai/nhl-gamebot-sub000/internal/logging"
	"github.com/gboparai/nhl-gamebot-sub000/internal/providers"
	"github.com/gboparai/nhl-gamebot-sub000/internal/timeutil"
)

func (m *Machine) stepIdle(ctx context.Context) (time.Duration, error) {
	date := timeutil.LocalDate(m.now(), m.cfg.Location)
	sched, err := m.deps.Provider.FetchSchedule(ctx, date)
	if err != nil {
		logging.Error(m.log(), "schedule fetch failed", err, logging.FieldDate, date)
		return m.cfg.IdleWait, err
	}

	next := Classify(Observation{Schedule: sched, Team: m.cfg.Team}, game.PhaseIdle)
	if next == game.PhaseIdle {
		if g, ok := sched.Find(m.cfg.Team); ok {
			logging.Info(m.log(), "matching game already final", logging.FieldGameID, g.ID, logging.FieldDate, date)
		}
		return m.cfg.IdleWait, nil
	}

	g, _ := sched.Find(m.cfg.Team)
	m.startSession(g)
	logging.Info(m.log(), "tracking game",
		logging.FieldDate, date,
		"home", g.Home.Abbrev,
		"away", g.Away.Abbrev,
		"start", g.StartUTC.Format(time.RFC3339),
	)
	m.transition(next)
	return 0, nil
}

func (m *Machine) stepAwaitingStart(ctx context.Context) (time.Duration, error) {
	s := m.session
	date := timeutil.LocalDate(s.game.StartUTC, m.cfg.Location)

	sched, err := m.deps.Provider.FetchSchedule(ctx, date)
	if err != nil {
		logging.Error(m.log(), "schedule refresh failed", err, logging.FieldDate, date)
		return m.cfg.RecapRetryWait, err
	}
	updated, ok := sched.FindByID(s.game.ID)
	if !ok {
		logging.Warn(m.log(), "tracked game missing from schedule, abandoning", logging.FieldDate, date)
		m.transition(game.PhaseIdle)
		return 0, nil
	}
	if !updated.StartUTC.Equal(s.game.StartUTC) && !updated.StartUTC.IsZero() {
		logging.Info(m.log(), "start time changed", "from", s.game.StartUTC, "to", updated.StartUTC)
		s.game.StartUTC = updated.StartUTC
	}
	s.game.State = updated.State

	now := m.now()
	if untilWindow := s.game.StartUTC.Add(-m.cfg.PregameWindow).Sub(now); untilWindow > 0 {
		return min(m.cfg.AwaitingWait, untilWindow), nil
	}

	team := s.game.Home
	if s.game.Away.Matches(m.cfg.Team) {
		team = s.game.Away
	}
	officials, err := m.deps.Officials.FetchOfficials(ctx, team.FullName(), date)
	if err != nil {
		logging.Warn(m.log(), "officials lookup failed", "err", err)
		return m.cfg.OfficialsRetryWait, err
	}

	next := Classify(Observation{
		Now:                now,
		Start:              s.game.StartUTC,
		PregameWindow:      m.cfg.PregameWindow,
		OfficialsConfirmed: officials.Confirmed,
	}, game.PhaseAwaitingStart)
	if next == game.PhaseAwaitingStart {
		logging.Info(m.log(), "officials not yet announced")
		return m.cfg.OfficialsRetryWait, nil
	}

	_ = m.send(ctx, m.deps.Composer.Pregame(s.game, officials))
	m.transition(next)

	if untilStart := s.game.StartUTC.Sub(now); untilStart > 0 {
		return untilStart, nil
	}
	return 0, nil
}

func (m *Machine) liveWait() time.Duration {
	if m.phase == game.PhaseIntermission {
		return m.cfg.IntermissionWait
	}
	return m.cfg.LiveWait
}

func (m *Machine) stepLive(ctx context.Context) (time.Duration, error) {
	s := m.session
	current := m.phase

	feed, err := m.deps.Provider.FetchPlayByPlay(ctx, s.game.ID)
	if err != nil {
		logging.Error(m.log(), "play-by-play fetch failed", err)
		return m.liveWait(), err
	}

	facts, pending := m.newFacts(feed)
	for _, f := range facts {
		if msg, ok := m.deps.Composer.Fact(s.game, f); ok {
			if err := m.send(ctx, msg); err != nil {
				logging.Warn(m.log(), "fact delivery failed", logging.FieldFactID, f.ID, logging.FieldFactKind, f.Kind.String())
			}
		}
		s.ledger.Record(f)
	}
	if len(feed.Plays) > 0 {
		s.plays = feed.Plays
		s.home, s.away = feed.Home, feed.Away
	}

	next := Classify(Observation{Feed: feed, Delivered: facts, Pending: pending}, current)
	switch next {
	case game.PhaseEnded:
		s.endedAt = m.now()
		m.transition(game.PhaseEnded)
		return 0, nil
	case game.PhaseIntermission:
		m.transition(game.PhaseIntermission)
		if s.intermissionNotified < feed.Period.Number {
			// one attempt per intermission; a failed send is not retried
			s.intermissionNotified = feed.Period.Number
			_ = m.send(ctx, m.deps.Composer.Intermission(s.game, feed))
		}
		return m.cfg.IntermissionWait, nil
	default:
		m.transition(game.PhaseLivePlay)
		return m.cfg.LiveWait, nil
	}
}

// newFacts applies the shrink guard and the incomplete-goal hold on top of
// ExtractNewFacts. pending reports facts held back for a later cycle.
func (m *Machine) newFacts(feed game.LiveFeed) ([]game.Fact, bool) {
	s := m.session
	if len(feed.Plays) == 0 {
		return nil, false
	}
	if len(feed.Plays) < s.lastPlayCount {
		logging.Warn(m.log(), "play-by-play shrank, skipping cycle", "previous", s.lastPlayCount, logging.FieldCount, len(feed.Plays))
		s.lastPlayCount = len(feed.Plays)
		return nil, false
	}
	s.lastPlayCount = len(feed.Plays)

	facts := ExtractNewFacts(feed.Plays, s.ledger.HighWaterKey(), s.ledger.AlreadySent)
	ready, held := HoldIncomplete(facts)
	if len(held) > 0 && s.holdCycles < m.cfg.GoalHoldCycles {
		s.holdCycles++
		logging.Info(m.log(), "holding incomplete fact", logging.FieldFactID, held[0].ID, "cycle", s.holdCycles)
		return ready, true
	}
	if len(held) > 0 {
		logging.Warn(m.log(), "releasing incomplete fact", logging.FieldFactID, held[0].ID)
	}
	s.holdCycles = 0
	return facts, false
}

func (m *Machine) recapExpired() bool {
	s := m.session
	return m.cfg.RecapDeadline > 0 && !s.endedAt.IsZero() && m.now().Sub(s.endedAt) > m.cfg.RecapDeadline
}

func (m *Machine) stepEnded(ctx context.Context) (time.Duration, error) {
	s := m.session
	box, err := m.deps.Provider.FetchBoxScore(ctx, s.game.ID)
	if err != nil && !errors.Is(err, providers.ErrNotFound) {
		logging.Error(m.log(), "boxscore fetch failed", err)
		return m.cfg.RecapRetryWait, err
	}

	ready := err == nil && box.State.Finished()
	if Classify(Observation{PostGameReady: ready}, game.PhaseEnded) == game.PhaseEnded {
		logging.Info(m.log(), "final boxscore not yet available")
		return m.cfg.RecapRetryWait, nil
	}

	s.home, s.away = box.Home, box.Away
	_ = m.send(ctx, m.deps.Composer.Final(s.game, box, s.plays))
	m.transition(game.PhaseRecapPending)
	return 0, nil
}

func (m *Machine) fetchLanding(ctx context.Context) (game.Landing, error) {
	landing, err := m.deps.Provider.FetchLanding(ctx, m.session.game.ID)
	if errors.Is(err, providers.ErrNotFound) {
		return game.Landing{}, nil
	}
	if err != nil {
		logging.Error(m.log(), "landing fetch failed", err)
	}
	return landing, err
}

func (m *Machine) stepRecapPending(ctx context.Context) (time.Duration, error) {
	if m.recapExpired() {
		logging.Warn(m.log(), "three stars deadline passed, skipping")
		m.transition(game.PhaseClosed)
		return 0, nil
	}

	landing, err := m.fetchLanding(ctx)
	if err != nil {
		return m.cfg.RecapRetryWait, err
	}
	next := Classify(Observation{PostGameReady: len(landing.ThreeStars) > 0}, game.PhaseRecapPending)
	if next == game.PhaseRecapPending {
		return m.cfg.RecapRetryWait, nil
	}

	_ = m.send(ctx, m.deps.Composer.ThreeStars(landing))
	m.transition(next)
	return 0, nil
}

func (m *Machine) stepClosed(ctx context.Context) (time.Duration, error) {
	s := m.session
	if m.recapExpired() {
		logging.Warn(m.log(), "recap deadline passed, skipping")
		m.transition(game.PhaseIdle)
		return m.cfg.CooldownWait, nil
	}

	landing, err := m.fetchLanding(ctx)
	if err != nil {
		return m.cfg.RecapRetryWait, err
	}
	next := Classify(Observation{PostGameReady: landing.RecapVideoID != ""}, game.PhaseClosed)
	if next == game.PhaseClosed {
		return m.cfg.RecapRetryWait, nil
	}

	_ = m.send(ctx, m.deps.Composer.Recap(s.game, landing))
	m.transition(next)
	return m.cfg.CooldownWait, nil
}
