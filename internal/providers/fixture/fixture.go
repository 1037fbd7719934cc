package fixture

import (
	"context"
	"strconv"
	"time"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
	"github.com/gboparai/nhl-gamebot-sub000/internal/providers"
)

const (
	providerName = "fixture"
	gameID       = int64(2023029999)
	defaultLead  = 2 * time.Minute
	landingDelay = 10 * time.Second
)

var (
	home = game.Team{ID: 10, Abbrev: "TOR", Place: "Toronto", Name: "Maple Leafs"}
	away = game.Team{ID: 6, Abbrev: "BOS", Place: "Boston", Name: "Bruins"}
)

type scripted struct {
	offset time.Duration
	play   game.Play
}

// Provider replays a compressed overtime win for offline runs. Plays appear
// as wall-clock time passes the scripted offset from the start.
type Provider struct {
	now    func() time.Time
	start  time.Time
	script []scripted
}

// New creates a fixture provider whose game starts shortly after now.
func New() *Provider {
	return NewAt(time.Now().Add(defaultLead))
}

// NewAt creates a fixture provider with the game starting at start.
func NewAt(start time.Time) *Provider {
	return &Provider{
		now:    time.Now,
		start:  start.UTC(),
		script: buildScript(),
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return providerName
}

// Game returns the scheduled fixture game.
func (p *Provider) Game() game.TrackedGame {
	return game.TrackedGame{
		ID:       gameID,
		Home:     home,
		Away:     away,
		StartUTC: p.start,
		Venue:    "Scotiabank Arena",
		State:    p.state(),
	}
}

// FetchSchedule returns the fixture game for any date.
func (p *Provider) FetchSchedule(ctx context.Context, date string) (game.Schedule, error) {
	_ = ctx
	return game.Schedule{Date: date, Games: []game.TrackedGame{p.Game()}}, nil
}

// FetchPlayByPlay returns every scripted play whose offset has elapsed.
func (p *Provider) FetchPlayByPlay(ctx context.Context, id int64) (game.LiveFeed, error) {
	_ = ctx
	if id != gameID {
		return game.LiveFeed{}, providers.ErrNotFound
	}
	plays := p.revealed()
	feed := game.LiveFeed{
		GameID: gameID,
		State:  p.state(),
		Period: game.PeriodDescriptor{Number: 1, Type: game.PeriodRegulation},
		Home:   game.TeamScore{Team: home},
		Away:   game.TeamScore{Team: away},
		Plays:  plays,
	}
	for _, pl := range plays {
		feed.Period = pl.Period
		feed.InIntermission = pl.Kind == game.KindPeriodEnd
		if goal, ok := pl.Detail.(game.GoalDetail); ok {
			feed.Home.Score, feed.Away.Score = goal.HomeScore, goal.AwayScore
		}
	}
	if feed.State.Finished() {
		feed.InIntermission = false
	}
	feed.Home.Shots, feed.Away.Shots = shots(len(plays))
	return feed, nil
}

// FetchBoxScore returns running totals, final once the script is exhausted.
func (p *Provider) FetchBoxScore(ctx context.Context, id int64) (game.BoxScore, error) {
	feed, err := p.FetchPlayByPlay(ctx, id)
	if err != nil {
		return game.BoxScore{}, err
	}
	return game.BoxScore{
		GameID: feed.GameID,
		State:  feed.State,
		Period: feed.Period,
		Home:   feed.Home,
		Away:   feed.Away,
	}, nil
}

// FetchLanding publishes stars and the recap shortly after the game ends.
func (p *Provider) FetchLanding(ctx context.Context, id int64) (game.Landing, error) {
	_ = ctx
	if id != gameID {
		return game.Landing{}, providers.ErrNotFound
	}
	if p.now().Before(p.end().Add(landingDelay)) {
		return game.Landing{GameID: gameID}, nil
	}
	return game.Landing{
		GameID: gameID,
		ThreeStars: []game.Star{
			{Rank: 1, Name: "W. Nylander", TeamAbbrev: "TOR", Position: "R", Goals: 1},
			{Rank: 2, Name: "A. Matthews", TeamAbbrev: "TOR", Position: "C", Goals: 1, Assists: 1},
			{Rank: 3, Name: "D. Pastrnak", TeamAbbrev: "BOS", Position: "R", Goals: 1},
		},
		RecapVideoID: "6346379251112",
	}, nil
}

func (p *Provider) revealed() []game.Play {
	elapsed := p.now().Sub(p.start)
	out := make([]game.Play, 0, len(p.script))
	for _, s := range p.script {
		if elapsed < s.offset {
			break
		}
		out = append(out, s.play)
	}
	return out
}

func (p *Provider) end() time.Time {
	return p.start.Add(p.script[len(p.script)-1].offset)
}

func (p *Provider) state() game.State {
	now := p.now()
	switch {
	case now.Before(p.start):
		return game.StateFuture
	case now.Before(p.end()):
		return game.StateLive
	default:
		return game.StateOff
	}
}

func shots(revealed int) (int, int) {
	return revealed * 3, revealed * 2
}

func buildScript() []scripted {
	sort := 0
	next := func(offset time.Duration, period int, kind game.FactKind, clock string, detail game.FactDetail) scripted {
		sort += 10
		ptype := game.PeriodRegulation
		if period > 3 {
			ptype = game.PeriodOvertime
		}
		return scripted{
			offset: offset,
			play: game.Play{
				ID:           strconv.Itoa(100 + sort),
				SortKey:      sort,
				Kind:         kind,
				Period:       game.PeriodDescriptor{Number: period, Type: ptype},
				TimeInPeriod: clock,
				Detail:       detail,
			},
		}
	}
	sec := func(n int) time.Duration { return time.Duration(n) * time.Second }

	return []scripted{
		next(sec(0), 1, game.KindPeriodStart, "00:00", nil),
		next(sec(20), 1, game.KindGoal, "05:12", game.GoalDetail{TeamAbbrev: "TOR", Scorer: "Auston Matthews", ScorerTotal: 31, Assists: []string{"Mitch Marner", "Morgan Rielly"}, HomeScore: 1, Strength: "ev"}),
		next(sec(40), 1, game.KindPenalty, "11:40", game.PenaltyDetail{TeamAbbrev: "BOS", Offender: "Brad Marchand", Description: "tripping", Minutes: 2, DrawnBy: "William Nylander"}),
		next(sec(60), 1, game.KindPeriodEnd, "20:00", nil),
		next(sec(90), 2, game.KindPeriodStart, "00:00", nil),
		next(sec(110), 2, game.KindGoal, "03:05", game.GoalDetail{TeamAbbrev: "BOS", Scorer: "David Pastrnak", ScorerTotal: 28, Assists: []string{"Charlie McAvoy"}, HomeScore: 1, AwayScore: 1, Strength: "pp"}),
		next(sec(150), 2, game.KindPeriodEnd, "20:00", nil),
		next(sec(180), 3, game.KindPeriodStart, "00:00", nil),
		next(sec(240), 3, game.KindPeriodEnd, "20:00", nil),
		next(sec(270), 4, game.KindPeriodStart, "00:00", nil),
		next(sec(290), 4, game.KindGoal, "02:41", game.GoalDetail{TeamAbbrev: "TOR", Scorer: "William Nylander", ScorerTotal: 25, Assists: []string{"Auston Matthews"}, HomeScore: 2, AwayScore: 1, Strength: "ev"}),
		next(sec(291), 4, game.KindPeriodEnd, "02:41", nil),
		next(sec(292), 4, game.KindGameEnd, "02:41", nil),
	}
}
