package testutil

import (
	"strconv"
	"time"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
)

var (
	Leafs  = game.Team{ID: 10, Abbrev: "TOR", Place: "Toronto", Name: "Maple Leafs"}
	Bruins = game.Team{ID: 6, Abbrev: "BOS", Place: "Boston", Name: "Bruins"}
)

// SampleGame returns a Leafs home game against Boston starting at start.
func SampleGame(id int64, start time.Time) game.TrackedGame {
	return game.TrackedGame{
		ID:       id,
		Home:     Leafs,
		Away:     Bruins,
		StartUTC: start.UTC(),
		Venue:    "Scotiabank Arena",
		State:    game.StateFuture,
	}
}

// SampleSchedule wraps games into a schedule for date.
func SampleSchedule(date string, games ...game.TrackedGame) game.Schedule {
	return game.Schedule{Date: date, Games: games}
}

func period(n int) game.PeriodDescriptor {
	t := game.PeriodRegulation
	if n > 3 {
		t = game.PeriodOvertime
	}
	return game.PeriodDescriptor{Number: n, Type: t}
}

// GoalPlay builds a goal play. An empty scorer models an incomplete upstream record.
func GoalPlay(sortKey, periodNum int, timeInPeriod, team, scorer string, home, away int) game.Play {
	return game.Play{
		ID:           strconv.Itoa(sortKey),
		SortKey:      sortKey,
		Kind:         game.KindGoal,
		Period:       period(periodNum),
		TimeInPeriod: timeInPeriod,
		Detail: game.GoalDetail{
			TeamAbbrev: team,
			Scorer:     scorer,
			HomeScore:  home,
			AwayScore:  away,
		},
	}
}

// PenaltyPlay builds a minor penalty.
func PenaltyPlay(sortKey, periodNum int, timeInPeriod, team, offender string) game.Play {
	return game.Play{
		ID:           strconv.Itoa(sortKey),
		SortKey:      sortKey,
		Kind:         game.KindPenalty,
		Period:       period(periodNum),
		TimeInPeriod: timeInPeriod,
		Detail: game.PenaltyDetail{
			TeamAbbrev:  team,
			Offender:    offender,
			Description: "tripping",
			Minutes:     2,
		},
	}
}

// MarkerPlay builds a period-start, period-end, game-end or other play.
func MarkerPlay(sortKey, periodNum int, kind game.FactKind) game.Play {
	return game.Play{
		ID:           strconv.Itoa(sortKey),
		SortKey:      sortKey,
		Kind:         kind,
		Period:       period(periodNum),
		TimeInPeriod: "20:00",
	}
}

// LiveFeed wraps plays into a live feed snapshot.
func LiveFeed(id int64, state game.State, intermission bool, plays ...game.Play) game.LiveFeed {
	home, away := 0, 0
	periodNum := 1
	for _, p := range plays {
		if goal, ok := p.Detail.(game.GoalDetail); ok {
			home, away = goal.HomeScore, goal.AwayScore
		}
		if p.Period.Number > periodNum {
			periodNum = p.Period.Number
		}
	}
	return game.LiveFeed{
		GameID:         id,
		State:          state,
		Period:         period(periodNum),
		InIntermission: intermission,
		Home:           game.TeamScore{Team: Leafs, Score: home, Shots: 20},
		Away:           game.TeamScore{Team: Bruins, Score: away, Shots: 18},
		Plays:          plays,
	}
}
