package nhlweb

import (
	"strconv"
	"strings"
	"time"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
)

func mapTeam(t team) game.Team {
	name := t.CommonName.Default
	if name == "" {
		name = t.Name.Default
	}
	return game.Team{
		ID:     t.ID,
		Abbrev: t.Abbrev,
		Place:  t.PlaceName.Default,
		Name:   name,
	}
}

func mapTeamScore(t team) game.TeamScore {
	return game.TeamScore{Team: mapTeam(t), Score: t.Score, Shots: t.SOG}
}

func mapPeriod(p periodDescriptor) game.PeriodDescriptor {
	kind := game.PeriodType(strings.ToUpper(p.PeriodType))
	switch kind {
	case game.PeriodRegulation, game.PeriodOvertime, game.PeriodShootout:
	default:
		kind = game.PeriodRegulation
	}
	return game.PeriodDescriptor{Number: p.Number, Type: kind}
}

func mapSchedule(date string, resp scheduleResponse) game.Schedule {
	out := game.Schedule{Date: date, Games: []game.TrackedGame{}}
	for _, day := range resp.GameWeek {
		if day.Date != date {
			continue
		}
		for _, g := range day.Games {
			out.Games = append(out.Games, mapScheduleGame(g))
		}
	}
	return out
}

func mapScheduleGame(g scheduleGame) game.TrackedGame {
	start, err := time.Parse(time.RFC3339, g.StartTimeUTC)
	if err != nil {
		start = time.Time{}
	}
	return game.TrackedGame{
		ID:       g.ID,
		Home:     mapTeam(g.HomeTeam),
		Away:     mapTeam(g.AwayTeam),
		StartUTC: start.UTC(),
		Venue:    g.Venue.Default,
		State:    game.State(g.GameState),
	}
}

func mapKind(typeDescKey string) game.FactKind {
	switch typeDescKey {
	case "goal":
		return game.KindGoal
	case "penalty":
		return game.KindPenalty
	case "period-start":
		return game.KindPeriodStart
	case "period-end":
		return game.KindPeriodEnd
	case "game-end":
		return game.KindGameEnd
	default:
		return game.KindOther
	}
}

type feedContext struct {
	names   map[int64]string
	abbrevs map[int]string
	homeID  int
}

func newFeedContext(resp playByPlayResponse) feedContext {
	fc := feedContext{
		names:   make(map[int64]string, len(resp.RosterSpots)),
		abbrevs: map[int]string{resp.HomeTeam.ID: resp.HomeTeam.Abbrev, resp.AwayTeam.ID: resp.AwayTeam.Abbrev},
		homeID:  resp.HomeTeam.ID,
	}
	for _, spot := range resp.RosterSpots {
		fc.names[spot.PlayerID] = strings.TrimSpace(spot.FirstName.Default + " " + spot.LastName.Default)
	}
	return fc
}

func (fc feedContext) name(id int64) string {
	if id == 0 {
		return ""
	}
	return fc.names[id]
}

func mapLiveFeed(resp playByPlayResponse) game.LiveFeed {
	fc := newFeedContext(resp)
	plays := make([]game.Play, 0, len(resp.Plays))
	for _, p := range resp.Plays {
		plays = append(plays, fc.mapPlay(p))
	}
	return game.LiveFeed{
		GameID:         resp.ID,
		State:          game.State(resp.GameState),
		Period:         mapPeriod(resp.PeriodDescriptor),
		InIntermission: resp.Clock.InIntermission,
		Home:           mapTeamScore(resp.HomeTeam),
		Away:           mapTeamScore(resp.AwayTeam),
		Plays:          plays,
	}
}

func (fc feedContext) mapPlay(p play) game.Play {
	out := game.Play{
		ID:            strconv.FormatInt(p.EventID, 10),
		SortKey:       p.SortOrder,
		Kind:          mapKind(p.TypeDescKey),
		Period:        mapPeriod(p.PeriodDescriptor),
		TimeInPeriod:  p.TimeInPeriod,
		TimeRemaining: p.TimeRemaining,
	}
	if p.Details == nil {
		if out.Kind == game.KindGoal {
			out.Detail = game.GoalDetail{}
		}
		return out
	}
	d := p.Details
	switch out.Kind {
	case game.KindGoal:
		assists := make([]string, 0, 2)
		for _, id := range []int64{d.Assist1PlayerID, d.Assist2PlayerID} {
			if n := fc.name(id); n != "" {
				assists = append(assists, n)
			}
		}
		out.Detail = game.GoalDetail{
			TeamAbbrev:  fc.abbrevs[d.EventOwnerTeamID],
			Scorer:      fc.name(d.ScoringPlayerID),
			ScorerTotal: d.ScoringPlayerTotal,
			Assists:     assists,
			HomeScore:   d.HomeScore,
			AwayScore:   d.AwayScore,
			Strength:    strength(p.SituationCode, d.EventOwnerTeamID == fc.homeID),
		}
	case game.KindPenalty:
		offender := fc.name(d.CommittedByPlayerID)
		if offender == "" {
			offender = fc.name(d.ServedByPlayerID)
		}
		out.Detail = game.PenaltyDetail{
			TeamAbbrev:  fc.abbrevs[d.EventOwnerTeamID],
			Offender:    offender,
			Description: strings.ReplaceAll(d.DescKey, "-", " "),
			Minutes:     d.Duration,
			DrawnBy:     fc.name(d.DrawnByPlayerID),
		}
	}
	return out
}

// strength decodes the four-digit situation code: away goalie, away skaters,
// home skaters, home goalie.
func strength(code string, homeScored bool) string {
	if len(code) != 4 {
		return ""
	}
	awayGoalie, awaySkaters := code[0]-'0', code[1]-'0'
	homeSkaters, homeGoalie := code[2]-'0', code[3]-'0'

	own, opp, oppGoalie := awaySkaters, homeSkaters, homeGoalie
	if homeScored {
		own, opp, oppGoalie = homeSkaters, awaySkaters, awayGoalie
	}
	switch {
	case oppGoalie == 0:
		return "en"
	case own > opp:
		return "pp"
	case own < opp:
		return "sh"
	default:
		return "ev"
	}
}

func mapBoxScore(resp boxScoreResponse) game.BoxScore {
	return game.BoxScore{
		GameID: resp.ID,
		State:  game.State(resp.GameState),
		Period: mapPeriod(resp.PeriodDescriptor),
		Home:   mapTeamScore(resp.HomeTeam),
		Away:   mapTeamScore(resp.AwayTeam),
	}
}

func mapLanding(resp landingResponse) game.Landing {
	stars := make([]game.Star, 0, len(resp.Summary.ThreeStars))
	for _, s := range resp.Summary.ThreeStars {
		stars = append(stars, game.Star{
			Rank:       s.Star,
			Name:       s.Name.Default,
			TeamAbbrev: s.TeamAbbrev,
			Position:   s.Position,
			Goals:      s.Goals,
			Assists:    s.Assists,
		})
	}
	out := game.Landing{GameID: resp.ID, ThreeStars: stars}
	if resp.Summary.GameVideo.ThreeMinRecap > 0 {
		out.RecapVideoID = strconv.FormatInt(resp.Summary.GameVideo.ThreeMinRecap, 10)
	}
	return out
}
