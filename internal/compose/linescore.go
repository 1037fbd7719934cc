package compose

import (
	"fmt"
	"strings"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
)

// BuildLineScore rebuilds per-goal entries from the play-by-play, grouped by
// scoring team. Shootout attempts are not part of the line score.
func BuildLineScore(plays []game.Play, home, away game.Team, regulation int) game.LineScore {
	var ls game.LineScore
	for _, p := range plays {
		if p.Kind != game.KindGoal || p.Period.Type == game.PeriodShootout {
			continue
		}
		goal, ok := p.Detail.(game.GoalDetail)
		if !ok {
			continue
		}
		entry := game.LineScoreEntry{
			Label:   PeriodLabel(p.Period, regulation) + periodTimeSeparator + NormalizeClock(p.TimeInPeriod, 2),
			Scorer:  goal.Scorer,
			Assists: goal.Assists,
		}
		switch {
		case home.Matches(goal.TeamAbbrev):
			ls.Home = append(ls.Home, entry)
		case away.Matches(goal.TeamAbbrev):
			ls.Away = append(ls.Away, entry)
		}
	}
	return ls
}

func renderLineScore(ls game.LineScore, home, away game.Team) []string {
	var lines []string
	section := func(team game.Team, entries []game.LineScoreEntry) {
		for _, e := range entries {
			scorer := e.Scorer
			if scorer == "" {
				scorer = "TBD"
			}
			line := fmt.Sprintf("%s %s %s", team.Abbrev, e.Label, scorer)
			if len(e.Assists) > 0 {
				line += " (" + strings.Join(e.Assists, ", ") + ")"
			}
			lines = append(lines, line)
		}
	}
	section(away, ls.Away)
	section(home, ls.Home)
	return lines
}
