package compose

import (
	"fmt"
	"strings"
	"time"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/notification"
	"github.com/gboparai/nhl-gamebot-sub000/internal/timeutil"
)

const recapURLPattern = "https://www.nhl.com/video/recap/%s"

// Composer renders deterministic message templates. It performs no I/O.
type Composer struct {
	Team              string
	RegulationPeriods int
	Glyph             string
	Hashtags          []string
	Location          *time.Location
}

func (c Composer) regulation() int {
	if c.RegulationPeriods <= 0 {
		return DefaultRegulationPeriods
	}
	return c.RegulationPeriods
}

func (c Composer) finish(lines ...string) string {
	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if len(c.Hashtags) > 0 {
		text += "\n\n" + strings.Join(c.Hashtags, " ")
	}
	return text
}

func (c Composer) periodTime(p game.PeriodDescriptor, clock string) string {
	return PeriodLabel(p, c.regulation()) + periodTimeSeparator + NormalizeClock(clock, 2)
}

func teamFor(g game.TrackedGame, abbrev string) game.Team {
	if g.Away.Matches(abbrev) {
		return g.Away
	}
	if g.Home.Matches(abbrev) {
		return g.Home
	}
	return game.Team{Abbrev: abbrev, Name: abbrev}
}

func scoreLine(g game.TrackedGame, home, away int) string {
	return fmt.Sprintf("%s %d, %s %d", g.Away.Abbrev, away, g.Home.Abbrev, home)
}

// Fact renders a live fact. ok is false for kinds with no standalone message.
func (c Composer) Fact(g game.TrackedGame, f game.Fact) (notification.Message, bool) {
	switch f.Kind {
	case game.KindGoal:
		return notification.Message{Text: c.goal(g, f)}, true
	case game.KindPenalty:
		return notification.Message{Text: c.penalty(g, f)}, true
	case game.KindPeriodStart:
		return notification.Message{Text: c.finish(c.periodStart(f.Period))}, true
	case game.KindPeriodEnd:
		label := PeriodLabel(f.Period, c.regulation())
		return notification.Message{Text: c.finish(fmt.Sprintf("End of %s.", periodName(label)))}, true
	case game.KindGameEnd, game.KindOther:
		return notification.Message{}, false
	default:
		return notification.Message{}, false
	}
}

func (c Composer) goal(g game.TrackedGame, f game.Fact) string {
	detail, _ := f.Detail.(game.GoalDetail)
	team := teamFor(g, detail.TeamAbbrev)

	header := team.Name + " GOAL!"
	if team.Matches(c.Team) {
		count := detail.HomeScore
		if g.Away.Matches(c.Team) {
			count = detail.AwayScore
		}
		if emoji := RepeatEmoji(c.Glyph, count); emoji != "" {
			header = emoji + " " + header + " " + emoji
		}
	}
	if tag := strengthTag(detail.Strength); tag != "" {
		header += " (" + tag + ")"
	}

	scorer := detail.Scorer
	if scorer == "" {
		scorer = "Scorer to be announced"
	} else if detail.ScorerTotal > 0 {
		scorer = fmt.Sprintf("%s (%d)", scorer, detail.ScorerTotal)
	}
	assists := "Unassisted"
	if len(detail.Assists) > 0 {
		assists = "Assists: " + strings.Join(detail.Assists, ", ")
	}

	return c.finish(
		header,
		"",
		scorer+" at "+c.periodTime(f.Period, f.TimeInPeriod),
		assists,
		"",
		scoreLine(g, detail.HomeScore, detail.AwayScore),
	)
}

func strengthTag(strength string) string {
	switch strength {
	case "pp":
		return "PPG"
	case "sh":
		return "SHG"
	case "en":
		return "ENG"
	default:
		return ""
	}
}

func (c Composer) penalty(g game.TrackedGame, f game.Fact) string {
	detail, _ := f.Detail.(game.PenaltyDetail)
	team := teamFor(g, detail.TeamAbbrev)

	offender := detail.Offender
	if offender == "" {
		offender = "Bench"
	}
	line := fmt.Sprintf("%s penalty: %s, %d min for %s", team.Name, offender, detail.Minutes, detail.Description)
	if detail.DrawnBy != "" {
		line += fmt.Sprintf(" (drawn by %s)", detail.DrawnBy)
	}
	return c.finish(line, c.periodTime(f.Period, f.TimeInPeriod))
}

func (c Composer) periodStart(p game.PeriodDescriptor) string {
	label := PeriodLabel(p, c.regulation())
	return fmt.Sprintf("%s is underway!", capitalize(periodName(label)))
}

func periodName(label string) string {
	switch {
	case label == "SO":
		return "the shootout"
	case label == "OT":
		return "overtime"
	case strings.HasSuffix(label, "OT"):
		return label
	default:
		return "the " + label + " period"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Pregame renders the matchup bundle sent once officials are known.
func (c Composer) Pregame(g game.TrackedGame, officials game.Officials) notification.Message {
	start := timeutil.FormatClock(g.StartUTC, c.Location)
	matchup := fmt.Sprintf("%s @ %s", g.Away.FullName(), g.Home.FullName())

	lines := []string{"Game day! " + matchup, fmt.Sprintf("%s, puck drop at %s", g.Venue, start)}
	graphicLines := []string{"Puck drop " + start}
	if len(officials.Referees) > 0 {
		refs := "Referees: " + strings.Join(officials.Referees, ", ")
		lines = append(lines, refs)
		graphicLines = append(graphicLines, refs)
	}
	if len(officials.Linesmen) > 0 {
		lines = append(lines, "Linesmen: "+strings.Join(officials.Linesmen, ", "))
	}

	return notification.Message{
		Text: c.finish(lines...),
		Graphic: &notification.GraphicRequest{
			Kind:     notification.GraphicPregame,
			GameID:   g.ID,
			Title:    fmt.Sprintf("%s @ %s", g.Away.Abbrev, g.Home.Abbrev),
			Subtitle: g.Venue,
			Lines:    graphicLines,
		},
	}
}

// Intermission renders the between-periods summary.
func (c Composer) Intermission(g game.TrackedGame, feed game.LiveFeed) notification.Message {
	label := PeriodLabel(feed.Period, c.regulation())
	score := scoreLine(g, feed.Home.Score, feed.Away.Score)
	shots := fmt.Sprintf("Shots: %s %d, %s %d", g.Away.Abbrev, feed.Away.Shots, g.Home.Abbrev, feed.Home.Shots)
	ls := renderLineScore(BuildLineScore(feed.Plays, g.Home, g.Away, c.regulation()), g.Home, g.Away)

	lines := append([]string{fmt.Sprintf("End of %s: %s", periodName(label), score), shots, ""}, ls...)
	return notification.Message{
		Text: c.finish(lines...),
		Graphic: &notification.GraphicRequest{
			Kind:     notification.GraphicIntermission,
			GameID:   g.ID,
			Title:    score,
			Subtitle: "After " + label,
			Lines:    append([]string{shots}, ls...),
		},
	}
}

// Final renders the final score summary.
func (c Composer) Final(g game.TrackedGame, box game.BoxScore, plays []game.Play) notification.Message {
	suffix := ""
	switch {
	case box.Period.Type == game.PeriodShootout:
		suffix = "/SO"
	case box.Period.Type == game.PeriodOvertime || box.Period.Number > c.regulation():
		suffix = "/OT"
	}
	score := scoreLine(g, box.Home.Score, box.Away.Score)
	shots := fmt.Sprintf("Shots: %s %d, %s %d", g.Away.Abbrev, box.Away.Shots, g.Home.Abbrev, box.Home.Shots)
	ls := renderLineScore(BuildLineScore(plays, g.Home, g.Away, c.regulation()), g.Home, g.Away)

	lines := []string{fmt.Sprintf("Final%s: %s", suffix, score)}
	if verdict := c.verdict(g, box); verdict != "" {
		lines = append(lines, verdict)
	}
	lines = append(lines, shots, "")
	lines = append(lines, ls...)

	return notification.Message{
		Text: c.finish(lines...),
		Graphic: &notification.GraphicRequest{
			Kind:     notification.GraphicFinal,
			GameID:   g.ID,
			Title:    "Final" + suffix,
			Subtitle: score,
			Lines:    append([]string{shots}, ls...),
		},
	}
}

func (c Composer) verdict(g game.TrackedGame, box game.BoxScore) string {
	if !g.Involves(c.Team) {
		return ""
	}
	own, opp := box.Home.Score, box.Away.Score
	team := g.Home
	if g.Away.Matches(c.Team) {
		own, opp = opp, own
		team = g.Away
	}
	switch {
	case own > opp:
		return "The " + team.Name + " win!"
	case own < opp:
		return "The " + team.Name + " fall."
	default:
		return ""
	}
}

// ThreeStars renders the stars of the game.
func (c Composer) ThreeStars(landing game.Landing) notification.Message {
	lines := []string{"Three stars of the game:"}
	for _, s := range landing.ThreeStars {
		line := fmt.Sprintf("%d. %s (%s)", s.Rank, s.Name, s.TeamAbbrev)
		if s.Goals > 0 || s.Assists > 0 {
			line += fmt.Sprintf(" %dG %dA", s.Goals, s.Assists)
		}
		lines = append(lines, line)
	}
	return notification.Message{Text: c.finish(lines...)}
}

// Recap renders the recap video link.
func (c Composer) Recap(g game.TrackedGame, landing game.Landing) notification.Message {
	url := fmt.Sprintf(recapURLPattern, landing.RecapVideoID)
	return notification.Message{Text: c.finish(
		fmt.Sprintf("Recap: %s @ %s", g.Away.Abbrev, g.Home.Abbrev),
		url,
	)}
}
