package game

import "time"

// State is the upstream game state string.
type State string

const (
	StateFuture   State = "FUT"
	StatePregame  State = "PRE"
	StateLive     State = "LIVE"
	StateCritical State = "CRIT"
	StateFinal    State = "FINAL"
	StateOff      State = "OFF"
)

// Finished reports whether the game has been decided.
func (s State) Finished() bool {
	return s == StateFinal || s == StateOff
}

// TrackedGame is the single game the bot follows for one session.
type TrackedGame struct {
	ID       int64     `json:"id"`
	Home     Team      `json:"home"`
	Away     Team      `json:"away"`
	StartUTC time.Time `json:"startUtc"`
	Venue    string    `json:"venue"`
	State    State     `json:"state"`
	Phase    Phase     `json:"phase"`
}

// Involves reports whether the team plays in this game.
func (g TrackedGame) Involves(abbrev string) bool {
	return g.Home.Matches(abbrev) || g.Away.Matches(abbrev)
}

// Opponent returns the other club relative to abbrev.
func (g TrackedGame) Opponent(abbrev string) Team {
	if g.Home.Matches(abbrev) {
		return g.Away
	}
	return g.Home
}

// Schedule is one day of games.
type Schedule struct {
	Date  string        `json:"date"`
	Games []TrackedGame `json:"games"`
}

// Find returns the first game involving the team.
func (s Schedule) Find(abbrev string) (TrackedGame, bool) {
	for _, g := range s.Games {
		if g.Involves(abbrev) {
			return g, true
		}
	}
	return TrackedGame{}, false
}

// FindByID returns the game with the given id.
func (s Schedule) FindByID(id int64) (TrackedGame, bool) {
	for _, g := range s.Games {
		if g.ID == id {
			return g, true
		}
	}
	return TrackedGame{}, false
}
