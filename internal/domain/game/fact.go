package game

// PeriodType distinguishes regulation, overtime and shootout.
type PeriodType string

const (
	PeriodRegulation PeriodType = "REG"
	PeriodOvertime   PeriodType = "OT"
	PeriodShootout   PeriodType = "SO"
)

// PeriodDescriptor locates a play within the game.
type PeriodDescriptor struct {
	Number int        `json:"number"`
	Type   PeriodType `json:"type"`
}

// FactKind enumerates the notable play kinds. KindOther marks everything the
// bot does not narrate.
type FactKind int

const (
	KindOther FactKind = iota
	KindGoal
	KindPenalty
	KindPeriodStart
	KindPeriodEnd
	KindGameEnd
)

func (k FactKind) String() string {
	switch k {
	case KindGoal:
		return "goal"
	case KindPenalty:
		return "penalty"
	case KindPeriodStart:
		return "period-start"
	case KindPeriodEnd:
		return "period-end"
	case KindGameEnd:
		return "game-end"
	default:
		return "other"
	}
}

// Notable reports whether plays of this kind become facts.
func (k FactKind) Notable() bool {
	switch k {
	case KindGoal, KindPenalty, KindPeriodStart, KindPeriodEnd, KindGameEnd:
		return true
	default:
		return false
	}
}

// FactDetail is the kind-specific payload. Only types in this package implement it.
type FactDetail interface {
	factDetail()
}

// GoalDetail describes a scoring play.
type GoalDetail struct {
	TeamAbbrev  string   `json:"teamAbbrev"`
	Scorer      string   `json:"scorer"`
	ScorerTotal int      `json:"scorerTotal"`
	Assists     []string `json:"assists"`
	HomeScore   int      `json:"homeScore"`
	AwayScore   int      `json:"awayScore"`
	Strength    string   `json:"strength"`
}

func (GoalDetail) factDetail() {}

// PenaltyDetail describes an infraction.
type PenaltyDetail struct {
	TeamAbbrev  string `json:"teamAbbrev"`
	Offender    string `json:"offender"`
	Description string `json:"description"`
	Minutes     int    `json:"minutes"`
	DrawnBy     string `json:"drawnBy"`
}

func (PenaltyDetail) factDetail() {}

// Play is one provider-neutral entry of the live play-by-play feed.
type Play struct {
	ID            string           `json:"id"`
	SortKey       int              `json:"sortKey"`
	Kind          FactKind         `json:"kind"`
	Period        PeriodDescriptor `json:"period"`
	TimeInPeriod  string           `json:"timeInPeriod"`
	TimeRemaining string           `json:"timeRemaining"`
	Detail        FactDetail       `json:"detail,omitempty"`
}

// Fact is a notable play selected for notification.
type Fact struct {
	ID            string           `json:"id"`
	SortKey       int              `json:"sortKey"`
	Kind          FactKind         `json:"kind"`
	Period        PeriodDescriptor `json:"period"`
	TimeInPeriod  string           `json:"timeInPeriod"`
	TimeRemaining string           `json:"timeRemaining"`
	Detail        FactDetail       `json:"detail,omitempty"`
}

// FactFromPlay copies a play into a fact.
func FactFromPlay(p Play) Fact {
	return Fact{
		ID:            p.ID,
		SortKey:       p.SortKey,
		Kind:          p.Kind,
		Period:        p.Period,
		TimeInPeriod:  p.TimeInPeriod,
		TimeRemaining: p.TimeRemaining,
		Detail:        p.Detail,
	}
}

// Complete reports whether the fact carries everything needed to narrate it.
// Upstream publishes goals before the scorer is attached.
func (f Fact) Complete() bool {
	if f.Kind != KindGoal {
		return true
	}
	goal, ok := f.Detail.(GoalDetail)
	return ok && goal.Scorer != ""
}
