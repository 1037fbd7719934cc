package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseStrings(t *testing.T) {
	phases := map[Phase]string{
		PhaseIdle:          "Idle",
		PhaseAwaitingStart: "AwaitingStart",
		PhaseLivePlay:      "LivePlay",
		PhaseIntermission:  "Intermission",
		PhaseEnded:         "Ended",
		PhaseRecapPending:  "RecapPending",
		PhaseClosed:        "Closed",
		Phase(99):          "Unknown",
	}
	for phase, want := range phases {
		assert.Equal(t, want, phase.String())
	}
	assert.True(t, PhaseIntermission.Live())
	assert.False(t, PhaseEnded.Live())
}

func TestFactKindNotable(t *testing.T) {
	assert.False(t, KindOther.Notable())
	for _, k := range []FactKind{KindGoal, KindPenalty, KindPeriodStart, KindPeriodEnd, KindGameEnd} {
		assert.True(t, k.Notable(), k.String())
	}
}

func TestScheduleFind(t *testing.T) {
	sched := Schedule{Games: []TrackedGame{
		{ID: 1, Home: Team{Abbrev: "BOS"}, Away: Team{Abbrev: "MTL"}},
		{ID: 2, Home: Team{Abbrev: "TOR"}, Away: Team{Abbrev: "OTT"}},
	}}

	g, ok := sched.Find("ott")
	require.True(t, ok)
	assert.Equal(t, int64(2), g.ID)
	assert.Equal(t, "TOR", g.Opponent("OTT").Abbrev)

	_, ok = sched.Find("VAN")
	assert.False(t, ok)

	_, ok = sched.FindByID(1)
	assert.True(t, ok)
}

func TestFactComplete(t *testing.T) {
	assert.True(t, Fact{Kind: KindPenalty}.Complete())
	assert.False(t, Fact{Kind: KindGoal}.Complete())
	assert.False(t, Fact{Kind: KindGoal, Detail: GoalDetail{}}.Complete())
	assert.True(t, Fact{Kind: KindGoal, Detail: GoalDetail{Scorer: "A. Matthews"}}.Complete())
}

func TestStateFinished(t *testing.T) {
	assert.True(t, StateFinal.Finished())
	assert.True(t, StateOff.Finished())
	assert.False(t, StateLive.Finished())
}

func TestTeamFullName(t *testing.T) {
	assert.Equal(t, "Toronto Maple Leafs", Team{Place: "Toronto", Name: "Maple Leafs"}.FullName())
	assert.Equal(t, "Leafs", Team{Name: "Leafs"}.FullName())
}
