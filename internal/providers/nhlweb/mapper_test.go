package nhlweb

import (
	"testing"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
)

func TestStrength(t *testing.T) {
	cases := []struct {
		code       string
		homeScored bool
		want       string
	}{
		{"1551", true, "ev"},
		{"1451", true, "pp"},
		{"1451", false, "sh"},
		{"0651", true, "en"},
		{"155", true, ""},
	}
	for _, tc := range cases {
		if got := strength(tc.code, tc.homeScored); got != tc.want {
			t.Fatalf("strength(%q, %v) = %q, want %q", tc.code, tc.homeScored, got, tc.want)
		}
	}
}

func TestMapPeriodDefaultsUnknownTypeToRegulation(t *testing.T) {
	if got := mapPeriod(periodDescriptor{Number: 2, PeriodType: "???"}); got.Type != game.PeriodRegulation {
		t.Fatalf("expected regulation, got %s", got.Type)
	}
	if got := mapPeriod(periodDescriptor{Number: 5, PeriodType: "so"}); got.Type != game.PeriodShootout {
		t.Fatalf("expected shootout, got %s", got.Type)
	}
}

func TestMapPlayGoalWithoutDetailsIsIncomplete(t *testing.T) {
	fc := newFeedContext(playByPlayResponse{})
	p := fc.mapPlay(play{EventID: 9, SortOrder: 3, TypeDescKey: "goal"})
	if game.FactFromPlay(p).Complete() {
		t.Fatalf("expected goal without scorer to be incomplete")
	}
}
