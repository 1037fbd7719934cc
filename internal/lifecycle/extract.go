package lifecycle

import (
	"sort"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
)

// ExtractNewFacts selects notable plays above the high-water key that were
// not already sent, in ascending sort-key order.
func ExtractNewFacts(plays []game.Play, highWater int, alreadySent func(id string) bool) []game.Fact {
	facts := make([]game.Fact, 0)
	seen := make(map[string]struct{})
	for _, p := range plays {
		if p.SortKey <= highWater || !p.Kind.Notable() {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		if alreadySent != nil && alreadySent(p.ID) {
			continue
		}
		seen[p.ID] = struct{}{}
		facts = append(facts, game.FactFromPlay(p))
	}
	sort.SliceStable(facts, func(i, j int) bool {
		return facts[i].SortKey < facts[j].SortKey
	})
	return facts
}

// HoldIncomplete splits facts at the first one that cannot be narrated yet.
// Everything from that point is held so ordering is preserved.
func HoldIncomplete(facts []game.Fact) (ready, held []game.Fact) {
	for i, f := range facts {
		if !f.Complete() {
			return facts[:i], facts[i:]
		}
	}
	return facts, nil
}
