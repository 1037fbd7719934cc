package lifecycle

import "github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"

// NoHighWater is the high-water key of an empty ledger.
const NoHighWater = -1

// Ledger remembers which facts were notified during one game session.
// The high-water key never decreases until Reset.
type Ledger struct {
	sent      map[string]struct{}
	highWater int
}

func NewLedger() *Ledger {
	return &Ledger{sent: make(map[string]struct{}), highWater: NoHighWater}
}

// Record marks the fact as notified and raises the high-water key.
func (l *Ledger) Record(f game.Fact) {
	l.sent[f.ID] = struct{}{}
	if f.SortKey > l.highWater {
		l.highWater = f.SortKey
	}
}

// AlreadySent reports whether id was recorded this session.
func (l *Ledger) AlreadySent(id string) bool {
	_, ok := l.sent[id]
	return ok
}

// HighWaterKey returns the largest recorded sort key, or NoHighWater.
func (l *Ledger) HighWaterKey() int {
	return l.highWater
}

// Len returns the number of recorded ids.
func (l *Ledger) Len() int {
	return len(l.sent)
}

// Reset clears the ledger for a new session.
func (l *Ledger) Reset() {
	l.sent = make(map[string]struct{})
	l.highWater = NoHighWater
}
