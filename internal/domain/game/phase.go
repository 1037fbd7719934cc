package game

// Phase is the lifecycle position of the tracked game. Exactly one is active.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingStart
	PhaseLivePlay
	PhaseIntermission
	PhaseEnded
	PhaseRecapPending
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseAwaitingStart:
		return "AwaitingStart"
	case PhaseLivePlay:
		return "LivePlay"
	case PhaseIntermission:
		return "Intermission"
	case PhaseEnded:
		return "Ended"
	case PhaseRecapPending:
		return "RecapPending"
	case PhaseClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Live reports whether the game is being narrated play by play.
func (p Phase) Live() bool {
	return p == PhaseLivePlay || p == PhaseIntermission
}

// MarshalText renders the phase name in JSON payloads.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
