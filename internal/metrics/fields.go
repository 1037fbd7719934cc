package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrPhase    = "phase"
	AttrFrom     = "from"
	AttrTo       = "to"
	AttrChannel  = "channel"
	AttrOutcome  = "outcome"
)

const (
	outcomeDelivered = "delivered"
	outcomeFailed    = "failed"
)
