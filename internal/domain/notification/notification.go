package notification

// Notification is the channel-agnostic payload handed to delivery.
type Notification struct {
	Text        string   `json:"text"`
	Attachments []string `json:"attachments,omitempty"`
}

// Empty reports whether there is nothing to send.
func (n Notification) Empty() bool {
	return n.Text == "" && len(n.Attachments) == 0
}

// GraphicKind selects a card layout.
type GraphicKind int

const (
	GraphicPregame GraphicKind = iota
	GraphicIntermission
	GraphicFinal
)

func (k GraphicKind) String() string {
	switch k {
	case GraphicPregame:
		return "pregame"
	case GraphicIntermission:
		return "intermission"
	case GraphicFinal:
		return "final"
	default:
		return "unknown"
	}
}

// GraphicRequest is the data a renderer draws onto a card.
type GraphicRequest struct {
	Kind     GraphicKind
	GameID   int64
	Title    string
	Subtitle string
	Lines    []string
}

// Message is composed text plus an optional card to render and attach.
type Message struct {
	Text    string
	Graphic *GraphicRequest
}
