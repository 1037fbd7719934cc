// Package delivery fans composed notifications out to the configured chat
// channels.
package delivery

import (
	"context"
	"errors"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/notification"
)

// Channel names.
const (
	ChannelLog      = "log"
	ChannelSlack    = "slack"
	ChannelTelegram = "telegram"
	ChannelDiscord  = "discord"
)

// ErrNoChannels is returned when a dispatcher has nothing to deliver to.
var ErrNoChannels = errors.New("no delivery channels configured")

// Channel posts one notification to a single destination.
type Channel interface {
	Name() string
	Send(ctx context.Context, n notification.Notification) error
}
