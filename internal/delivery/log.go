package delivery

import (
	"context"
	"log/slog"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/notification"
	"github.com/gboparai/nhl-gamebot-sub000/internal/logging"
)

// LogChannel writes notifications to the structured log. It backs dry runs.
type LogChannel struct {
	logger *slog.Logger
}

func NewLogChannel(logger *slog.Logger) *LogChannel {
	return &LogChannel{logger: logger}
}

func (c *LogChannel) Name() string { return ChannelLog }

func (c *LogChannel) Send(ctx context.Context, n notification.Notification) error {
	logging.Info(logging.FromContext(ctx, c.logger), "notification",
		logging.FieldChannel, ChannelLog,
		"text", n.Text,
		"attachments", n.Attachments,
	)
	return nil
}
