package delivery

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gboparai/nhl-gamebot-sub000/internal/config"
)

// ChannelsFromConfig builds the enabled channels. Unknown names are an error
// so a typo in configuration is caught at startup.
func ChannelsFromConfig(cfg config.ChannelsConfig, logger *slog.Logger) ([]Channel, error) {
	channels := make([]Channel, 0, len(cfg.Enabled))
	seen := make(map[string]struct{})
	for _, raw := range cfg.Enabled {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		var (
			ch  Channel
			err error
		)
		switch name {
		case ChannelLog:
			ch = NewLogChannel(logger)
		case ChannelSlack:
			ch, err = NewSlackChannel(cfg.Slack.Token, cfg.Slack.Channel, "")
		case ChannelTelegram:
			ch, err = NewTelegramChannel(cfg.Telegram.Token, cfg.Telegram.ChatID, cfg.Telegram.BaseURL, nil)
		case ChannelDiscord:
			ch, err = NewDiscordChannel(cfg.Discord.WebhookURL, nil)
		default:
			return nil, fmt.Errorf("unknown channel %q", raw)
		}
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}
	return channels, nil
}
