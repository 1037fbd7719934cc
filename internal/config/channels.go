package config

// ChannelsConfig lists enabled delivery channels and their credentials.
type ChannelsConfig struct {
	Enabled  []string
	Slack    SlackConfig
	Telegram TelegramConfig
	Discord  DiscordConfig
}

type SlackConfig struct {
	Token   string
	Channel string
}

type TelegramConfig struct {
	Token   string
	ChatID  string
	BaseURL string
}

type DiscordConfig struct {
	WebhookURL string
}

func loadChannels() ChannelsConfig {
	return ChannelsConfig{
		Enabled: listEnvOrDefault(envChannels, defaultChannels),
		Slack: SlackConfig{
			Token:   envOrDefault(envSlackToken, ""),
			Channel: envOrDefault(envSlackChannel, ""),
		},
		Telegram: TelegramConfig{
			Token:   envOrDefault(envTelegramToken, ""),
			ChatID:  envOrDefault(envTelegramChatID, ""),
			BaseURL: envOrDefault(envTelegramBaseURL, defaultTelegramBaseURL),
		},
		Discord: DiscordConfig{
			WebhookURL: envOrDefault(envDiscordWebhook, ""),
		},
	}
}
