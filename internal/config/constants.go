package config

import "time"

const (
	envStatusPort = "STATUS_PORT"
	envLogLevel   = "LOG_LEVEL"
	envLogFormat  = "LOG_FORMAT"

	envTeamAbbrev   = "TEAM_ABBREV"
	envTeamTimezone = "TEAM_TIMEZONE"

	envProvider          = "PROVIDER"
	envNHLBaseURL        = "NHL_API_BASE_URL"
	envProviderRate      = "PROVIDER_RATE_PER_MINUTE"
	envProviderAttempts  = "PROVIDER_RETRY_ATTEMPTS"
	envProviderBackoff   = "PROVIDER_RETRY_BACKOFF"
	envProviderTimeout   = "PROVIDER_HTTP_TIMEOUT"
	envOfficialsURL      = "OFFICIALS_URL"
	envOfficialsRequired = "OFFICIALS_REQUIRED"

	envIdleWait           = "IDLE_WAIT"
	envPregameWindow      = "PREGAME_WINDOW"
	envAwaitingWait       = "AWAITING_WAIT"
	envOfficialsRetryWait = "OFFICIALS_RETRY_WAIT"
	envLiveWait           = "LIVE_WAIT"
	envIntermissionWait   = "INTERMISSION_WAIT"
	envRecapRetryWait     = "RECAP_RETRY_WAIT"
	envCooldownWait       = "COOLDOWN_WAIT"
	envRecapDeadline      = "RECAP_DEADLINE"
	envGoalHoldCycles     = "GOAL_HOLD_CYCLES"

	envRegulationPeriods = "REGULATION_PERIODS"
	envGoalEmoji         = "GOAL_EMOJI"
	envHashtags          = "HASHTAGS"

	envChannels        = "CHANNELS"
	envSlackToken      = "SLACK_BOT_TOKEN"
	envSlackChannel    = "SLACK_CHANNEL"
	envTelegramToken   = "TELEGRAM_BOT_TOKEN"
	envTelegramChatID  = "TELEGRAM_CHAT_ID"
	envTelegramBaseURL = "TELEGRAM_API_BASE_URL"
	envDiscordWebhook  = "DISCORD_WEBHOOK_URL"

	envGraphicsEnabled = "GRAPHICS_ENABLED"
	envGraphicsDir     = "GRAPHICS_DIR"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultStatusPort = "4000"
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"

	defaultTeamAbbrev   = "TOR"
	defaultTeamTimezone = "America/Toronto"

	defaultProvider         = "nhlweb"
	defaultNHLBaseURL       = "https://api-web.nhle.com/v1"
	defaultProviderRate     = 60
	defaultProviderAttempts = 3
	defaultProviderBackoff  = 500 * time.Millisecond
	defaultProviderTimeout  = 10 * time.Second
	defaultOfficialsURL     = ""
	defaultOfficialsNeeded  = true

	defaultIdleWait           = 3 * time.Hour
	defaultPregameWindow      = time.Hour
	defaultAwaitingWait       = 30 * time.Minute
	defaultOfficialsRetryWait = 5 * time.Minute
	defaultLiveWait           = 10 * time.Second
	defaultIntermissionWait   = time.Minute
	defaultRecapRetryWait     = time.Minute
	defaultCooldownWait       = 6 * time.Hour
	defaultRecapDeadline      = 3 * time.Hour
	defaultGoalHoldCycles     = 3

	defaultRegulationPeriods = 3
	defaultGoalEmoji         = "🚨"
	defaultChannels          = "log"
	defaultTelegramBaseURL   = "https://api.telegram.org"

	defaultGraphicsEnabled = true
	defaultGraphicsDir     = "data/graphics"

	defaultMetricsPort = "9090"
	defaultServiceName = "nhl-gamebot"
)
