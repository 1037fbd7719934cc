package config

import "strings"

// Config holds runtime configuration for the bot.
type Config struct {
	StatusPort string
	Log        LogConfig
	Team       TeamConfig
	Provider   ProviderConfig
	Officials  OfficialsConfig
	Cadence    CadenceConfig
	Game       GameConfig
	Channels   ChannelsConfig
	Graphics   GraphicsConfig
	Metrics    MetricsConfig
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string
	Format string
}

// TeamConfig identifies the tracked team and its local timezone.
type TeamConfig struct {
	Abbrev   string
	Timezone string
}

// GameConfig carries league rules and message decoration.
type GameConfig struct {
	RegulationPeriods int
	GoalEmoji         string
	Hashtags          []string
}

// GraphicsConfig controls card rendering.
type GraphicsConfig struct {
	Enabled bool
	Dir     string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		StatusPort: envOrDefault(envStatusPort, defaultStatusPort),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Team: TeamConfig{
			Abbrev:   strings.ToUpper(envOrDefault(envTeamAbbrev, defaultTeamAbbrev)),
			Timezone: envOrDefault(envTeamTimezone, defaultTeamTimezone),
		},
		Provider:  loadProvider(),
		Officials: loadOfficials(),
		Cadence:   loadCadence(),
		Game: GameConfig{
			RegulationPeriods: intEnvOrDefault(envRegulationPeriods, defaultRegulationPeriods),
			GoalEmoji:         envOrDefault(envGoalEmoji, defaultGoalEmoji),
			Hashtags:          listEnvOrDefault(envHashtags, ""),
		},
		Channels: loadChannels(),
		Graphics: GraphicsConfig{
			Enabled: boolEnvOrDefault(envGraphicsEnabled, defaultGraphicsEnabled),
			Dir:     envOrDefault(envGraphicsDir, defaultGraphicsDir),
		},
		Metrics: loadMetrics(),
	}
}
