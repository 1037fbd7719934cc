package server

import (
	"log/slog"

	"github.com/gboparai/nhl-gamebot-sub000/internal/compose"
	"github.com/gboparai/nhl-gamebot-sub000/internal/config"
	"github.com/gboparai/nhl-gamebot-sub000/internal/delivery"
	"github.com/gboparai/nhl-gamebot-sub000/internal/lifecycle"
	"github.com/gboparai/nhl-gamebot-sub000/internal/metrics"
	"github.com/gboparai/nhl-gamebot-sub000/internal/providers"
	"github.com/gboparai/nhl-gamebot-sub000/internal/render"
	"github.com/gboparai/nhl-gamebot-sub000/internal/timeutil"
)

// Options adjust wiring for a run.
type Options struct {
	// DryRun replaces every configured channel with the log channel.
	DryRun  bool
	Version string
}

func buildDispatcher(cfg config.Config, opts Options, logger *slog.Logger, recorder *metrics.Recorder) (*delivery.Dispatcher, error) {
	if opts.DryRun {
		return delivery.NewDispatcher([]delivery.Channel{delivery.NewLogChannel(logger)}, logger, recorder), nil
	}
	channels, err := delivery.ChannelsFromConfig(cfg.Channels, logger)
	if err != nil {
		return nil, err
	}
	return delivery.NewDispatcher(channels, logger, recorder), nil
}

func buildComposer(cfg config.Config) compose.Composer {
	return compose.Composer{
		Team:              cfg.Team.Abbrev,
		RegulationPeriods: cfg.Game.RegulationPeriods,
		Glyph:             cfg.Game.GoalEmoji,
		Hashtags:          cfg.Game.Hashtags,
		Location:          timeutil.ResolveTimezone(cfg.Team.Timezone),
	}
}

func buildMachine(cfg config.Config, provider providers.DataProvider, officials providers.OfficialsProvider, notifier lifecycle.Notifier, logger *slog.Logger, recorder *metrics.Recorder) *lifecycle.Machine {
	deps := lifecycle.Deps{
		Provider:  provider,
		Officials: officials,
		Notifier:  notifier,
		Composer:  buildComposer(cfg),
		Logger:    logger,
		Metrics:   recorder,
	}
	if cfg.Graphics.Enabled {
		deps.Renderer = render.NewCardRenderer(cfg.Graphics.Dir)
	}

	c := cfg.Cadence
	return lifecycle.New(deps, lifecycle.Config{
		Team:               cfg.Team.Abbrev,
		Location:           timeutil.ResolveTimezone(cfg.Team.Timezone),
		IdleWait:           c.IdleWait,
		PregameWindow:      c.PregameWindow,
		AwaitingWait:       c.AwaitingWait,
		OfficialsRetryWait: c.OfficialsRetryWait,
		LiveWait:           c.LiveWait,
		IntermissionWait:   c.IntermissionWait,
		RecapRetryWait:     c.RecapRetryWait,
		CooldownWait:       c.CooldownWait,
		RecapDeadline:      c.RecapDeadline,
		GoalHoldCycles:     c.GoalHoldCycles,
	})
}
