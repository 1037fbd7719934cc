package server

import (
	"log/slog"
	"strings"

	"github.com/gboparai/nhl-gamebot-sub000/internal/config"
	"github.com/gboparai/nhl-gamebot-sub000/internal/logging"
	"github.com/gboparai/nhl-gamebot-sub000/internal/providers"
	"github.com/gboparai/nhl-gamebot-sub000/internal/providers/fixture"
	"github.com/gboparai/nhl-gamebot-sub000/internal/providers/nhlweb"
	"github.com/gboparai/nhl-gamebot-sub000/internal/providers/officials"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch strings.ToLower(cfg.Provider.Name) {
	case "nhlweb", "":
		return nhlweb.NewClient(nhlweb.Config{
			BaseURL: cfg.Provider.BaseURL,
			Timeout: cfg.Provider.Timeout,
		})
	case "fixture":
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", logging.FieldProvider, cfg.Provider.Name)
		return fixture.New()
	}
}

// selectOfficials returns the officiating source. Without a URL, or when the
// gate is disabled, every crew counts as confirmed.
func selectOfficials(cfg config.Config, logger *slog.Logger) providers.OfficialsProvider {
	if !cfg.Officials.Required || cfg.Officials.URL == "" {
		if cfg.Officials.Required {
			logging.Warn(logger, "officials gate enabled without OFFICIALS_URL, skipping the gate")
		}
		return officials.Static{}
	}
	return officials.NewClient(officials.Config{BaseURL: cfg.Officials.URL})
}
