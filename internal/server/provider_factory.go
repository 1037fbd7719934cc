package server

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gboparai/nhl-gamebot-sub000/internal/config"
	"github.com/gboparai/nhl-gamebot-sub000/internal/metrics"
	"github.com/gboparai/nhl-gamebot-sub000/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	limited := providers.NewRateLimitedProvider(base, cfg.Provider.RatePerMinute, f.logger)
	return providers.NewRetryingProvider(
		limited,
		f.logger,
		f.metrics,
		providerName(cfg.Provider.Name, base),
		cfg.Provider.RetryAttempts,
		cfg.Provider.RetryBackoff,
	)
}

// NewProvider builds the decorated data provider for one-off commands.
func NewProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.DataProvider {
	return newProviderFactory(logger, recorder).build(cfg)
}

// providerName is the lower-cased label used in metrics and logs. Without a
// configured name the provider is asked, then its type is used.
func providerName(raw string, provider providers.DataProvider) string {
	switch named, ok := provider.(interface{ Name() string }); {
	case raw != "":
		return strings.ToLower(raw)
	case ok:
		return strings.ToLower(named.Name())
	case provider != nil:
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
