package providers

import (
	"context"
	"log/slog"

	"github.com/gboparai/nhl-gamebot-sub000/internal/logging"
)

// providerLogger prefers the request-scoped logger and tags it with the provider name.
// Returns nil when neither logger is set.
func providerLogger(ctx context.Context, fallback *slog.Logger, provider string) *slog.Logger {
	return logging.With(logging.FromContext(ctx, fallback), logging.FieldProvider, provider)
}
