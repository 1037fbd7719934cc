package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/gboparai/nhl-gamebot-sub000/internal/metrics"
)

// NewTelemetry builds an exporter-backed recorder with its scrape handler.
// The meter provider is shut down when the test ends.
func NewTelemetry(t *testing.T) (*metrics.Recorder, http.Handler) {
	t.Helper()
	rec, handler, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{
		Enabled:     true,
		ServiceName: "nhl-gamebot-test",
	})
	if err != nil {
		t.Fatalf("telemetry setup: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return rec, handler
}
