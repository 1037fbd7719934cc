package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsPlainRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil || rec.otel != nil {
		t.Fatalf("expected recorder without exporters")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestSetupExportsLifecycleMetrics(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, ServiceName: "nhl-gamebot"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	rec.RecordHTTPRequest(http.MethodGet, "/status", http.StatusOK, time.Millisecond)
	rec.RecordCycle("LivePlay", time.Millisecond, nil)
	rec.RecordPhaseTransition("Idle", "AwaitingStart")
	rec.RecordDelivery("log", time.Millisecond, errors.New("closed"))
	rec.RecordProviderAttempt("nhlweb", time.Millisecond, nil)
	rec.RecordRateLimit("nhlweb", time.Second)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rr.Body)
	for _, want := range []string{"lifecycle_phase_transitions_total", `to="AwaitingStart"`, "notifications_total", `outcome="failed"`} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in scrape output", want)
		}
	}
}

func TestSetupPropagatesReaderFailure(t *testing.T) {
	original := promReaderFactory
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) { return nil, nil, errors.New("registry") }
	defer func() { promReaderFactory = original }()

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected reader error")
	}
}
