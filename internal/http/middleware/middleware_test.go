package middleware

import (
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/gboparai/nhl-gamebot-sub000/internal/metrics"
	"github.com/gboparai/nhl-gamebot-sub000/internal/testutil"
)

func TestLoggingSetsRequestID(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected request id in context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	rr := testutil.Serve(Logging(logger, rec)(next), http.MethodGet, "/status", nil)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
	if !strings.Contains(buf.String(), "status_code=418") {
		t.Fatalf("expected status in log, got %q", buf.String())
	}
}

func TestLoggingKeepsValidIncomingID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got != "abc-123" {
			t.Fatalf("expected incoming id, got %q", got)
		}
	})
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")

	rr := testutil.ServeRequest(Logging(nil, nil)(next), req)
	if got := rr.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected echoed id, got %q", got)
	}
}

func TestLoggingReplacesInvalidID(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "bad id")

	rr := testutil.ServeRequest(Logging(nil, nil)(http.NotFoundHandler()), req)
	if got := rr.Header().Get("X-Request-ID"); got == "" || got == "bad id" {
		t.Fatalf("expected sanitized id, got %q", got)
	}
}

func TestRoutePattern(t *testing.T) {
	var got string
	r := chi.NewRouter()
	r.Get("/games/{id}", func(w http.ResponseWriter, req *http.Request) {
		got = routePattern(req)
	})
	testutil.Serve(r, http.MethodGet, "/games/2026020101", nil)
	if got != "/games/{id}" {
		t.Fatalf("expected chi pattern, got %q", got)
	}

	req, _ := http.NewRequest(http.MethodGet, "/nowhere", nil)
	if got := routePattern(req); got != "unmatched" {
		t.Fatalf("expected unmatched, got %q", got)
	}
}
