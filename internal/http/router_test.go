package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
	"github.com/gboparai/nhl-gamebot-sub000/internal/http/handlers"
	"github.com/gboparai/nhl-gamebot-sub000/internal/lifecycle"
	"github.com/gboparai/nhl-gamebot-sub000/internal/store"
)

func newTestRouter() http.Handler {
	ms := store.NewMemoryStore()
	g := game.TrackedGame{ID: 2026020101}
	ms.Publish(lifecycle.Snapshot{Phase: game.PhaseAwaitingStart, Game: &g}, time.Now())
	h := handlers.NewHandler(ms, handlers.Info{Team: "TOR"}, nil, nil, nil)
	return NewRouter(h, nil, nil)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter()

	cases := map[string]int{
		"/health":           http.StatusOK,
		"/ready":            http.StatusOK,
		"/status":           http.StatusOK,
		"/games":            http.StatusOK,
		"/games/2026020101": http.StatusOK,
		"/games/42":         http.StatusNotFound,
		"/does-not-exist":   http.StatusNotFound,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("route %s missing request id header", path)
		}
	}
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/status", nil)
	rr := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}

func TestRouterAddsCORSHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set("Origin", "https://example.com")
	rr := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", got)
	}
}
