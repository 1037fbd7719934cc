package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
	"github.com/gboparai/nhl-gamebot-sub000/internal/lifecycle"
	"github.com/gboparai/nhl-gamebot-sub000/internal/metrics"
	"github.com/gboparai/nhl-gamebot-sub000/internal/poller"
	"github.com/gboparai/nhl-gamebot-sub000/internal/store"
	"github.com/gboparai/nhl-gamebot-sub000/internal/testutil"
)

func seededStore() *store.MemoryStore {
	s := store.NewMemoryStore()
	g := testutil.SampleGame(2026020101, time.Date(2026, 10, 17, 23, 0, 0, 0, time.UTC))
	g.Phase = game.PhaseLivePlay
	s.Publish(lifecycle.Snapshot{Phase: game.PhaseLivePlay, Game: &g, HighWaterKey: 120, LedgerSize: 4}, time.Date(2026, 10, 17, 23, 30, 0, 0, time.UTC))
	return s
}

func withID(h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Get("/games/{id}", h)
	return r
}

func TestHealth(t *testing.T) {
	h := NewHandler(nil, Info{}, nil, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := NewHandler(nil, Info{}, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp errorBody
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Error != "shutting down" {
		t.Fatalf("unexpected error %q", resp.Error)
	}
}

func TestReady(t *testing.T) {
	ready := NewHandler(nil, Info{}, nil, nil, func() poller.Status {
		return poller.Status{LastSuccess: time.Now()}
	})
	testutil.AssertStatus(t, testutil.Serve(http.HandlerFunc(ready.Ready), http.MethodGet, "/ready", nil), http.StatusOK)

	failing := NewHandler(nil, Info{}, nil, nil, func() poller.Status {
		return poller.Status{ConsecutiveFailures: 4, LastError: "schedule fetch failed", LastSuccess: time.Now()}
	})
	rr := testutil.Serve(http.HandlerFunc(failing.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp errorBody
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Error != "schedule fetch failed" {
		t.Fatalf("unexpected error %q", resp.Error)
	}

	starting := NewHandler(nil, Info{}, nil, nil, func() poller.Status { return poller.Status{} })
	rr = testutil.Serve(http.HandlerFunc(starting.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	noLoop := NewHandler(nil, Info{}, nil, nil, nil)
	testutil.AssertStatus(t, testutil.Serve(http.HandlerFunc(noLoop.Ready), http.MethodGet, "/ready", nil), http.StatusOK)
}

func TestStatusIncludesCurrentSnapshot(t *testing.T) {
	rec := metrics.NewRecorder()
	rec.RecordCycle("LivePlay", time.Millisecond, nil)
	h := NewHandler(seededStore(), Info{Team: "TOR", Provider: "nhlweb", Channels: []string{"log"}}, nil, rec, func() poller.Status {
		return poller.Status{Steps: 7}
	})
	h.now = testutil.NowAt(time.Date(2026, 10, 17, 23, 31, 0, 0, time.UTC))

	rr := testutil.Serve(http.HandlerFunc(h.Status), http.MethodGet, "/status", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp struct {
		Info    Info `json:"info"`
		Current struct {
			Snapshot struct {
				Phase        string `json:"phase"`
				HighWaterKey int    `json:"highWaterKey"`
				Game         struct {
					ID int64 `json:"id"`
				} `json:"game"`
			} `json:"snapshot"`
		} `json:"current"`
		Loop      poller.Status `json:"loop"`
		Lifecycle struct {
			Cycles int
		} `json:"lifecycle"`
	}
	testutil.DecodeJSON(t, rr, &resp)

	if resp.Info.Team != "TOR" {
		t.Fatalf("unexpected info %+v", resp.Info)
	}
	if resp.Current.Snapshot.Phase != "LivePlay" || resp.Current.Snapshot.Game.ID != 2026020101 {
		t.Fatalf("unexpected current %+v", resp.Current)
	}
	if resp.Current.Snapshot.HighWaterKey != 120 {
		t.Fatalf("unexpected high water %d", resp.Current.Snapshot.HighWaterKey)
	}
	if resp.Loop.Steps != 7 {
		t.Fatalf("unexpected loop %+v", resp.Loop)
	}
	if resp.Lifecycle.Cycles != 1 {
		t.Fatalf("unexpected lifecycle %+v", resp.Lifecycle)
	}
}

func TestStatusWithoutSnapshot(t *testing.T) {
	h := NewHandler(store.NewMemoryStore(), Info{}, nil, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Status), http.MethodGet, "/status", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	if _, ok := resp["current"]; ok {
		t.Fatalf("expected no current snapshot, got %v", resp["current"])
	}
}

func TestGames(t *testing.T) {
	h := NewHandler(seededStore(), Info{}, nil, nil, nil)
	var resp struct {
		Games []store.Entry `json:"games"`
	}
	testutil.GetJSON(t, http.HandlerFunc(h.Games), "/games", http.StatusOK, &resp)
	if len(resp.Games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(resp.Games))
	}
}

func TestGameByID(t *testing.T) {
	h := NewHandler(seededStore(), Info{}, nil, nil, nil)
	router := withID(h.GameByID)

	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/games/2026020101", nil), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/games/1", nil), http.StatusNotFound)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/games/abc", nil), http.StatusBadRequest)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/games/-5", nil), http.StatusBadRequest)
}

func TestGameByIDWithoutStore(t *testing.T) {
	h := NewHandler(nil, Info{}, nil, nil, nil)
	rr := testutil.Serve(withID(h.GameByID), http.MethodGet, "/games/2026020101", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
