package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gboparai/nhl-gamebot-sub000/internal/logging"
	"github.com/gboparai/nhl-gamebot-sub000/internal/metrics"
	"github.com/gboparai/nhl-gamebot-sub000/internal/poller"
	"github.com/gboparai/nhl-gamebot-sub000/internal/store"
)

type nowFunc func() time.Time

// SnapshotSource is the read side of the snapshot store.
type SnapshotSource interface {
	Latest() (store.Entry, bool)
	ListGames() []store.Entry
	GetGame(id int64) (store.Entry, bool)
}

// Info describes the running bot.
type Info struct {
	Team     string   `json:"team"`
	Provider string   `json:"provider"`
	Channels []string `json:"channels"`
	Version  string   `json:"version,omitempty"`
}

// Handler serves the read-only status API.
type Handler struct {
	snaps    SnapshotSource
	logger   *slog.Logger
	recorder *metrics.Recorder
	info     Info
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn and recorder may be nil.
func NewHandler(snaps SnapshotSource, info Info, logger *slog.Logger, recorder *metrics.Recorder, statusFn func() poller.Status) *Handler {
	return &Handler{
		snaps:    snaps,
		logger:   logger,
		recorder: recorder,
		info:     info,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// StatusResponse is the payload of GET /status.
type StatusResponse struct {
	Info      Info                      `json:"info"`
	Now       time.Time                 `json:"now"`
	Current   *store.Entry              `json:"current,omitempty"`
	Loop      *poller.Status            `json:"loop,omitempty"`
	Lifecycle metrics.LifecycleSnapshot `json:"lifecycle"`
}

// Health reports liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the lifecycle loop is stepping successfully.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	st := h.statusFn()
	if st.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := st.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Status returns the current phase, tracked game and loop health.
func (h *Handler) Status(w nethttp.ResponseWriter, r *nethttp.Request) {
	resp := StatusResponse{
		Info:      h.info,
		Now:       h.now().UTC(),
		Lifecycle: h.recorder.Lifecycle(),
	}
	if h.snaps != nil {
		if entry, ok := h.snaps.Latest(); ok {
			resp.Current = &entry
		}
	}
	if h.statusFn != nil {
		st := h.statusFn()
		resp.Loop = &st
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Games lists the last snapshot of every game tracked since startup.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	games := []store.Entry{}
	if h.snaps != nil {
		games = h.snaps.ListGames()
	}
	logging.Debug(loggerFromContext(r, h.logger), "served tracked games", logging.FieldCount, len(games))
	writeJSON(w, nethttp.StatusOK, map[string]any{"games": games}, h.logger)
}

// GameByID returns the last snapshot of one tracked game.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}
	if h.snaps == nil {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}
	entry, ok := h.snaps.GetGame(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, entry, h.logger)
}

// NotFound renders unknown routes as JSON.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed renders wrong-method requests as JSON.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
