package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gboparai/nhl-gamebot-sub000/internal/http/middleware"
	"github.com/gboparai/nhl-gamebot-sub000/internal/logging"
)

type errorBody struct {
	Error     string `json:"error"`
	Status    int    `json:"status"`
	RequestID string `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err, logging.FieldStatusCode, status)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	body := errorBody{Error: message, Status: status}
	body.RequestID = middleware.RequestIDFromContext(r.Context())
	if body.RequestID == "" {
		body.RequestID = r.Header.Get("X-Request-ID")
	}
	writeJSON(w, status, body, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
