// Package handlers implements the public API surface.
package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"college-scores-service/internal/app/games"
	"college-scores-service/internal/app/teams"
	"college-scores-service/internal/domain"
	"college-scores-service/internal/logging"
	"college-scores-service/internal/poller"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the application services.
type Handler struct {
	games          *games.Service
	teams          *teams.Service
	history        games.HistoryResolver
	logger         *slog.Logger
	now            nowFunc
	statusFn       func() poller.Status
	oddsConfigured bool
}

// Config collects the handler's collaborators.
type Config struct {
	Games          *games.Service
	Teams          *teams.Service
	History        games.HistoryResolver
	Logger         *slog.Logger
	Status         func() poller.Status
	OddsConfigured bool
}

// NewHandler constructs a Handler with defaults.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		games:          cfg.Games,
		teams:          cfg.Teams,
		history:        cfg.History,
		logger:         cfg.Logger,
		now:            time.Now,
		statusFn:       cfg.Status,
		oddsConfigured: cfg.OddsConfigured,
	}
}

// Health reports the service health and whether the odds key is configured.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", h.logger)
		return
	}
	resp := map[string]any{
		"status":        "ok",
		"timestamp":     h.now().UTC().Format(time.RFC3339),
		"apiConfigured": h.oddsConfigured,
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Ready reports readiness for traffic (e.g. for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, "not_ready", "first aggregation has not completed", h.logger)
}

// Games returns the current snapshot across all sports.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", h.logger)
		return
	}
	list := h.games.Games()
	if list == nil {
		list = []domain.Game{}
	}
	if logger := loggerFromContext(r, nil); logger != nil {
		logger.Info("served games", slog.Int(logging.FieldCount, len(list)))
	}
	writeJSON(w, nethttp.StatusOK, list, h.logger)
}

// GameByID returns one game with both teams' recent history attached.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", h.logger)
		return
	}
	id, ok := pathSuffix(r.URL.Path, "/api/game/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid_game_id", "invalid game id", h.logger)
		return
	}

	detail, found := h.games.GameByID(r.Context(), id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "game_not_found", "game not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, detail, h.logger)
}

// Teams returns the current team lists across all sports.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", h.logger)
		return
	}
	list := h.teams.Teams(r.Context())
	if list == nil {
		list = []domain.Team{}
	}
	writeJSON(w, nethttp.StatusOK, list, h.logger)
}

// TeamHistory returns a team's recent completed games. The sport query
// parameter is required because team IDs are only unique per sport.
func (h *Handler) TeamHistory(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method_not_allowed", "method not allowed", h.logger)
		return
	}
	teamID, ok := pathSuffix(r.URL.Path, "/api/team-history/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid_team_id", "invalid team id", h.logger)
		return
	}

	sportKey := r.URL.Query().Get("sport")
	if sportKey == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing_sport", "sport query parameter is required", h.logger)
		return
	}
	sport, found := domain.SportByKey(sportKey)
	if !found {
		writeError(w, r, nethttp.StatusBadRequest, "unknown_sport", "unknown sport: "+sportKey, h.logger)
		return
	}

	history := h.history.TeamHistory(r.Context(), sport, teamID)
	writeJSON(w, nethttp.StatusOK, history, h.logger)
}

// pathSuffix extracts and unescapes the trailing path segment after prefix.
func pathSuffix(path, prefix string) (string, bool) {
	raw := strings.TrimPrefix(path, prefix)
	if raw == "" || raw == path {
		return "", false
	}
	value, err := url.PathUnescape(raw)
	if err != nil || value == "" || strings.ContainsAny(value, " \t/") {
		return "", false
	}
	return value, true
}
