package http

import (
	nethttp "net/http"

	"college-scores-service/internal/http/handlers"
)

// NewRouter registers the API routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/api/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/games", handler.Games)
	mux.HandleFunc("/api/game/", handler.GameByID)
	mux.HandleFunc("/api/teams", handler.Teams)
	mux.HandleFunc("/api/team-history/", handler.TeamHistory)
	return mux
}
