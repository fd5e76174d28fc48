// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/rotoblogs/internal/domain/blog"
	"github.com/okian/rotoblogs/internal/domain/rotation"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Today returns the current rotation day and the records in its window.
	Today(ctx context.Context) (rotation.Day, []blog.Record)

	// All returns the full catalog in source-file order.
	All(ctx context.Context) []blog.Record

	// Count returns the total number of records in the catalog.
	Count(ctx context.Context) int

	// Lookup resolves a case-insensitive player name against today's window.
	Lookup(ctx context.Context, name string) (blog.Record, error)

	// Stats summarizes the full catalog and today's window.
	Stats(ctx context.Context) (all blog.Stats, today blog.Stats)
}

// Record mirrors the read shape returned by catalog queries.
type Record = blog.Record

// Stats mirrors the aggregate shape returned by catalog queries.
type Stats = blog.Stats

// Server wires HTTP routes for the business API.
type Server struct {
	homeHandler   *HomeHandler
	dailyHandler  *DailyHandler
	allHandler    *AllHandler
	playerHandler *PlayerHandler
	statsHandler  *StatsHandler
	healthHandler *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		homeHandler:   NewHomeHandler(deps),
		dailyHandler:  NewDailyHandler(deps),
		allHandler:    NewAllHandler(deps),
		playerHandler: NewPlayerHandler(deps),
		statsHandler:  NewStatsHandler(deps),
		healthHandler: NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/api/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/blogs", MetricsMiddleware(s.dailyHandler.HandleGetDaily, "blogs_daily"))
	mux.HandleFunc("/api/blogs/all", MetricsMiddleware(s.allHandler.HandleGetAll, "blogs_all"))
	mux.HandleFunc("/api/blogs/", MetricsMiddleware(s.playerHandler.HandleGetPlayer, "blogs_player"))
	mux.HandleFunc("/", MetricsMiddleware(s.homeHandler.HandleHome, "home"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
