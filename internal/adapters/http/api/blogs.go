// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	repository "github.com/okian/rotoblogs/internal/adapters/repository"
	app "github.com/okian/rotoblogs/internal/app"
	"github.com/okian/rotoblogs/internal/domain/blog"
)

// nextRotationHint is a fixed string promised by the API contract.
const nextRotationHint = "Tomorrow at midnight UTC"

// DailyHandler handles requests for today's rotation window.
type DailyHandler struct {
	deps Dependencies
}

// NewDailyHandler creates a new daily window handler.
func NewDailyHandler(deps Dependencies) *DailyHandler {
	return &DailyHandler{deps: deps}
}

type dailyResponse struct {
	Date         string   `json:"date"`
	DayInCycle   int      `json:"day_in_cycle"`
	Count        int      `json:"count"`
	Blogs        []Record `json:"blogs"`
	NextRotation string   `json:"next_rotation"`
}

// HandleGetDaily handles GET /api/blogs requests.
func (h *DailyHandler) HandleGetDaily(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	day, todays := h.deps.Today(r.Context())
	writeJSON(w, http.StatusOK, dailyResponse{
		Date:         day.DateString(),
		DayInCycle:   day.DayInCycle(),
		Count:        len(todays),
		Blogs:        orEmpty(todays),
		NextRotation: nextRotationHint,
	})
}

// AllHandler handles requests for the unfiltered catalog.
type AllHandler struct {
	deps Dependencies
}

// NewAllHandler creates a new full-catalog handler.
func NewAllHandler(deps Dependencies) *AllHandler {
	return &AllHandler{deps: deps}
}

type allResponse struct {
	Message string   `json:"message"`
	Count   int      `json:"count"`
	Blogs   []Record `json:"blogs"`
}

// HandleGetAll handles GET /api/blogs/all requests.
func (h *AllHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	records := h.deps.All(r.Context())
	writeJSON(w, http.StatusOK, allResponse{
		Message: "All blogs (admin view)",
		Count:   len(records),
		Blogs:   orEmpty(records),
	})
}

// PlayerHandler handles single-player lookups scoped to today's window.
type PlayerHandler struct {
	deps Dependencies
}

// NewPlayerHandler creates a new player lookup handler.
func NewPlayerHandler(deps Dependencies) *PlayerHandler {
	return &PlayerHandler{deps: deps}
}

type notTodayResponse struct {
	Error         string   `json:"error"`
	Message       string   `json:"message"`
	TodaysPlayers []string `json:"todays_players"`
}

type notFoundResponse struct {
	Error string `json:"error"`
}

// HandleGetPlayer handles GET /api/blogs/{player_name} requests. Lookup is
// case-insensitive and restricted to today's window; a player elsewhere in
// the catalog gets a distinct 404 body.
func (h *PlayerHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /api/blogs/. ServeMux has already
	// decoded any percent escapes in the path.
	name := strings.TrimPrefix(r.URL.Path, "/api/blogs/")
	if name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	record, err := h.deps.Lookup(r.Context(), name)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, record)
	case errors.Is(err, app.ErrNotShowingToday):
		_, todays := h.deps.Today(r.Context())
		writeJSON(w, http.StatusNotFound, notTodayResponse{
			Error:         "Player not showing today",
			Message:       fmt.Sprintf("%s is not in today's rotation", name),
			TodaysPlayers: blog.Names(todays),
		})
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, notFoundResponse{Error: "Player not found"})
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
