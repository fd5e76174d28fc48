// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/rotoblogs/internal/domain/blog"
)

// HomeHandler handles service metadata requests on the root path.
type HomeHandler struct {
	deps Dependencies
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(deps Dependencies) *HomeHandler {
	return &HomeHandler{deps: deps}
}

type rotationInfo struct {
	CurrentDayInCycle int    `json:"current_day_in_cycle"`
	Date              string `json:"date"`
	BlogsRange        string `json:"blogs_range"`
}

type homeResponse struct {
	Message            string            `json:"message"`
	TotalBlogsInSystem int               `json:"total_blogs_in_system"`
	BlogsShowingToday  int               `json:"blogs_showing_today"`
	RotationInfo       rotationInfo      `json:"rotation_info"`
	TodaysPlayers      []string          `json:"todays_players"`
	Endpoints          map[string]string `json:"endpoints"`
}

// HandleHome handles GET / requests. The root pattern catches every path no
// other route claimed, so anything but "/" itself is a 404.
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	day, todays := h.deps.Today(r.Context())

	writeJSON(w, http.StatusOK, homeResponse{
		Message:            "Fantasy Football Blogs API - Daily Rotation",
		TotalBlogsInSystem: h.deps.Count(r.Context()),
		BlogsShowingToday:  len(todays),
		RotationInfo: rotationInfo{
			CurrentDayInCycle: day.DayInCycle(),
			Date:              day.DateString(),
			BlogsRange:        day.RangeLabel(),
		},
		TodaysPlayers: blog.Names(todays),
		Endpoints: map[string]string{
			"/api/blogs":               "GET - Today's 5 blogs only",
			"/api/blogs/all":           "GET - All blogs (admin)",
			"/api/blogs/<player_name>": "GET - Specific player (if showing today)",
			"/api/stats":               "GET - Statistics",
		},
	})
}
