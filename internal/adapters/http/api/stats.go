// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// StatsHandler handles aggregate statistics requests.
type StatsHandler struct {
	deps Dependencies
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(deps Dependencies) *StatsHandler {
	return &StatsHandler{deps: deps}
}

type statsResponse struct {
	TotalBlogsInSystem int            `json:"total_blogs_in_system"`
	BlogsShowingToday  int            `json:"blogs_showing_today"`
	TotalWordsAllBlogs int            `json:"total_words_all_blogs"`
	WordsInTodaysBlogs int            `json:"words_in_todays_blogs"`
	Positions          map[string]int `json:"positions"`
	RotationSchedule   string         `json:"rotation_schedule"`
}

type emptyStatsResponse struct {
	TotalBlogs int    `json:"total_blogs"`
	Message    string `json:"message"`
}

// HandleStats handles GET /api/stats requests. An empty catalog yields a
// zero-count body rather than an error.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	all, today := h.deps.Stats(r.Context())
	if all.Count == 0 {
		writeJSON(w, http.StatusOK, emptyStatsResponse{
			TotalBlogs: 0,
			Message:    "No blogs loaded",
		})
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		TotalBlogsInSystem: all.Count,
		BlogsShowingToday:  today.Count,
		TotalWordsAllBlogs: all.Words,
		WordsInTodaysBlogs: today.Words,
		Positions:          all.Positions,
		RotationSchedule:   "New 5 blogs every 24 hours",
	})
}
