package smoketest

import "time"

// Config holds configuration for the smoke test
type Config struct {
	BaseURL    string        // Base URL of the service; empty skips the live checks
	NumBlogs   int           // Number of catalog records to generate; 0 skips generation
	Workers    int           // Number of concurrent lookup workers
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // Output file for the generated catalog
	LogFile    string        // Log file for test output
	Verbose    bool          // Enable verbose logging
}

// Blog is a generated catalog record
type Blog struct {
	BlogID     string `json:"blog_id"`
	PlayerName string `json:"player_name"`
	Position   string `json:"position"`
	Team       string `json:"team"`
	WordCount  int    `json:"word_count"`
}

// catalogFile is the on-disk shape the service loads at startup
type catalogFile struct {
	Blogs []Blog `json:"blogs"`
}

// dailyResponse mirrors GET /api/blogs
type dailyResponse struct {
	Date         string `json:"date"`
	DayInCycle   int    `json:"day_in_cycle"`
	Count        int    `json:"count"`
	Blogs        []Blog `json:"blogs"`
	NextRotation string `json:"next_rotation"`
}

// allResponse mirrors GET /api/blogs/all
type allResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
	Blogs   []Blog `json:"blogs"`
}

// statsResponse mirrors GET /api/stats
type statsResponse struct {
	TotalBlogs  int            `json:"total_blogs_in_system"`
	BlogsToday  int            `json:"blogs_showing_today"`
	TotalWords  int            `json:"total_words_all_blogs"`
	WordsToday  int            `json:"words_in_todays_blogs"`
	Positions   map[string]int `json:"positions"`
	RotationMsg string         `json:"rotation_schedule"`
}

// Stats holds smoke test statistics
type Stats struct {
	BlogsGenerated    int
	LookupsAttempted  int
	LookupsSuccessful int
	LookupsFailed     int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
