package service

import "errors"

// Sentinel kinds for query outcomes.
var (
	// ErrNotShowingToday marks a player that exists in the catalog but is
	// outside today's rotation window.
	ErrNotShowingToday = errors.New("player not showing today")
)
