package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrNotFound  = errors.New("player not found")
	ErrBadShape  = errors.New("unexpected JSON structure")
	ErrEmptyFile = errors.New("blogs file is empty")
)
