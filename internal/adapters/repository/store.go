// Package repository loads the blog catalog from its source file and serves
// reads over the resulting immutable state.
package repository

import (
	"context"

	"github.com/okian/rotoblogs/internal/domain/blog"
)

// Store provides read access to the loaded catalog.
type Store interface {
	// All returns the full catalog in source-file order.
	All(ctx context.Context) []blog.Record

	// Slice returns the ordered sub-sequence [start, end), clamped to the
	// catalog bounds.
	Slice(ctx context.Context, start, end int) []blog.Record

	// ByName returns the record for a case-insensitive player name.
	// Returns ErrNotFound if the name is unknown.
	ByName(ctx context.Context, name string) (blog.Record, error)

	// Count returns the number of records in the catalog.
	Count(ctx context.Context) int
}
