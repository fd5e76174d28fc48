package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/okian/rotoblogs/internal/domain/blog"
	"github.com/okian/rotoblogs/pkg/metrics"
)

// CatalogStore is an immutable Store backed by an in-memory catalog. It is
// built once at startup and never written afterwards, so reads need no
// locking.
type CatalogStore struct {
	catalog *blog.Catalog
}

// compile-time interface check.
var _ Store = (*CatalogStore)(nil)

// Load reads path once and builds the store. Accepted shapes are an object
// with a "blogs" array or a bare array of records; anything else is a load
// failure. Callers fall back to Empty() on error.
func Load(ctx context.Context, path string) (*CatalogStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blogs file: %w", err)
	}
	records, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse blogs file %s: %w", path, err)
	}
	metrics.UpdateCatalogSize(len(records))
	return &CatalogStore{catalog: blog.NewCatalog(records)}, nil
}

// Empty returns a store with no records. Every read then reports "no data
// loaded" rather than erroring.
func Empty() *CatalogStore {
	return &CatalogStore{catalog: blog.NewCatalog(nil)}
}

// NewCatalogStore builds a store over already-decoded records.
func NewCatalogStore(records []blog.Record) *CatalogStore {
	return &CatalogStore{catalog: blog.NewCatalog(records)}
}

// decode accepts {"blogs": [...]} or a bare array.
func decode(data []byte) ([]blog.Record, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, ErrEmptyFile
	}
	switch trimmed[0] {
	case '{':
		var doc struct {
			Blogs *[]blog.Record `json:"blogs"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		if doc.Blogs == nil {
			// An object without a blogs array is some other document.
			return nil, ErrBadShape
		}
		return *doc.Blogs, nil
	case '[':
		var records []blog.Record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
		return records, nil
	default:
		return nil, ErrBadShape
	}
}

// All returns the full catalog in source-file order.
func (s *CatalogStore) All(_ context.Context) []blog.Record {
	return s.catalog.All()
}

// Slice returns the ordered sub-sequence [start, end).
func (s *CatalogStore) Slice(_ context.Context, start, end int) []blog.Record {
	return s.catalog.Slice(start, end)
}

// ByName returns the record for a case-insensitive player name.
func (s *CatalogStore) ByName(_ context.Context, name string) (blog.Record, error) {
	r, ok := s.catalog.ByName(name)
	if !ok {
		return blog.Record{}, ErrNotFound
	}
	return r, nil
}

// Count returns the number of records in the catalog.
func (s *CatalogStore) Count(_ context.Context) int {
	return s.catalog.Len()
}
