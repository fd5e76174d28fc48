package blog

import (
	"strings"
)

// Catalog is the full ordered collection of records plus a
// lowercase-normalized name index. It is built once at load time and never
// mutated afterwards, so it is safe to share across request handlers without
// synchronization.
type Catalog struct {
	records []Record
	byName  map[string]Record
}

// NewCatalog builds a catalog preserving the given order. Records without a
// player name stay in the ordered view but are not indexed. Duplicate names
// overwrite earlier index entries (last write wins) while the ordered view
// keeps every record.
func NewCatalog(records []Record) *Catalog {
	c := &Catalog{
		records: records,
		byName:  make(map[string]Record, len(records)),
	}
	for _, r := range records {
		name := strings.ToLower(r.PlayerName)
		if name == "" {
			continue
		}
		c.byName[name] = r
	}
	return c
}

// Len returns the number of records in the ordered view.
func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns the ordered view. Callers must treat the slice as read-only.
func (c *Catalog) All() []Record {
	return c.records
}

// Slice returns the ordered sub-sequence [start, end), clamped to the
// catalog bounds. An out-of-range window yields an empty slice rather than a
// panic.
func (c *Catalog) Slice(start, end int) []Record {
	n := len(c.records)
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return nil
	}
	return c.records[start:end]
}

// ByName looks up a record by case-insensitive player name.
func (c *Catalog) ByName(name string) (Record, bool) {
	r, ok := c.byName[strings.ToLower(name)]
	return r, ok
}

// Names returns the player names of records in order.
func Names(records []Record) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.PlayerName)
	}
	return names
}
