// Package blog defines the blog record and catalog types shared across the
// application.
package blog

import (
	"encoding/json"
)

// Record represents one player's write-up. The fields the service reasons
// about are decoded into struct fields; everything else in the source object
// is retained verbatim and re-emitted on marshal so the authoring pipeline's
// extra fields survive the round trip untouched.
type Record struct {
	PlayerName string
	Position   string
	WordCount  int

	raw json.RawMessage
}

// DefaultPosition is reported for records whose source object carries no
// position field.
const DefaultPosition = "Unknown"

// recordFields mirrors the JSON keys this service interprets. Pointers
// distinguish "absent" from zero values so defaults only apply when the key
// is missing.
type recordFields struct {
	PlayerName string  `json:"player_name"`
	Position   *string `json:"position,omitempty"`
	WordCount  *int    `json:"word_count,omitempty"`
}

// New builds a record in code. Records constructed this way marshal their
// known fields only; records decoded from a source file marshal their
// original bytes instead.
func New(playerName, position string, wordCount int) Record {
	if position == "" {
		position = DefaultPosition
	}
	return Record{
		PlayerName: playerName,
		Position:   position,
		WordCount:  wordCount,
	}
}

// UnmarshalJSON decodes the interpreted fields and keeps a copy of the
// original bytes for verbatim re-emission.
func (r *Record) UnmarshalJSON(data []byte) error {
	var f recordFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	r.PlayerName = f.PlayerName
	r.Position = DefaultPosition
	if f.Position != nil {
		r.Position = *f.Position
	}
	r.WordCount = 0
	if f.WordCount != nil {
		r.WordCount = *f.WordCount
	}
	r.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON re-emits the source object when the record was loaded from a
// file, preserving unknown fields and key order.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.raw != nil {
		return r.raw, nil
	}
	pos := r.Position
	wc := r.WordCount
	return json.Marshal(recordFields{
		PlayerName: r.PlayerName,
		Position:   &pos,
		WordCount:  &wc,
	})
}
