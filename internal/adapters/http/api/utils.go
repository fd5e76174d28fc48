// Package api declares HTTP contracts and route registration helpers.
package api

// orEmpty normalizes a nil record slice to an empty one so JSON output is
// [] rather than null.
func orEmpty(records []Record) []Record {
	if records == nil {
		return []Record{}
	}
	return records
}
