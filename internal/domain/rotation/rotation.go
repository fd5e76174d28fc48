// Package rotation computes which slice of the catalog is visible on a given
// day. The selection is a pure function of the current instant and the
// catalog size: no persisted cursor, no scheduler, no stored state.
package rotation

import (
	"fmt"
	"time"
)

// Schedule constants. These are deliberately fixed rather than configurable:
// the rotation must be reproducible from (catalog, instant) alone.
const (
	// WindowSize is the number of records exposed per day.
	WindowSize = 5
	// CycleDays is the length of the repeating schedule.
	CycleDays = 7
)

// Epoch is the fixed instant elapsed days are counted from.
var Epoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// Day describes the rotation state at a single instant.
type Day struct {
	// Date is the instant the window was derived from, in UTC.
	Date time.Time
	// Position is the day index within the repeating cycle, in [0, CycleDays).
	Position int
	// Start and End bound the active window [Start, End) in catalog order.
	Start int
	End   int
}

// CyclePosition returns the day index within the repeating cycle for now.
// Partial days truncate, matching standard date-difference semantics, and
// the result is normalized into [0, CycleDays) even for instants before the
// epoch.
func CyclePosition(now time.Time) int {
	elapsedDays := int(now.UTC().Sub(Epoch) / (24 * time.Hour))
	pos := elapsedDays % CycleDays
	if pos < 0 {
		pos += CycleDays
	}
	return pos
}

// Window returns the active window for a catalog of catalogLen records at
// now. The window is empty when the cycle position points past the end of
// the catalog, which happens whenever the catalog holds fewer than
// WindowSize*CycleDays records. That is the intended schedule, not an error.
func Window(now time.Time, catalogLen int) Day {
	pos := CyclePosition(now)
	start := pos * WindowSize
	end := start + WindowSize
	if end > catalogLen {
		end = catalogLen
	}
	if start > catalogLen {
		start = catalogLen
	}
	return Day{
		Date:     now.UTC(),
		Position: pos,
		Start:    start,
		End:      end,
	}
}

// Len returns the number of records in the window.
func (d Day) Len() int {
	return d.End - d.Start
}

// DayInCycle returns the 1-based day number shown to clients.
func (d Day) DayInCycle() int {
	return d.Position + 1
}

// DateString renders the window's UTC calendar date.
func (d Day) DateString() string {
	return d.Date.Format("2006-01-02")
}

// RangeLabel renders the 1-based index range shown on the home endpoint,
// e.g. "16-20", or "None" when the window is empty.
func (d Day) RangeLabel() string {
	if d.Len() <= 0 {
		return "None"
	}
	return fmt.Sprintf("%d-%d", d.Start+1, d.End)
}
