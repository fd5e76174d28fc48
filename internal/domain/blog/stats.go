package blog

// Stats aggregates counts over a set of records.
type Stats struct {
	Count     int
	Words     int
	Positions map[string]int
}

// Summarize computes aggregate stats over records. Records without a
// position are counted under DefaultPosition.
func Summarize(records []Record) Stats {
	s := Stats{Positions: make(map[string]int)}
	for _, r := range records {
		s.Count++
		s.Words += r.WordCount
		pos := r.Position
		if pos == "" {
			pos = DefaultPosition
		}
		s.Positions[pos]++
	}
	return s
}
