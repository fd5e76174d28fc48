package smoketest

import (
	"fmt"
	"log"
	"time"

	"github.com/okian/rotoblogs/internal/domain/rotation"
)

// verifyDaily checks the daily window against locally computed rotation math.
func verifyDaily(daily *dailyResponse, totalBlogs int, now time.Time) error {
	log.Println("Verifying daily window...")

	day := rotation.Window(now, totalBlogs)

	if daily.DayInCycle != day.DayInCycle() {
		return fmt.Errorf("day_in_cycle is %d, expected %d", daily.DayInCycle, day.DayInCycle())
	}
	if daily.Date != day.DateString() {
		return fmt.Errorf("date is %q, expected %q", daily.Date, day.DateString())
	}
	if daily.Count != day.Len() {
		return fmt.Errorf("window count is %d, expected %d", daily.Count, day.Len())
	}
	if len(daily.Blogs) != daily.Count {
		return fmt.Errorf("blogs list has %d entries but count says %d", len(daily.Blogs), daily.Count)
	}

	log.Println("Daily window verified")
	return nil
}

// verifyStats cross-checks the stats endpoint against the full catalog.
func verifyStats(stats *statsResponse, all *allResponse, daily *dailyResponse) error {
	log.Println("Verifying stats...")

	if stats.TotalBlogs != all.Count {
		return fmt.Errorf("total_blogs_in_system is %d but catalog has %d", stats.TotalBlogs, all.Count)
	}
	if stats.BlogsToday != daily.Count {
		return fmt.Errorf("blogs_showing_today is %d but daily window has %d", stats.BlogsToday, daily.Count)
	}

	totalWords := 0
	for _, b := range all.Blogs {
		totalWords += b.WordCount
	}
	if stats.TotalWords != totalWords {
		return fmt.Errorf("total_words_all_blogs is %d, expected %d", stats.TotalWords, totalWords)
	}

	todayWords := 0
	for _, b := range daily.Blogs {
		todayWords += b.WordCount
	}
	if stats.WordsToday != todayWords {
		return fmt.Errorf("words_in_todays_blogs is %d, expected %d", stats.WordsToday, todayWords)
	}

	positionTotal := 0
	for _, n := range stats.Positions {
		positionTotal += n
	}
	if positionTotal != all.Count {
		return fmt.Errorf("position counts sum to %d but catalog has %d", positionTotal, all.Count)
	}

	log.Println("Stats verified")
	return nil
}

// verifyWindowMembership checks that the daily window is a contiguous slice of
// the full catalog at the expected offset.
func verifyWindowMembership(daily *dailyResponse, all *allResponse, now time.Time) error {
	log.Println("Verifying window membership...")

	day := rotation.Window(now, all.Count)
	for i, b := range daily.Blogs {
		want := all.Blogs[day.Start+i]
		if b.PlayerName != want.PlayerName {
			return fmt.Errorf("window entry %d is %q, expected %q at catalog index %d",
				i, b.PlayerName, want.PlayerName, day.Start+i)
		}
	}

	log.Println("Window membership verified")
	return nil
}
