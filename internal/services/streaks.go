package services

import (
	"sort"

	"github.com/rowanvale/tally/internal/dates"
	"github.com/rowanvale/tally/internal/models"
)

// CurrentStreak counts consecutive wins ending at or immediately before
// today, with no gap. A loss or a missing day breaks the run. Input order
// does not matter; entries with malformed dates are skipped.
func CurrentStreak(logs []models.DayLog, today dates.Key) int {
	sorted := sortedByDate(logs, false)

	streak := 0
	for _, entry := range sorted {
		day, err := dates.Parse(entry.Date)
		if err != nil {
			continue
		}

		diff := dates.DayDiff(today, day)
		if diff == streak && entry.Success {
			streak++
		} else if diff > streak || !entry.Success {
			break
		}
	}
	return streak
}

// BestStreak finds the longest run of wins on strictly consecutive days
// anywhere in the history. Days are unique per user, so ties between
// entries cannot occur.
func BestStreak(logs []models.DayLog) int {
	sorted := sortedByDate(logs, true)

	best := 0
	current := 0
	var lastWinDay dates.Key

	for _, entry := range sorted {
		day, err := dates.Parse(entry.Date)
		if err != nil {
			continue
		}

		if !entry.Success {
			current = 0
			lastWinDay = ""
			continue
		}

		if lastWinDay != "" && dates.DayDiff(day, lastWinDay) == 1 {
			current++
		} else {
			current = 1
		}
		if current > best {
			best = current
		}
		lastWinDay = day
	}
	return best
}

func sortedByDate(logs []models.DayLog, ascending bool) []models.DayLog {
	sorted := make([]models.DayLog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}
