package services

import (
	"math"

	"github.com/rowanvale/tally/internal/dates"
	"github.com/rowanvale/tally/internal/models"
)

const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendSame = "same"
)

// trendHysteresis keeps the weekly direction from flapping on small
// samples: the rate delta must strictly exceed this band to leave "same".
const trendHysteresis = 0.1

const DefaultTrendWindowDays = 30

type WeeklyTrend struct {
	ThisWeekWins  int    `json:"this_week_wins"`
	ThisWeekTotal int    `json:"this_week_total"`
	LastWeekWins  int    `json:"last_week_wins"`
	LastWeekTotal int    `json:"last_week_total"`
	Direction     string `json:"direction"`
}

type RatePoint struct {
	Date    string `json:"date"`
	WinRate int    `json:"win_rate"`
	Wins    int    `json:"wins"`
	Total   int    `json:"total"`
}

// ComputeWeeklyTrend splits logs into the week starting the most recent
// Sunday and the seven days before it, and compares win rates. Logs outside
// both windows are ignored.
func ComputeWeeklyTrend(logs []models.DayLog, today dates.Key) WeeklyTrend {
	weekStart := dates.StartOfWeek(today)
	lastWeekStart := weekStart.AddDays(-7)

	trend := WeeklyTrend{Direction: TrendSame}
	for _, entry := range logs {
		day, err := dates.Parse(entry.Date)
		if err != nil {
			continue
		}

		if !day.Before(weekStart) {
			trend.ThisWeekTotal++
			if entry.Success {
				trend.ThisWeekWins++
			}
		} else if !day.Before(lastWeekStart) {
			trend.LastWeekTotal++
			if entry.Success {
				trend.LastWeekWins++
			}
		}
	}

	thisWeekRate := 0.0
	if trend.ThisWeekTotal > 0 {
		thisWeekRate = float64(trend.ThisWeekWins) / float64(trend.ThisWeekTotal)
	}
	lastWeekRate := 0.0
	if trend.LastWeekTotal > 0 {
		lastWeekRate = float64(trend.LastWeekWins) / float64(trend.LastWeekTotal)
	}

	if thisWeekRate > lastWeekRate+trendHysteresis {
		trend.Direction = TrendUp
	} else if thisWeekRate < lastWeekRate-trendHysteresis {
		trend.Direction = TrendDown
	}
	return trend
}

// RollingWinRate produces one point per calendar day over the trailing
// window ending today. Each point carries the cumulative win rate since the
// window start, not a fixed-size moving average.
func RollingWinRate(logs []models.DayLog, windowDays int, today dates.Key) []RatePoint {
	if windowDays < 1 {
		windowDays = DefaultTrendWindowDays
	}

	outcomes := make(map[dates.Key]bool, len(logs))
	for _, entry := range logs {
		day, err := dates.Parse(entry.Date)
		if err != nil {
			continue
		}
		outcomes[day] = entry.Success
	}

	points := make([]RatePoint, 0, windowDays)
	wins := 0
	total := 0
	for day := today.AddDays(-(windowDays - 1)); !day.After(today); day = day.AddDays(1) {
		if success, logged := outcomes[day]; logged {
			total++
			if success {
				wins++
			}
		}

		rate := 0
		if total > 0 {
			rate = int(math.Round(float64(wins) / float64(total) * 100))
		}
		points = append(points, RatePoint{
			Date:    day.String(),
			WinRate: rate,
			Wins:    wins,
			Total:   total,
		})
	}
	return points
}

// SuccessRate is the all-time win percentage, 0 for an empty collection.
func SuccessRate(logs []models.DayLog) int {
	if len(logs) == 0 {
		return 0
	}
	wins := 0
	for _, entry := range logs {
		if entry.Success {
			wins++
		}
	}
	return int(math.Round(float64(wins) / float64(len(logs)) * 100))
}
