package services

import (
	"time"

	"github.com/rowanvale/tally/internal/dates"
	"github.com/rowanvale/tally/internal/models"
)

type StatsLogReader interface {
	ListActive(userID uint) ([]models.DayLog, error)
}

// Overview is everything the dashboard needs in one payload. The original
// UI computed streaks in three separate places with divergent date parsing;
// here the numbers come from a single pass over one log collection.
type Overview struct {
	CurrentStreak int         `json:"current_streak"`
	BestStreak    int         `json:"best_streak"`
	SuccessRate   int         `json:"success_rate"`
	Weekly        WeeklyTrend `json:"weekly"`
	Message       string      `json:"message"`
}

type StatsService struct {
	logs     StatsLogReader
	location *time.Location
}

func NewStatsService(logs StatsLogReader, location *time.Location) *StatsService {
	if location == nil {
		location = time.UTC
	}
	return &StatsService{logs: logs, location: location}
}

func (service *StatsService) BuildOverview(userID uint) (Overview, error) {
	logs, err := service.logs.ListActive(userID)
	if err != nil {
		return Overview{}, err
	}
	return BuildOverview(logs, dates.Today(service.location)), nil
}

func (service *StatsService) BuildTrendSeries(userID uint, windowDays int) ([]RatePoint, error) {
	logs, err := service.logs.ListActive(userID)
	if err != nil {
		return nil, err
	}
	return RollingWinRate(logs, windowDays, dates.Today(service.location)), nil
}

// BuildOverview is the pure core of the stats endpoint, kept separate so it
// can be exercised without a store.
func BuildOverview(logs []models.DayLog, today dates.Key) Overview {
	streak := CurrentStreak(logs, today)
	trend := ComputeWeeklyTrend(logs, today)
	rate := SuccessRate(logs)

	return Overview{
		CurrentStreak: streak,
		BestStreak:    BestStreak(logs),
		SuccessRate:   rate,
		Weekly:        trend,
		Message:       MotivationalMessage(streak, trend, rate),
	}
}
