package services

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rowanvale/tally/internal/dates"
	"github.com/rowanvale/tally/internal/models"
)

const maxLogAgeDays = 365

const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionDeleted  = "deleted"
	ActionRestored = "restored"
)

type DayLogRepository interface {
	ListActive(userID uint) ([]models.DayLog, error)
	FindByUserAndDate(userID uint, date string) (models.DayLog, bool, error)
	FindActiveByUserAndDate(userID uint, date string) (models.DayLog, bool, error)
	Upsert(userID uint, date string, success bool, notes string) (models.DayLog, error)
	SoftDelete(userID uint, logID uint) (models.DayLog, bool, error)
	Restore(userID uint, logID uint) (models.DayLog, bool, error)
}

type LogService struct {
	logs     DayLogRepository
	location *time.Location
}

func NewLogService(logs DayLogRepository, location *time.Location) *LogService {
	if location == nil {
		location = time.UTC
	}
	return &LogService{logs: logs, location: location}
}

func (service *LogService) Today() dates.Key {
	return dates.Today(service.location)
}

// ValidateLogDate applies the write-side date policy: an empty input means
// today, the day must not be in the future and must not be more than a year
// back. Malformed strings always fail loudly; coercing them to today would
// corrupt streak math downstream.
func (service *LogService) ValidateLogDate(raw string) (dates.Key, error) {
	today := service.Today()
	if strings.TrimSpace(raw) == "" {
		return today, nil
	}

	day, err := dates.Parse(raw)
	if err != nil {
		return "", ErrInvalidDateFormat
	}
	if dates.IsFuture(day, today) {
		return "", ErrFutureDate
	}
	if day.Before(today.AddDays(-maxLogAgeDays)) {
		return "", ErrDateTooOld
	}
	return day, nil
}

// LogDay records the outcome for a day. The action reported is "updated"
// when a live row for the day already existed (tombstoned rows are revived
// but count as updates too, matching the original behavior). The write
// itself is a single conditional upsert, so a concurrent call for the same
// day can at worst skew the action label, never the row count.
func (service *LogService) LogDay(userID uint, rawDate string, success bool, notes string) (models.DayLog, string, error) {
	day, err := service.ValidateLogDate(rawDate)
	if err != nil {
		return models.DayLog{}, "", err
	}
	if utf8.RuneCountInString(notes) > models.MaxNotesLength {
		return models.DayLog{}, "", ErrNotesTooLong
	}

	_, existed, err := service.logs.FindByUserAndDate(userID, day.String())
	if err != nil {
		return models.DayLog{}, "", err
	}

	entry, err := service.logs.Upsert(userID, day.String(), success, notes)
	if err != nil {
		return models.DayLog{}, "", err
	}

	action := ActionCreated
	if existed {
		action = ActionUpdated
	}
	return entry, action, nil
}

func (service *LogService) DeleteLog(userID uint, logID uint) (models.DayLog, error) {
	entry, found, err := service.logs.SoftDelete(userID, logID)
	if err != nil {
		return models.DayLog{}, err
	}
	if !found {
		return models.DayLog{}, ErrLogNotFound
	}
	return entry, nil
}

func (service *LogService) RestoreLog(userID uint, logID uint) (models.DayLog, error) {
	entry, found, err := service.logs.Restore(userID, logID)
	if err != nil {
		return models.DayLog{}, err
	}
	if !found {
		return models.DayLog{}, ErrLogNotFound
	}
	return entry, nil
}

func (service *LogService) ListActive(userID uint) ([]models.DayLog, error) {
	return service.logs.ListActive(userID)
}

// TodayStatus reports whether the user has a live log for the current day.
func (service *LogService) TodayStatus(userID uint) (bool, *models.DayLog, error) {
	entry, found, err := service.logs.FindActiveByUserAndDate(userID, service.Today().String())
	if err != nil {
		return false, nil, err
	}
	if !found {
		return false, nil, nil
	}
	return true, &entry, nil
}
