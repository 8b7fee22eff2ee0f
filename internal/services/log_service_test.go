package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/rowanvale/tally/internal/dates"
	"github.com/rowanvale/tally/internal/models"
)

// fakeLogRepository keeps the (user, date) uniqueness invariant in memory.
type fakeLogRepository struct {
	entries map[string]*models.DayLog
	nextID  uint
}

func newFakeLogRepository() *fakeLogRepository {
	return &fakeLogRepository{entries: make(map[string]*models.DayLog), nextID: 1}
}

func (repo *fakeLogRepository) key(userID uint, date string) string {
	return fmt.Sprintf("%d/%s", userID, date)
}

func (repo *fakeLogRepository) ListActive(userID uint) ([]models.DayLog, error) {
	logs := make([]models.DayLog, 0)
	for _, entry := range repo.entries {
		if entry.UserID == userID && entry.DeletedAt == nil {
			logs = append(logs, *entry)
		}
	}
	return logs, nil
}

func (repo *fakeLogRepository) FindByUserAndDate(userID uint, date string) (models.DayLog, bool, error) {
	entry, found := repo.entries[repo.key(userID, date)]
	if !found {
		return models.DayLog{}, false, nil
	}
	return *entry, true, nil
}

func (repo *fakeLogRepository) FindActiveByUserAndDate(userID uint, date string) (models.DayLog, bool, error) {
	entry, found := repo.entries[repo.key(userID, date)]
	if !found || entry.DeletedAt != nil {
		return models.DayLog{}, false, nil
	}
	return *entry, true, nil
}

func (repo *fakeLogRepository) Upsert(userID uint, date string, success bool, notes string) (models.DayLog, error) {
	key := repo.key(userID, date)
	if entry, found := repo.entries[key]; found {
		entry.Success = success
		entry.Notes = notes
		entry.UpdatedAt = time.Now()
		entry.DeletedAt = nil
		return *entry, nil
	}

	entry := &models.DayLog{
		ID:      repo.nextID,
		UserID:  userID,
		Date:    date,
		Success: success,
		Notes:   notes,
	}
	repo.nextID++
	repo.entries[key] = entry
	return *entry, nil
}

func (repo *fakeLogRepository) SoftDelete(userID uint, logID uint) (models.DayLog, bool, error) {
	for _, entry := range repo.entries {
		if entry.ID == logID && entry.UserID == userID {
			now := time.Now()
			entry.DeletedAt = &now
			return *entry, true, nil
		}
	}
	return models.DayLog{}, false, nil
}

func (repo *fakeLogRepository) Restore(userID uint, logID uint) (models.DayLog, bool, error) {
	for _, entry := range repo.entries {
		if entry.ID == logID && entry.UserID == userID {
			entry.DeletedAt = nil
			return *entry, true, nil
		}
	}
	return models.DayLog{}, false, nil
}

func newTestLogService() (*LogService, *fakeLogRepository) {
	repo := newFakeLogRepository()
	return NewLogService(repo, time.UTC), repo
}

func TestValidateLogDateDefaultsToToday(t *testing.T) {
	service, _ := newTestLogService()

	day, err := service.ValidateLogDate("")
	if err != nil {
		t.Fatalf("empty date should default to today, got %v", err)
	}
	if day != dates.Today(time.UTC) {
		t.Fatalf("expected today, got %s", day)
	}
}

func TestValidateLogDateRejectsBadInput(t *testing.T) {
	service, _ := newTestLogService()
	today := service.Today()

	if _, err := service.ValidateLogDate("12-03-2025"); !errors.Is(err, ErrInvalidDateFormat) {
		t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
	}
	if _, err := service.ValidateLogDate(today.AddDays(1).String()); !errors.Is(err, ErrFutureDate) {
		t.Fatalf("expected ErrFutureDate, got %v", err)
	}
	if _, err := service.ValidateLogDate(today.AddDays(-366).String()); !errors.Is(err, ErrDateTooOld) {
		t.Fatalf("expected ErrDateTooOld, got %v", err)
	}
	if _, err := service.ValidateLogDate(today.AddDays(-365).String()); err != nil {
		t.Fatalf("365 days back should be accepted, got %v", err)
	}
}

func TestLogDayCreateThenUpdate(t *testing.T) {
	service, _ := newTestLogService()
	today := service.Today().String()

	first, action, err := service.LogDay(1, today, true, "felt great")
	if err != nil {
		t.Fatalf("first log failed: %v", err)
	}
	if action != ActionCreated {
		t.Fatalf("expected created, got %s", action)
	}

	second, action, err := service.LogDay(1, today, false, "")
	if err != nil {
		t.Fatalf("second log failed: %v", err)
	}
	if action != ActionUpdated {
		t.Fatalf("expected updated, got %s", action)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same row reused, got ids %d and %d", first.ID, second.ID)
	}
	if second.Success {
		t.Fatal("expected second call's outcome to win")
	}

	logs, err := service.ListActive(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected exactly one stored row, got %d", len(logs))
	}
}

func TestLogDayRejectsLongNotes(t *testing.T) {
	service, _ := newTestLogService()

	_, _, err := service.LogDay(1, "", true, strings.Repeat("x", models.MaxNotesLength+1))
	if !errors.Is(err, ErrNotesTooLong) {
		t.Fatalf("expected ErrNotesTooLong, got %v", err)
	}
}

func TestLogDayNotesLimitCountsRunes(t *testing.T) {
	service, _ := newTestLogService()

	// 500 two-byte runes are within the character limit and must be
	// stored untouched, not cut at a byte offset.
	notes := strings.Repeat("é", models.MaxNotesLength)
	entry, _, err := service.LogDay(1, "", true, notes)
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if entry.Notes != notes {
		t.Fatalf("expected notes stored verbatim, got %d bytes", len(entry.Notes))
	}
	if !utf8.ValidString(entry.Notes) {
		t.Fatal("stored notes are not valid UTF-8")
	}
}

func TestDeleteRestoreLifecycle(t *testing.T) {
	service, _ := newTestLogService()
	entry, _, err := service.LogDay(1, "", true, "")
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}

	deleted, err := service.DeleteLog(1, entry.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !deleted.Deleted() {
		t.Fatal("expected tombstone set")
	}

	hasLogged, _, err := service.TodayStatus(1)
	if err != nil {
		t.Fatalf("today status failed: %v", err)
	}
	if hasLogged {
		t.Fatal("deleted log must not count as logged")
	}

	restored, err := service.RestoreLog(1, entry.ID)
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if restored.Deleted() {
		t.Fatal("expected tombstone cleared")
	}

	hasLogged, todayLog, err := service.TodayStatus(1)
	if err != nil {
		t.Fatalf("today status failed: %v", err)
	}
	if !hasLogged || todayLog == nil {
		t.Fatal("restored log must count as logged")
	}
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	service, _ := newTestLogService()
	entry, _, err := service.LogDay(1, "", true, "")
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}

	if _, err := service.DeleteLog(2, entry.ID); !errors.Is(err, ErrLogNotFound) {
		t.Fatalf("expected ErrLogNotFound for foreign owner, got %v", err)
	}
	if _, err := service.RestoreLog(2, entry.ID); !errors.Is(err, ErrLogNotFound) {
		t.Fatalf("expected ErrLogNotFound for foreign owner, got %v", err)
	}
	if _, err := service.DeleteLog(1, 9999); !errors.Is(err, ErrLogNotFound) {
		t.Fatalf("expected ErrLogNotFound for missing id, got %v", err)
	}
}

func TestRelogRevivesTombstone(t *testing.T) {
	service, _ := newTestLogService()
	entry, _, err := service.LogDay(1, "", true, "")
	if err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if _, err := service.DeleteLog(1, entry.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	revived, action, err := service.LogDay(1, "", false, "second try")
	if err != nil {
		t.Fatalf("re-log failed: %v", err)
	}
	if action != ActionUpdated {
		t.Fatalf("expected re-log of tombstoned day to report updated, got %s", action)
	}
	if revived.ID != entry.ID {
		t.Fatalf("expected tombstoned row reused, got ids %d and %d", entry.ID, revived.ID)
	}
	if revived.Deleted() {
		t.Fatal("expected tombstone cleared on re-log")
	}
}
