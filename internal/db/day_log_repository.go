package db

import (
	"time"

	"github.com/rowanvale/tally/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DayLogRepository struct {
	database *gorm.DB
}

func NewDayLogRepository(database *gorm.DB) *DayLogRepository {
	return &DayLogRepository{database: database}
}

// ListActive returns the user's non-deleted logs, newest day first.
func (repo *DayLogRepository) ListActive(userID uint) ([]models.DayLog, error) {
	logs := make([]models.DayLog, 0)
	if err := repo.database.
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// FindByUserAndDate looks a row up by its day key, tombstoned rows included.
func (repo *DayLogRepository) FindByUserAndDate(userID uint, date string) (models.DayLog, bool, error) {
	entry := models.DayLog{}
	result := repo.database.
		Where("user_id = ? AND date = ?", userID, date).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DayLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *DayLogRepository) FindActiveByUserAndDate(userID uint, date string) (models.DayLog, bool, error) {
	entry := models.DayLog{}
	result := repo.database.
		Where("user_id = ? AND date = ? AND deleted_at IS NULL", userID, date).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DayLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayLog{}, false, nil
	}
	return entry, true, nil
}

// Upsert writes the outcome for (user, date) as a single conditional insert:
// on conflict with the (user_id, date) unique index the existing row is
// updated in place and its tombstone cleared. Concurrent calls for the same
// day cannot produce duplicate rows.
func (repo *DayLogRepository) Upsert(userID uint, date string, success bool, notes string) (models.DayLog, error) {
	now := time.Now()
	entry := models.DayLog{
		UserID:  userID,
		Date:    date,
		Success: success,
		Notes:   notes,
	}

	err := repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]any{
			"success":    success,
			"notes":      notes,
			"updated_at": now,
			"deleted_at": nil,
		}),
	}).Create(&entry).Error
	if err != nil {
		return models.DayLog{}, err
	}

	// Re-read so the caller sees the surviving row regardless of which
	// branch of the conflict clause ran.
	stored, found, err := repo.FindByUserAndDate(userID, date)
	if err != nil {
		return models.DayLog{}, err
	}
	if !found {
		return entry, nil
	}
	return stored, nil
}

// SoftDelete tombstones the log. The ownership check lives in the WHERE
// clause; zero affected rows means no such log owned by the user.
func (repo *DayLogRepository) SoftDelete(userID uint, logID uint) (models.DayLog, bool, error) {
	result := repo.database.Model(&models.DayLog{}).
		Where("id = ? AND user_id = ?", logID, userID).
		Update("deleted_at", time.Now())
	if result.Error != nil {
		return models.DayLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayLog{}, false, nil
	}
	return repo.findByID(logID)
}

// Restore clears the tombstone, same ownership rule as SoftDelete.
func (repo *DayLogRepository) Restore(userID uint, logID uint) (models.DayLog, bool, error) {
	result := repo.database.Model(&models.DayLog{}).
		Where("id = ? AND user_id = ?", logID, userID).
		Update("deleted_at", nil)
	if result.Error != nil {
		return models.DayLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayLog{}, false, nil
	}
	return repo.findByID(logID)
}

func (repo *DayLogRepository) findByID(logID uint) (models.DayLog, bool, error) {
	entry := models.DayLog{}
	result := repo.database.Where("id = ?", logID).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.DayLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayLog{}, false, nil
	}
	return entry, true, nil
}
