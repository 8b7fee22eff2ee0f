package models

import "time"

const MaxNotesLength = 500

// DayLog is one win/loss outcome for one calendar day. Date is stored as a
// YYYY-MM-DD text key; the unique index spans tombstoned rows, so re-logging
// a deleted day reuses the existing row instead of inserting a second one.
type DayLog struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;uniqueIndex:uidx_user_date" json:"user_id"`
	Date      string     `gorm:"type:text;not null;uniqueIndex:uidx_user_date" json:"date"`
	Success   bool       `gorm:"not null" json:"success"`
	Notes     string     `gorm:"size:500" json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

func (entry DayLog) Deleted() bool {
	return entry.DeletedAt != nil
}
