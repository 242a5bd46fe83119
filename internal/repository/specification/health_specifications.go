package specification

import (
	"time"

	"gorm.io/gorm"
)

// ByUserID filters on the client-assigned user identifier.
type ByUserID struct {
	UserID string
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ActiveOnly keeps records not yet soft-deleted via is_active.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// OnDate matches a date column against one calendar date.
type OnDate struct {
	Date time.Time
}

func (s OnDate) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date = ?", s.Date.Format("2006-01-02"))
}

// DateBetween matches a date column inclusively between From and To.
type DateBetween struct {
	From time.Time
	To   time.Time
}

func (s DateBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date BETWEEN ? AND ?", s.From.Format("2006-01-02"), s.To.Format("2006-01-02"))
}

// DateSince keeps rows whose date column is at or after the cutoff date.
type DateSince struct {
	Since time.Time
}

func (s DateSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date >= ?", s.Since.Format("2006-01-02"))
}

// DateUntil keeps rows whose date column is at or before the cutoff date.
type DateUntil struct {
	Until time.Time
}

func (s DateUntil) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date <= ?", s.Until.Format("2006-01-02"))
}

// TimestampSince keeps rows whose timestamp is at or after the cutoff.
type TimestampSince struct {
	Since time.Time
}

func (s TimestampSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("timestamp >= ?", s.Since)
}

// TakenOnly keeps dose records marked taken.
type TakenOnly struct{}

func (s TakenOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("taken = ?", true)
}
