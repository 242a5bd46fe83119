package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MoodEntry struct {
	Id          uuid.UUID                    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      string                       `gorm:"type:varchar(100);not null;uniqueIndex:idx_mood_user_date,priority:1"`
	Date        time.Time                    `gorm:"type:date;not null;uniqueIndex:idx_mood_user_date,priority:2"`
	Mood        string                       `gorm:"type:varchar(20);not null"`
	EnergyLevel int                          `gorm:"not null"`
	SleepHours  *float64
	Notes       string                       `gorm:"type:text"`
	Symptoms    datatypes.JSONSlice[string]
	CreatedAt   time.Time                    `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                    `gorm:"autoUpdateTime"`
}

func (MoodEntry) TableName() string {
	return "mood_tracking"
}
