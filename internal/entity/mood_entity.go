package entity

import (
	"time"

	"github.com/google/uuid"
)

// MoodEntry is one user's mood log for a calendar date. At most one entry
// exists per (user, date); creating again updates in place.
type MoodEntry struct {
	Id          uuid.UUID
	UserID      string
	Date        time.Time
	Mood        string
	EnergyLevel int // 1-10
	SleepHours  *float64
	Notes       string
	Symptoms    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
