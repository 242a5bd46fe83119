package dto

import (
	"time"

	"github.com/google/uuid"
)

type LogMoodRequest struct {
	UserID      string   `json:"user_id" validate:"required,min=1"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	Mood        string   `json:"mood" validate:"required,oneof=excellent good okay bad terrible"`
	EnergyLevel int      `json:"energy_level" validate:"required,min=1,max=10"`
	SleepHours  *float64 `json:"sleep_hours,omitempty" validate:"omitempty,min=0,max=24"`
	Notes       string   `json:"notes,omitempty"`
	Symptoms    []string `json:"symptoms,omitempty"`
}

type MoodEntryResponse struct {
	EntryID     uuid.UUID `json:"entry_id"`
	UserID      string    `json:"user_id"`
	Date        string    `json:"date"`
	Mood        string    `json:"mood"`
	EnergyLevel int       `json:"energy_level"`
	SleepHours  *float64  `json:"sleep_hours,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Symptoms    []string  `json:"symptoms,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
