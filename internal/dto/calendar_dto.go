package dto

import "github.com/google/uuid"

// CalendarDay is the fold of one date's health data. Medications and
// HealthConditions carry the user's full active sets for context;
// MedicationsTaken holds only the doses confirmed taken on this exact date.
type CalendarDay struct {
	Date             string               `json:"date"`
	Medications      []MedicationResponse `json:"medications"`
	MedicationsTaken []uuid.UUID          `json:"medications_taken"`
	MoodEntry        *MoodEntryResponse   `json:"mood_entry,omitempty"`
	HealthConditions []string             `json:"health_conditions"`
}

type CalendarViewResponse struct {
	UserID string        `json:"user_id"`
	Month  int           `json:"month"`
	Year   int           `json:"year"`
	Days   []CalendarDay `json:"days"`
}
