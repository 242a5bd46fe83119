package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medication is a scheduled medication for one user. Deletion is soft:
// IsActive flips to false and the record is retained.
type Medication struct {
	Id        uuid.UUID
	UserID    string
	Name      string
	Dosage    string
	Time      string // HH:MM
	Frequency string
	Notes     string
	StartDate *time.Time
	EndDate   *time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MedicationTaken records whether a dose was taken on a date. At most one
// record exists per (user, medication, date); writes upsert.
type MedicationTaken struct {
	Id           uuid.UUID
	UserID       string
	MedicationID uuid.UUID
	Date         time.Time
	Taken        bool
	TimeTaken    *time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
