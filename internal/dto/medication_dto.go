package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMedicationRequest struct {
	UserID    string `json:"user_id" validate:"required,min=1"`
	Name      string `json:"name" validate:"required,min=1"`
	Dosage    string `json:"dosage,omitempty"`
	Time      string `json:"time,omitempty" validate:"omitempty,len=5"`
	Frequency string `json:"frequency,omitempty"`
	Notes     string `json:"notes,omitempty"`
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateMedicationRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Dosage    *string `json:"dosage,omitempty"`
	Time      *string `json:"time,omitempty" validate:"omitempty,len=5"`
	Frequency *string `json:"frequency,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	StartDate *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type MedicationResponse struct {
	MedicationID uuid.UUID `json:"medication_id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage,omitempty"`
	Time         string    `json:"time,omitempty"`
	Frequency    string    `json:"frequency,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	StartDate    *string   `json:"start_date,omitempty"`
	EndDate      *string   `json:"end_date,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TrackMedicationRequest struct {
	UserID       string    `json:"user_id" validate:"required,min=1"`
	MedicationID uuid.UUID `json:"medication_id" validate:"required"`
	Date         string    `json:"date" validate:"required,datetime=2006-01-02"`
	Taken        bool      `json:"taken"`
	TimeTaken    string    `json:"time_taken,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

type MedicationTakenResponse struct {
	RecordID     uuid.UUID `json:"record_id"`
	UserID       string    `json:"user_id"`
	MedicationID uuid.UUID `json:"medication_id"`
	Date         string    `json:"date"`
	Taken        bool      `json:"taken"`
	TimeTaken    *string   `json:"time_taken,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
