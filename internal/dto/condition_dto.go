package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateConditionRequest struct {
	UserID        string   `json:"user_id" validate:"required,min=1"`
	ConditionName string   `json:"condition_name" validate:"required,min=1"`
	Severity      string   `json:"severity" validate:"required,oneof=mild moderate severe"`
	Symptoms      []string `json:"symptoms,omitempty"`
	RecordedDate  string   `json:"recorded_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes         string   `json:"notes,omitempty"`
}

type UpdateConditionRequest struct {
	ConditionName *string   `json:"condition_name,omitempty" validate:"omitempty,min=1"`
	Severity      *string   `json:"severity,omitempty" validate:"omitempty,oneof=mild moderate severe"`
	Symptoms      *[]string `json:"symptoms,omitempty"`
	RecordedDate  *string   `json:"recorded_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes         *string   `json:"notes,omitempty"`
}

type ConditionResponse struct {
	ConditionID   uuid.UUID `json:"condition_id"`
	UserID        string    `json:"user_id"`
	ConditionName string    `json:"condition_name"`
	Severity      string    `json:"severity"`
	Symptoms      []string  `json:"symptoms,omitempty"`
	RecordedDate  string    `json:"recorded_date"`
	Notes         string    `json:"notes,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
