package entity

import (
	"time"

	"github.com/google/uuid"
)

// HealthCondition is a tracked condition for one user, soft-deleted via
// IsActive like medications.
type HealthCondition struct {
	Id            uuid.UUID
	UserID        string
	ConditionName string
	Severity      string
	Symptoms      []string
	RecordedDate  time.Time
	Notes         string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
