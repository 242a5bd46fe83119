package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type HealthCondition struct {
	Id            uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        string                      `gorm:"type:varchar(100);not null;index"`
	ConditionName string                      `gorm:"type:varchar(200);not null"`
	Severity      string                      `gorm:"type:varchar(20);not null"`
	Symptoms      datatypes.JSONSlice[string]
	RecordedDate  time.Time                   `gorm:"type:date;not null;index"`
	Notes         string                      `gorm:"type:text"`
	IsActive      bool                        `gorm:"not null;default:true"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt     time.Time                   `gorm:"autoUpdateTime"`
}

func (HealthCondition) TableName() string {
	return "health_conditions"
}
