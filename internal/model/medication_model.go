package model

import (
	"time"

	"github.com/google/uuid"
)

type Medication struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string     `gorm:"type:varchar(100);not null;index"`
	Name      string     `gorm:"type:varchar(200);not null"`
	Dosage    string     `gorm:"type:varchar(100)"`
	Time      string     `gorm:"type:varchar(10)"`
	Frequency string     `gorm:"type:varchar(50)"`
	Notes     string     `gorm:"type:text"`
	StartDate *time.Time `gorm:"type:date"`
	EndDate   *time.Time `gorm:"type:date"`
	IsActive  bool       `gorm:"not null;default:true"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (Medication) TableName() string {
	return "medications"
}

type MedicationTaken struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_taken_user_med_date,priority:1"`
	MedicationID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_taken_user_med_date,priority:2"`
	Date         time.Time  `gorm:"type:date;not null;uniqueIndex:idx_taken_user_med_date,priority:3"`
	Taken        bool       `gorm:"not null"`
	TimeTaken    *time.Time
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (MedicationTaken) TableName() string {
	return "medication_schedule"
}
