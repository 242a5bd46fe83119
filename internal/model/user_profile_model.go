package model

import (
	"time"

	"github.com/google/uuid"
)

type PersonalInfo struct {
	FirstName   string `gorm:"type:varchar(100);not null"`
	LastName    string `gorm:"type:varchar(100);not null"`
	DateOfBirth string `gorm:"type:varchar(20)"`
	Gender      string `gorm:"type:varchar(50)"`
	Email       string `gorm:"type:varchar(255);index"`
	Phone       string `gorm:"type:varchar(50)"`
}

type MedicalHistory struct {
	Allergies          string `gorm:"type:text"`
	ChronicConditions  string `gorm:"type:text"`
	PastSurgeries      string `gorm:"type:text"`
	CurrentMedications string `gorm:"type:text"`
}

type HealthStatus struct {
	CurrentConditions string `gorm:"type:text"`
	Symptoms          string `gorm:"type:text"`
	IsPregnant        string `gorm:"type:varchar(20)"`
	DueDate           string `gorm:"type:varchar(20)"`
}

type FamilyHistory struct {
	HeartDisease bool
	Diabetes     bool
	Cancer       bool
	MentalHealth bool
	Other        string `gorm:"type:text"`
}

type EmergencyContact struct {
	Name         string `gorm:"type:varchar(200)"`
	Relationship string `gorm:"type:varchar(100)"`
	Phone        string `gorm:"type:varchar(50)"`
}

type UserProfile struct {
	Id               uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           string           `gorm:"type:varchar(100);not null;uniqueIndex"`
	PersonalInfo     PersonalInfo     `gorm:"embedded;embeddedPrefix:personal_"`
	MedicalHistory   MedicalHistory   `gorm:"embedded;embeddedPrefix:history_"`
	HealthStatus     HealthStatus     `gorm:"embedded;embeddedPrefix:status_"`
	FamilyHistory    FamilyHistory    `gorm:"embedded;embeddedPrefix:family_"`
	EmergencyContact EmergencyContact `gorm:"embedded;embeddedPrefix:emergency_"`
	CreatedAt        time.Time        `gorm:"autoCreateTime"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime"`
}

func (UserProfile) TableName() string {
	return "users"
}
