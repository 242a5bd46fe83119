package entity

import "time"

// PersonalInfo identifies the patient behind a profile.
type PersonalInfo struct {
	FirstName   string
	LastName    string
	DateOfBirth string
	Gender      string
	Email       string
	Phone       string
}

// MedicalHistory holds free-text history fields collected at onboarding.
type MedicalHistory struct {
	Allergies          string
	ChronicConditions  string
	PastSurgeries      string
	CurrentMedications string
}

// HealthStatus captures the self-reported current state. IsPregnant is a
// free-form answer; "yes" and "true" (any case) count as affirmative.
type HealthStatus struct {
	CurrentConditions string
	Symptoms          string
	IsPregnant        string
	DueDate           string
}

type FamilyHistory struct {
	HeartDisease bool
	Diabetes     bool
	Cancer       bool
	MentalHealth bool
	Other        string
}

type EmergencyContact struct {
	Name         string
	Relationship string
	Phone        string
}

// UserProfile is the root record for one user. UserID is the client-assigned
// identifier, unique across the users collection.
type UserProfile struct {
	UserID           string
	PersonalInfo     PersonalInfo
	MedicalHistory   MedicalHistory
	HealthStatus     HealthStatus
	FamilyHistory    FamilyHistory
	EmergencyContact EmergencyContact
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
