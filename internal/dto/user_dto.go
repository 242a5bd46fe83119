package dto

import "time"

type PersonalInfoDTO struct {
	FirstName   string `json:"first_name" validate:"required,min=1"`
	LastName    string `json:"last_name" validate:"required,min=1"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"`
}

type MedicalHistoryDTO struct {
	Allergies          string `json:"allergies,omitempty"`
	ChronicConditions  string `json:"chronic_conditions,omitempty"`
	PastSurgeries      string `json:"past_surgeries,omitempty"`
	CurrentMedications string `json:"current_medications,omitempty"`
}

type HealthStatusDTO struct {
	CurrentConditions string `json:"current_conditions,omitempty"`
	Symptoms          string `json:"symptoms,omitempty"`
	IsPregnant        string `json:"is_pregnant,omitempty"`
	DueDate           string `json:"due_date,omitempty"`
}

type FamilyHistoryDTO struct {
	HeartDisease bool   `json:"heart_disease"`
	Diabetes     bool   `json:"diabetes"`
	Cancer       bool   `json:"cancer"`
	MentalHealth bool   `json:"mental_health"`
	Other        string `json:"other,omitempty"`
}

type EmergencyContactDTO struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

type CreateUserRequest struct {
	UserID           string              `json:"user_id" validate:"required,min=1"`
	PersonalInfo     PersonalInfoDTO     `json:"personal_info" validate:"required"`
	MedicalHistory   MedicalHistoryDTO   `json:"medical_history"`
	HealthStatus     HealthStatusDTO     `json:"health_status"`
	FamilyHistory    FamilyHistoryDTO    `json:"family_history"`
	EmergencyContact EmergencyContactDTO `json:"emergency_contact"`
}

type UpdateUserRequest struct {
	PersonalInfo     *PersonalInfoDTO     `json:"personal_info,omitempty"`
	MedicalHistory   *MedicalHistoryDTO   `json:"medical_history,omitempty"`
	HealthStatus     *HealthStatusDTO     `json:"health_status,omitempty"`
	FamilyHistory    *FamilyHistoryDTO    `json:"family_history,omitempty"`
	EmergencyContact *EmergencyContactDTO `json:"emergency_contact,omitempty"`
}

type UserProfileResponse struct {
	UserID           string              `json:"user_id"`
	PersonalInfo     PersonalInfoDTO     `json:"personal_info"`
	MedicalHistory   MedicalHistoryDTO   `json:"medical_history"`
	HealthStatus     HealthStatusDTO     `json:"health_status"`
	FamilyHistory    FamilyHistoryDTO    `json:"family_history"`
	EmergencyContact EmergencyContactDTO `json:"emergency_contact"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}
