package mapper

import (
	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/model"
)

type UserProfileMapper struct{}

func NewUserProfileMapper() *UserProfileMapper {
	return &UserProfileMapper{}
}

func (m *UserProfileMapper) ToEntity(p *model.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}

	return &entity.UserProfile{
		UserID: p.UserID,
		PersonalInfo: entity.PersonalInfo{
			FirstName:   p.PersonalInfo.FirstName,
			LastName:    p.PersonalInfo.LastName,
			DateOfBirth: p.PersonalInfo.DateOfBirth,
			Gender:      p.PersonalInfo.Gender,
			Email:       p.PersonalInfo.Email,
			Phone:       p.PersonalInfo.Phone,
		},
		MedicalHistory: entity.MedicalHistory{
			Allergies:          p.MedicalHistory.Allergies,
			ChronicConditions:  p.MedicalHistory.ChronicConditions,
			PastSurgeries:      p.MedicalHistory.PastSurgeries,
			CurrentMedications: p.MedicalHistory.CurrentMedications,
		},
		HealthStatus: entity.HealthStatus{
			CurrentConditions: p.HealthStatus.CurrentConditions,
			Symptoms:          p.HealthStatus.Symptoms,
			IsPregnant:        p.HealthStatus.IsPregnant,
			DueDate:           p.HealthStatus.DueDate,
		},
		FamilyHistory: entity.FamilyHistory{
			HeartDisease: p.FamilyHistory.HeartDisease,
			Diabetes:     p.FamilyHistory.Diabetes,
			Cancer:       p.FamilyHistory.Cancer,
			MentalHealth: p.FamilyHistory.MentalHealth,
			Other:        p.FamilyHistory.Other,
		},
		EmergencyContact: entity.EmergencyContact{
			Name:         p.EmergencyContact.Name,
			Relationship: p.EmergencyContact.Relationship,
			Phone:        p.EmergencyContact.Phone,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *UserProfileMapper) ToModel(p *entity.UserProfile) *model.UserProfile {
	if p == nil {
		return nil
	}

	return &model.UserProfile{
		UserID: p.UserID,
		PersonalInfo: model.PersonalInfo{
			FirstName:   p.PersonalInfo.FirstName,
			LastName:    p.PersonalInfo.LastName,
			DateOfBirth: p.PersonalInfo.DateOfBirth,
			Gender:      p.PersonalInfo.Gender,
			Email:       p.PersonalInfo.Email,
			Phone:       p.PersonalInfo.Phone,
		},
		MedicalHistory: model.MedicalHistory{
			Allergies:          p.MedicalHistory.Allergies,
			ChronicConditions:  p.MedicalHistory.ChronicConditions,
			PastSurgeries:      p.MedicalHistory.PastSurgeries,
			CurrentMedications: p.MedicalHistory.CurrentMedications,
		},
		HealthStatus: model.HealthStatus{
			CurrentConditions: p.HealthStatus.CurrentConditions,
			Symptoms:          p.HealthStatus.Symptoms,
			IsPregnant:        p.HealthStatus.IsPregnant,
			DueDate:           p.HealthStatus.DueDate,
		},
		FamilyHistory: model.FamilyHistory{
			HeartDisease: p.FamilyHistory.HeartDisease,
			Diabetes:     p.FamilyHistory.Diabetes,
			Cancer:       p.FamilyHistory.Cancer,
			MentalHealth: p.FamilyHistory.MentalHealth,
			Other:        p.FamilyHistory.Other,
		},
		EmergencyContact: model.EmergencyContact{
			Name:         p.EmergencyContact.Name,
			Relationship: p.EmergencyContact.Relationship,
			Phone:        p.EmergencyContact.Phone,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
