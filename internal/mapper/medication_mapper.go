package mapper

import (
	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/model"
)

type MedicationMapper struct{}

func NewMedicationMapper() *MedicationMapper {
	return &MedicationMapper{}
}

func (m *MedicationMapper) ToEntity(med *model.Medication) *entity.Medication {
	if med == nil {
		return nil
	}

	return &entity.Medication{
		Id:        med.Id,
		UserID:    med.UserID,
		Name:      med.Name,
		Dosage:    med.Dosage,
		Time:      med.Time,
		Frequency: med.Frequency,
		Notes:     med.Notes,
		StartDate: med.StartDate,
		EndDate:   med.EndDate,
		IsActive:  med.IsActive,
		CreatedAt: med.CreatedAt,
		UpdatedAt: med.UpdatedAt,
	}
}

func (m *MedicationMapper) ToModel(med *entity.Medication) *model.Medication {
	if med == nil {
		return nil
	}

	return &model.Medication{
		Id:        med.Id,
		UserID:    med.UserID,
		Name:      med.Name,
		Dosage:    med.Dosage,
		Time:      med.Time,
		Frequency: med.Frequency,
		Notes:     med.Notes,
		StartDate: med.StartDate,
		EndDate:   med.EndDate,
		IsActive:  med.IsActive,
		CreatedAt: med.CreatedAt,
		UpdatedAt: med.UpdatedAt,
	}
}

func (m *MedicationMapper) TakenToEntity(t *model.MedicationTaken) *entity.MedicationTaken {
	if t == nil {
		return nil
	}

	return &entity.MedicationTaken{
		Id:           t.Id,
		UserID:       t.UserID,
		MedicationID: t.MedicationID,
		Date:         t.Date,
		Taken:        t.Taken,
		TimeTaken:    t.TimeTaken,
		Notes:        t.Notes,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (m *MedicationMapper) TakenToModel(t *entity.MedicationTaken) *model.MedicationTaken {
	if t == nil {
		return nil
	}

	return &model.MedicationTaken{
		Id:           t.Id,
		UserID:       t.UserID,
		MedicationID: t.MedicationID,
		Date:         t.Date,
		Taken:        t.Taken,
		TimeTaken:    t.TimeTaken,
		Notes:        t.Notes,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
