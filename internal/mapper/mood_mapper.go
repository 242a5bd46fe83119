package mapper

import (
	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/model"

	"gorm.io/datatypes"
)

type MoodMapper struct{}

func NewMoodMapper() *MoodMapper {
	return &MoodMapper{}
}

func (m *MoodMapper) ToEntity(e *model.MoodEntry) *entity.MoodEntry {
	if e == nil {
		return nil
	}

	return &entity.MoodEntry{
		Id:          e.Id,
		UserID:      e.UserID,
		Date:        e.Date,
		Mood:        e.Mood,
		EnergyLevel: e.EnergyLevel,
		SleepHours:  e.SleepHours,
		Notes:       e.Notes,
		Symptoms:    []string(e.Symptoms),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (m *MoodMapper) ToModel(e *entity.MoodEntry) *model.MoodEntry {
	if e == nil {
		return nil
	}

	return &model.MoodEntry{
		Id:          e.Id,
		UserID:      e.UserID,
		Date:        e.Date,
		Mood:        e.Mood,
		EnergyLevel: e.EnergyLevel,
		SleepHours:  e.SleepHours,
		Notes:       e.Notes,
		Symptoms:    datatypes.JSONSlice[string](e.Symptoms),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
