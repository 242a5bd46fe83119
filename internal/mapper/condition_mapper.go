package mapper

import (
	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/model"

	"gorm.io/datatypes"
)

type ConditionMapper struct{}

func NewConditionMapper() *ConditionMapper {
	return &ConditionMapper{}
}

func (m *ConditionMapper) ToEntity(c *model.HealthCondition) *entity.HealthCondition {
	if c == nil {
		return nil
	}

	return &entity.HealthCondition{
		Id:            c.Id,
		UserID:        c.UserID,
		ConditionName: c.ConditionName,
		Severity:      c.Severity,
		Symptoms:      []string(c.Symptoms),
		RecordedDate:  c.RecordedDate,
		Notes:         c.Notes,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (m *ConditionMapper) ToModel(c *entity.HealthCondition) *model.HealthCondition {
	if c == nil {
		return nil
	}

	return &model.HealthCondition{
		Id:            c.Id,
		UserID:        c.UserID,
		ConditionName: c.ConditionName,
		Severity:      c.Severity,
		Symptoms:      datatypes.JSONSlice[string](c.Symptoms),
		RecordedDate:  c.RecordedDate,
		Notes:         c.Notes,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
