package contract

import (
	"context"

	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/repository/specification"
)

type HealthConditionRepository interface {
	Create(ctx context.Context, condition *entity.HealthCondition) error
	Update(ctx context.Context, condition *entity.HealthCondition) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HealthCondition, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HealthCondition, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteAllByUserID(ctx context.Context, userID string) error
}
