package contract

import (
	"context"

	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/repository/specification"
)

type UserProfileRepository interface {
	Create(ctx context.Context, profile *entity.UserProfile) error
	Update(ctx context.Context, profile *entity.UserProfile) error
	DeleteByUserID(ctx context.Context, userID string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProfile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserProfile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
