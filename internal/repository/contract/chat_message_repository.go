package contract

import (
	"context"

	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/repository/specification"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteAllByUserID(ctx context.Context, userID string) error
}
