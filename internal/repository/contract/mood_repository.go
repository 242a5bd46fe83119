package contract

import (
	"context"

	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/repository/specification"
)

// MoodEntryRepository stores daily mood logs. Upsert keeps at most one entry
// per (user, date).
type MoodEntryRepository interface {
	Upsert(ctx context.Context, mood *entity.MoodEntry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MoodEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MoodEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteAllByUserID(ctx context.Context, userID string) error
}
