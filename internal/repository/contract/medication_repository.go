package contract

import (
	"context"

	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/repository/specification"
)

type MedicationRepository interface {
	Create(ctx context.Context, med *entity.Medication) error
	Update(ctx context.Context, med *entity.Medication) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Medication, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Medication, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteAllByUserID(ctx context.Context, userID string) error
}

// MedicationTakenRepository stores per-date dose confirmations. Upsert keeps
// at most one record per (user, medication, date).
type MedicationTakenRepository interface {
	Upsert(ctx context.Context, taken *entity.MedicationTaken) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MedicationTaken, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MedicationTaken, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteAllByUserID(ctx context.Context, userID string) error
}
