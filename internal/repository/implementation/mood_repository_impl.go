package implementation

import (
	"context"
	"errors"

	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/mapper"
	"ai-healthassist-be/internal/model"
	"ai-healthassist-be/internal/repository/contract"
	"ai-healthassist-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MoodEntryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MoodMapper
}

func NewMoodEntryRepository(db *gorm.DB) contract.MoodEntryRepository {
	return &MoodEntryRepositoryImpl{
		db:     db,
		mapper: mapper.NewMoodMapper(),
	}
}

func (r *MoodEntryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MoodEntryRepositoryImpl) Upsert(ctx context.Context, mood *entity.MoodEntry) error {
	m := r.mapper.ToModel(mood)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"mood", "energy_level", "sleep_hours", "notes", "symptoms", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*mood = *r.mapper.ToEntity(m)
	return nil
}

func (r *MoodEntryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MoodEntry, error) {
	var m model.MoodEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MoodEntryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MoodEntry, error) {
	var models []*model.MoodEntry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.MoodEntry, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *MoodEntryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.MoodEntry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MoodEntryRepositoryImpl) DeleteAllByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.MoodEntry{}).Error
}
